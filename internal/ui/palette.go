package ui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Base colors for the board. Shades for the body and border are derived at
// startup by blending in Lab space, so the palette stays consistent if a base
// hex is retuned.
const (
	snakeHex = "#5fd787"
	foodHex  = "#ff5f5f"
	wallHex  = "#8a8a8a"
)

// Palette holds the resolved terminal styles for everything the renderer
// draws.
type Palette struct {
	Head   tcell.Style
	Body   tcell.Style
	Food   tcell.Style
	Wall   tcell.Style
	Text   tcell.Style
	Banner tcell.Style
}

// NewPalette derives the style set from the base colors.
func NewPalette() Palette {
	// The hex constants above are known-good, so parse errors are ignored.
	head, _ := colorful.Hex(snakeHex)
	food, _ := colorful.Hex(foodHex)
	wall, _ := colorful.Hex(wallHex)

	black := colorful.Color{R: 0, G: 0, B: 0}
	body := head.BlendLab(black, 0.35).Clamped()
	dimWall := wall.BlendLab(black, 0.45).Clamped()

	return Palette{
		Head:   tcell.StyleDefault.Foreground(toTcell(head)).Bold(true),
		Body:   tcell.StyleDefault.Foreground(toTcell(body)),
		Food:   tcell.StyleDefault.Foreground(toTcell(food)),
		Wall:   tcell.StyleDefault.Foreground(toTcell(dimWall)),
		Text:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Banner: tcell.StyleDefault.Foreground(toTcell(food)).Bold(true),
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
