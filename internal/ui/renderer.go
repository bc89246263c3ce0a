package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/grid"
)

// Board glyphs.
const (
	runeSegment = '█'
	runeFood    = '●'
	runeWall    = '█'
	runeWrap    = '·'
	runeBlank   = ' '
)

// Renderer draws the game onto a terminal screen. It implements
// engine.Renderer: the engine hands it abstract cells and colors, and it owns
// the mapping to screen positions, glyphs and styles. The board is framed by
// a border (solid for a wall boundary, dotted for wrap) with the score line
// above it.
type Renderer struct {
	screen   *Screen
	g        grid.Grid
	pal      Palette
	gameOver bool
}

// NewRenderer creates a renderer for the given board and draws the static
// frame.
func NewRenderer(screen *Screen, g grid.Grid) *Renderer {
	r := &Renderer{screen: screen, g: g, pal: NewPalette()}
	r.drawFrame()
	return r
}

// Screen layout: score on row 0, bordered board below it.
func (r *Renderer) boardX(x int) int { return x + 1 }
func (r *Renderer) boardY(y int) int { return y + 2 }

// DrawCell draws one board cell.
func (r *Renderer) DrawCell(c grid.Cell, color engine.Color) {
	r.restoreAfterGameOver()
	switch color {
	case engine.ColorHead:
		r.screen.SetContent(r.boardX(c.X), r.boardY(c.Y), runeSegment, r.pal.Head)
	case engine.ColorSnake:
		r.screen.SetContent(r.boardX(c.X), r.boardY(c.Y), runeSegment, r.pal.Body)
	case engine.ColorFood:
		r.screen.SetContent(r.boardX(c.X), r.boardY(c.Y), runeFood, r.pal.Food)
	}
}

// ClearCell blanks one board cell.
func (r *Renderer) ClearCell(c grid.Cell) {
	r.restoreAfterGameOver()
	r.screen.SetContent(r.boardX(c.X), r.boardY(c.Y), runeBlank, r.pal.Text)
}

// DrawScore updates the score line.
func (r *Renderer) DrawScore(score int) {
	// Trailing pad overwrites leftover digits when the score resets.
	r.writeText(0, 0, fmt.Sprintf("Score %-8d", score), r.pal.Text)
}

// ShowGameOver overlays the end-of-game banner on the board.
func (r *Renderer) ShowGameOver(reason engine.GameOverReason, score int) {
	r.gameOver = true

	title := "GAME OVER"
	if reason == engine.ReasonBoardFilled {
		title = "YOU WIN!"
	}
	detail := fmt.Sprintf("%s, score %d", reason, score)
	hint := "r restart / q quit"

	midY := r.boardY(r.g.Height / 2)
	r.writeCentered(midY-1, title, r.pal.Banner)
	r.writeCentered(midY, detail, r.pal.Text)
	r.writeCentered(midY+1, hint, r.pal.Text)
}

// Flush pushes the buffered frame to the terminal. Called once per tick by
// the session loop, not by the engine.
func (r *Renderer) Flush() {
	r.screen.Show()
}

// restoreAfterGameOver wipes the banner the first time the engine draws
// again, which only happens on reset.
func (r *Renderer) restoreAfterGameOver() {
	if !r.gameOver {
		return
	}
	r.gameOver = false
	for y := 0; y < r.g.Height; y++ {
		for x := 0; x < r.g.Width; x++ {
			r.screen.SetContent(r.boardX(x), r.boardY(y), runeBlank, r.pal.Text)
		}
	}
	r.drawFrame()
}

// drawFrame draws the border box around the board. A wall boundary is solid;
// a wrap boundary is drawn dotted as a reminder that the edge is open.
func (r *Renderer) drawFrame() {
	edge := runeWall
	if r.g.Boundary == grid.BoundaryWrap {
		edge = runeWrap
	}
	top := r.boardY(0) - 1
	bottom := r.boardY(r.g.Height)
	left := r.boardX(0) - 1
	right := r.boardX(r.g.Width)

	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, edge, r.pal.Wall)
		r.screen.SetContent(x, bottom, edge, r.pal.Wall)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetContent(left, y, edge, r.pal.Wall)
		r.screen.SetContent(right, y, edge, r.pal.Wall)
	}
}

// writeText writes a string starting at (x, y), clipped to the board frame.
func (r *Renderer) writeText(x, y int, text string, style tcell.Style) {
	limit := r.boardX(r.g.Width)
	for i, ch := range text {
		if x+i > limit {
			break
		}
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// writeCentered writes a string centered on the board at row y.
func (r *Renderer) writeCentered(y int, text string, style tcell.Style) {
	x := r.boardX(r.g.Width/2) - len(text)/2
	if x < 0 {
		x = 0
	}
	r.writeText(x, y, text, style)
}
