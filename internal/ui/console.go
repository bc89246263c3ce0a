package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/grid"
)

// Console glyphs, kept to plain ASCII so frames survive any serial console.
const (
	consoleHead  = '@'
	consoleBody  = 'o'
	consoleFood  = '*'
	consoleBlank = ' '
)

// ConsoleRenderer implements engine.Renderer on a line-oriented writer. It
// keeps a shadow copy of the board and prints a full text frame on every
// Flush, the way a dumb serial console would be driven.
type ConsoleRenderer struct {
	out      io.Writer
	g        grid.Grid
	cells    []byte
	score    int
	gameOver bool
	reason   engine.GameOverReason
}

// NewConsoleRenderer creates a console renderer for the given board.
func NewConsoleRenderer(out io.Writer, g grid.Grid) *ConsoleRenderer {
	cells := make([]byte, g.Cells())
	for i := range cells {
		cells[i] = consoleBlank
	}
	return &ConsoleRenderer{out: out, g: g, cells: cells}
}

// DrawCell records one board cell.
func (r *ConsoleRenderer) DrawCell(c grid.Cell, color engine.Color) {
	r.gameOver = false
	switch color {
	case engine.ColorHead:
		r.set(c, consoleHead)
	case engine.ColorSnake:
		r.set(c, consoleBody)
	case engine.ColorFood:
		r.set(c, consoleFood)
	}
}

// ClearCell blanks one board cell.
func (r *ConsoleRenderer) ClearCell(c grid.Cell) {
	r.gameOver = false
	r.set(c, consoleBlank)
}

// DrawScore records the score.
func (r *ConsoleRenderer) DrawScore(score int) {
	r.score = score
}

// ShowGameOver records the terminal outcome for the next frame.
func (r *ConsoleRenderer) ShowGameOver(reason engine.GameOverReason, score int) {
	r.gameOver = true
	r.reason = reason
	r.score = score
}

// Flush writes a complete frame to the writer.
func (r *ConsoleRenderer) Flush() error {
	_, err := io.WriteString(r.out, r.Frame())
	return err
}

// Frame renders the current board state as text.
func (r *ConsoleRenderer) Frame() string {
	var b strings.Builder
	edge := "#"
	if r.g.Boundary == grid.BoundaryWrap {
		edge = "."
	}

	fmt.Fprintf(&b, "Score %d\n", r.score)
	border := strings.Repeat(edge, r.g.Width+2)
	b.WriteString(border)
	b.WriteByte('\n')
	for y := 0; y < r.g.Height; y++ {
		b.WriteString(edge)
		b.Write(r.cells[y*r.g.Width : (y+1)*r.g.Width])
		b.WriteString(edge)
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')

	if r.gameOver {
		title := "GAME OVER"
		if r.reason == engine.ReasonBoardFilled {
			title = "YOU WIN!"
		}
		fmt.Fprintf(&b, "%s (%s) - r to restart, q to quit\n", title, r.reason)
	}
	return b.String()
}

func (r *ConsoleRenderer) set(c grid.Cell, glyph byte) {
	r.cells[c.Y*r.g.Width+c.X] = glyph
}
