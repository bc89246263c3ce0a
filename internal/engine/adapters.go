package engine

import "github.com/samdwyer/gridsnake/internal/grid"

// Color is an abstract cell color. The engine describes what a cell is; the
// renderer decides what that looks like on its hardware.
type Color int

const (
	// ColorSnake marks a snake body segment.
	ColorSnake Color = iota
	// ColorHead marks the snake's head segment.
	ColorHead
	// ColorFood marks the food cell.
	ColorFood
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorSnake:
		return "snake"
	case ColorHead:
		return "head"
	case ColorFood:
		return "food"
	default:
		return "unknown"
	}
}

// Renderer is the surface the engine draws onto. Implementations translate
// these commands into display-specific writes; the engine never touches
// hardware. Calls arrive only from inside Advance, New and Reset, on the
// caller's goroutine.
type Renderer interface {
	DrawCell(c grid.Cell, color Color)
	ClearCell(c grid.Cell)
	DrawScore(score int)
	ShowGameOver(reason GameOverReason, score int)
}

// InputSource delivers the latest directional intent. Poll must be
// non-blocking: it returns the most recent direction received since the last
// call, or ok = false when none arrived. The engine polls exactly once per
// tick.
type InputSource interface {
	Poll() (d grid.Direction, ok bool)
}
