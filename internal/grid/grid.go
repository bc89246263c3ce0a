// Package grid provides the fixed-size coordinate space the game plays on.
package grid

import "fmt"

// Cell is a single board position. Immutable value type.
type Cell struct {
	X, Y int
}

// Neighbor returns the cell one step in the given direction,
// without any boundary handling.
func (c Cell) Neighbor(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction is one of the four movement headings.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Boundary selects what happens when the snake's head would leave the grid.
type Boundary int

const (
	// BoundaryWall treats the grid edge as solid: leaving it is a collision.
	BoundaryWall Boundary = iota
	// BoundaryWrap wraps movement around to the opposite edge.
	BoundaryWrap
)

// String returns the boundary policy name.
func (b Boundary) String() string {
	switch b {
	case BoundaryWall:
		return "wall"
	case BoundaryWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// ParseBoundary converts a config string ("wall" or "wrap") to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "wall":
		return BoundaryWall, nil
	case "wrap":
		return BoundaryWrap, nil
	default:
		return BoundaryWall, fmt.Errorf("unknown boundary policy %q (want wall or wrap)", s)
	}
}

// Grid is the play field: a WxH cell space with a boundary policy.
// All methods are pure.
type Grid struct {
	Width    int
	Height   int
	Boundary Boundary
}

// Contains reports whether the cell lies inside the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Resolve applies the boundary policy to a proposed cell. With BoundaryWrap
// the cell is wrapped onto the grid and ok is always true. With BoundaryWall
// an out-of-bounds cell is rejected with ok = false (a wall hit); the
// returned cell is only meaningful when ok is true.
func (g Grid) Resolve(c Cell) (resolved Cell, ok bool) {
	if g.Contains(c) {
		return c, true
	}
	if g.Boundary == BoundaryWall {
		return c, false
	}
	return g.wrap(c), true
}

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounding down on even dimensions.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

func (g Grid) wrap(c Cell) Cell {
	x := c.X % g.Width
	if x < 0 {
		x += g.Width
	}
	y := c.Y % g.Height
	if y < 0 {
		y += g.Height
	}
	return Cell{X: x, Y: y}
}
