// Package snake provides the snake body container.
//
// The body is a ring buffer over a fixed array sized to the whole grid, so
// advancing every tick moves two indices and writes one cell. Nothing here
// allocates after construction.
package snake

import "github.com/samdwyer/gridsnake/internal/grid"

// Body is an ordered sequence of cells, head first, tail last.
type Body struct {
	cells  []grid.Cell
	head   int // index of the head cell within cells
	length int
}

// NewBody creates an empty body with the given fixed capacity.
// Capacity must cover the longest possible snake (grid width * height).
func NewBody(capacity int) *Body {
	if capacity < 1 {
		panic("snake: body capacity must be at least 1")
	}
	return &Body{cells: make([]grid.Cell, capacity)}
}

// Reset discards all segments and restarts the body as a single cell.
func (b *Body) Reset(start grid.Cell) {
	b.head = 0
	b.cells[0] = start
	b.length = 1
}

// Len returns the current number of segments.
func (b *Body) Len() int {
	return b.length
}

// Cap returns the fixed maximum number of segments.
func (b *Body) Cap() int {
	return len(b.cells)
}

// Head returns the first segment. The body must be non-empty; an empty body
// is an invariant violation, not a reachable game state.
func (b *Body) Head() grid.Cell {
	if b.length == 0 {
		panic("snake: Head on empty body")
	}
	return b.cells[b.head]
}

// Tail returns the last segment.
func (b *Body) Tail() grid.Cell {
	if b.length == 0 {
		panic("snake: Tail on empty body")
	}
	return b.at(b.length - 1)
}

// Advance inserts newHead at the front. When grow is false the tail segment
// is dropped, keeping the length constant; when true the body grows by one.
// This is the only per-tick mutator.
func (b *Body) Advance(newHead grid.Cell, grow bool) {
	if grow && b.length == len(b.cells) {
		panic("snake: Advance past body capacity")
	}
	b.head--
	if b.head < 0 {
		b.head = len(b.cells) - 1
	}
	b.cells[b.head] = newHead
	if grow {
		b.length++
	}
}

// Contains reports whether the cell is occupied by any segment.
// Linear scan, bounded by the body length.
func (b *Body) Contains(c grid.Cell) bool {
	for i := 0; i < b.length; i++ {
		if b.at(i) == c {
			return true
		}
	}
	return false
}

// ContainsExcludingTail is Contains with the tail segment ignored. Used for
// collision checks on a non-growing tick, when the tail is about to vacate
// its cell.
func (b *Body) ContainsExcludingTail(c grid.Cell) bool {
	for i := 0; i < b.length-1; i++ {
		if b.at(i) == c {
			return true
		}
	}
	return false
}

// At returns the i-th segment, head first. i must be in [0, Len).
func (b *Body) At(i int) grid.Cell {
	if i < 0 || i >= b.length {
		panic("snake: segment index out of range")
	}
	return b.at(i)
}

func (b *Body) at(i int) grid.Cell {
	return b.cells[(b.head+i)%len(b.cells)]
}
