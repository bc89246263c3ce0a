package engine

import (
	"github.com/samdwyer/gridsnake/internal/grid"
	"github.com/samdwyer/gridsnake/internal/snake"
)

// CollisionKind classifies the outcome of a proposed move.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionWall
	CollisionSelf
)

// String returns the collision name.
func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// DetectCollision checks a proposed (unresolved) next head cell against the
// grid boundary and the snake body. The wall check runs first: a move that is
// both out of bounds and would-be self-colliding reports CollisionWall. On a
// non-growing move the tail cell is excluded, since it vacates in the same
// tick. Pure function, no state touched.
func DetectCollision(g grid.Grid, body *snake.Body, proposed grid.Cell, grow bool) CollisionKind {
	next, ok := g.Resolve(proposed)
	if !ok {
		return CollisionWall
	}
	if grow {
		if body.Contains(next) {
			return CollisionSelf
		}
	} else if body.ContainsExcludingTail(next) {
		return CollisionSelf
	}
	return CollisionNone
}
