// Package engine implements the snake game state machine.
//
// The engine is deterministic and hardware-free: it advances exactly once per
// call to Advance, reads input through an injected InputSource, and draws
// through an injected Renderer. All containers are sized at construction;
// nothing allocates on the tick path.
package engine

import (
	"math/rand"

	"github.com/samdwyer/gridsnake/internal/grid"
	"github.com/samdwyer/gridsnake/internal/snake"
)

// defaultHeading is the direction a fresh snake faces.
const defaultHeading = grid.Right

// State is the engine's top-level state.
type State int

const (
	// StateRunning means the game is in progress and Advance mutates.
	StateRunning State = iota
	// StateGameOver is terminal: Advance is a no-op until Reset.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameOverReason says why a game ended. Terminal outcomes are state, not
// errors.
type GameOverReason int

const (
	// ReasonNone is the zero value while the game is still running.
	ReasonNone GameOverReason = iota
	// ReasonWall means the head left the grid under the wall boundary policy.
	ReasonWall
	// ReasonSelf means the head ran into the snake's own body.
	ReasonSelf
	// ReasonBoardFilled means the snake grew to cover every cell. The win.
	ReasonBoardFilled
)

// String returns the reason name.
func (r GameOverReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	case ReasonBoardFilled:
		return "board_filled"
	default:
		return "unknown"
	}
}

// Engine owns the authoritative game state and advances it one tick at a
// time. It is single-threaded: the external tick source calls Advance, and
// nothing else touches the engine concurrently.
type Engine struct {
	cfg     Config
	grid    grid.Grid
	body    *snake.Body
	dir     grid.Direction
	food    grid.Cell
	hasFood bool
	score   int
	tick    uint64
	state   State
	reason  GameOverReason
	rng     *rand.Rand
	out     Renderer
	in      InputSource
}

// New validates the configuration and constructs a running engine with the
// initial snake placed and the first food spawned. The initial frame is drawn
// onto the renderer before New returns.
func New(cfg Config, out Renderer, in InputSource) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:  cfg,
		grid: grid.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight, Boundary: cfg.Boundary},
		out:  out,
		in:   in,
	}
	e.body = snake.NewBody(e.grid.Cells())
	e.start()
	return e, nil
}

// start places the initial snake and food and draws the opening frame.
// Shared by New (blank surface) and Reset (after clearing the old frame).
func (e *Engine) start() {
	e.rng = rand.New(rand.NewSource(e.cfg.seed()))
	e.dir = defaultHeading
	e.score = 0
	e.tick = 0
	e.state = StateRunning
	e.reason = ReasonNone
	e.hasFood = false

	// Head at the grid center, body trailing opposite the heading.
	// Config validation guarantees the tail stays on the grid.
	head := e.grid.Center()
	back := e.dir.Opposite()
	tail := head
	for i := 1; i < e.cfg.InitialSnakeLength; i++ {
		tail = tail.Neighbor(back)
	}
	e.body.Reset(tail)
	for cell := tail; cell != head; {
		cell = cell.Neighbor(e.dir)
		e.body.Advance(cell, true)
	}

	if !e.spawnFood() {
		// Snake already covers the grid. Only reachable with a degenerate
		// config (initial length == cell count), but it must not hang.
		e.endGame(ReasonBoardFilled)
		return
	}
	e.drawFrame()
}

// drawFrame emits the complete current frame: every body segment, the food,
// and the score. Used at start; per-tick rendering is incremental.
func (e *Engine) drawFrame() {
	for i := e.body.Len() - 1; i > 0; i-- {
		e.out.DrawCell(e.body.At(i), ColorSnake)
	}
	e.out.DrawCell(e.body.Head(), ColorHead)
	if e.hasFood {
		e.out.DrawCell(e.food, ColorFood)
	}
	e.out.DrawScore(e.score)
}

// Advance runs one tick. On a running game it consumes at most one buffered
// input, moves the snake, resolves collisions and growth, and emits the
// incremental render commands for the frame. On a finished game it does
// nothing; Reset is the only way back.
func (e *Engine) Advance() {
	if e.state != StateRunning {
		return
	}
	e.tick++

	if d, ok := e.in.Poll(); ok {
		// A reversal onto the neck is ignored; a length-1 snake has no neck.
		if e.body.Len() == 1 || d != e.dir.Opposite() {
			e.dir = d
		}
	}

	proposed := e.body.Head().Neighbor(e.dir)
	next, inBounds := e.grid.Resolve(proposed)
	grow := inBounds && e.hasFood && next == e.food

	if kind := DetectCollision(e.grid, e.body, proposed, grow); kind != CollisionNone {
		e.endGame(collisionReason(kind))
		return
	}

	oldHead := e.body.Head()
	oldTail := e.body.Tail()
	if grow {
		e.score++
		e.hasFood = false
	}
	e.body.Advance(next, grow)

	foodChanged := false
	if !e.hasFood {
		if e.spawnFood() {
			foodChanged = true
		} else {
			// The last food was just eaten and the snake now covers the
			// whole grid. Show the final move, then end.
			e.out.DrawCell(oldHead, ColorSnake)
			e.out.DrawCell(next, ColorHead)
			e.out.DrawScore(e.score)
			e.endGame(ReasonBoardFilled)
			return
		}
	}

	if !grow {
		e.out.ClearCell(oldTail)
	}
	if e.body.Len() > 1 {
		e.out.DrawCell(oldHead, ColorSnake)
	}
	e.out.DrawCell(next, ColorHead)
	if foodChanged {
		e.out.DrawCell(e.food, ColorFood)
	}
	e.out.DrawScore(e.score)
}

// Reset clears the old frame and reconstructs a fresh initial state. This is
// the only transition out of StateGameOver.
func (e *Engine) Reset() {
	for i := 0; i < e.body.Len(); i++ {
		e.out.ClearCell(e.body.At(i))
	}
	if e.hasFood {
		e.out.ClearCell(e.food)
	}
	e.start()
}

func (e *Engine) endGame(reason GameOverReason) {
	e.state = StateGameOver
	e.reason = reason
	e.out.ShowGameOver(reason, e.score)
}

func collisionReason(kind CollisionKind) GameOverReason {
	switch kind {
	case CollisionWall:
		return ReasonWall
	case CollisionSelf:
		return ReasonSelf
	default:
		return ReasonNone
	}
}

// State returns the current top-level state.
func (e *Engine) State() State {
	return e.state
}

// Reason returns why the game ended, or ReasonNone while running.
func (e *Engine) Reason() GameOverReason {
	return e.reason
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Tick returns the number of ticks advanced since the last start or reset.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// Snapshot captures the observable game state in one value, for the
// game-over screen and for determinism checks.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     grid.Cell
	Dir      grid.Direction
	Food     grid.Cell
	HasFood  bool
	State    State
	Reason   GameOverReason
}

// Snapshot returns the current snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:     e.tick,
		Score:    e.score,
		SnakeLen: e.body.Len(),
		Head:     e.body.Head(),
		Dir:      e.dir,
		Food:     e.food,
		HasFood:  e.hasFood,
		State:    e.state,
		Reason:   e.reason,
	}
}
