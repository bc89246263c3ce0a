package ui

import (
	"sync"

	"github.com/samdwyer/gridsnake/internal/grid"
)

// InputBuffer holds at most the single latest directional intent. Key events
// arrive on the UI goroutine; the engine consumes them on the tick goroutine,
// so the slot is mutex-guarded. Implements engine.InputSource.
type InputBuffer struct {
	mu  sync.Mutex
	d   grid.Direction
	set bool
}

// Offer stores a direction, replacing any unconsumed one.
func (b *InputBuffer) Offer(d grid.Direction) {
	b.mu.Lock()
	b.d = d
	b.set = true
	b.mu.Unlock()
}

// Poll consumes and returns the buffered direction, if any. Non-blocking.
func (b *InputBuffer) Poll() (grid.Direction, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.set {
		return 0, false
	}
	b.set = false
	return b.d, true
}
