package engine

import "github.com/samdwyer/gridsnake/internal/grid"

// spawnFood places the next food cell, drawing successive candidates from the
// engine's seeded RNG and rejecting any cell the snake occupies. Rejection
// sampling terminates with certainty because the free-cell count is checked
// first; when the snake fills the whole grid there is nothing to place and
// spawnFood reports false so the engine can end the game instead of looping.
func (e *Engine) spawnFood() bool {
	if e.grid.Cells()-e.body.Len() == 0 {
		return false
	}
	for {
		c := grid.Cell{X: e.rng.Intn(e.grid.Width), Y: e.rng.Intn(e.grid.Height)}
		if !e.body.Contains(c) {
			e.food = c
			e.hasFood = true
			return true
		}
	}
}
