// Package game provides the session loops that drive the engine: the
// terminal UI session and the serial-console-style session. Each owns its
// tick source and input plumbing; the engine itself stays timing-free.
package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/grid"
	"github.com/samdwyer/gridsnake/internal/telemetry"
	"github.com/samdwyer/gridsnake/internal/ui"
)

// Game runs the engine against the tcell terminal adapters.
type Game struct {
	cfg      engine.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	input    *ui.InputBuffer
	eng      *engine.Engine
}

// New creates a terminal game session.
func New(cfg engine.Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	board := grid.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight, Boundary: cfg.Boundary}
	renderer := ui.NewRenderer(screen, board)
	input := &ui.InputBuffer{}

	eng, err := engine.New(cfg, renderer, input)
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: renderer,
		input:    input,
		eng:      eng,
	}, nil
}

// Run executes the session until the player quits or the context ends.
// Ticks and key events are serialized through one select, so every engine
// call happens on this goroutine.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session", trace.WithAttributes(
		attribute.Int("grid.width", g.cfg.GridWidth),
		attribute.Int("grid.height", g.cfg.GridHeight),
		attribute.String("grid.boundary", g.cfg.Boundary.String()),
		attribute.Int("tick.hz", g.cfg.TickHz),
	))
	defer span.End()

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go g.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	games := 0
	for {
		select {
		case <-ctx.Done():
			g.recordSessionEnd(span, games)
			return ctx.Err()

		case <-ticker.C:
			wasRunning := g.eng.State() == engine.StateRunning
			g.eng.Advance()
			g.renderer.Flush()
			if wasRunning && g.eng.State() == engine.StateGameOver {
				games++
				span.AddEvent("game_over", trace.WithAttributes(
					attribute.String("reason", g.eng.Reason().String()),
					attribute.Int("score", g.eng.Score()),
					attribute.Int64("ticks", int64(g.eng.Tick())),
				))
			}

		case ev := <-events:
			if done := g.handleEvent(ev); done {
				g.recordSessionEnd(span, games)
				return nil
			}
		}
	}
}

// handleEvent processes one terminal event; true means quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			g.input.Offer(grid.Up)
		case tcell.KeyDown:
			g.input.Offer(grid.Down)
		case tcell.KeyLeft:
			g.input.Offer(grid.Left)
		case tcell.KeyRight:
			g.input.Offer(grid.Right)
		case tcell.KeyEnter:
			g.maybeReset()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'w', 'W':
				g.input.Offer(grid.Up)
			case 's', 'S':
				g.input.Offer(grid.Down)
			case 'a', 'A':
				g.input.Offer(grid.Left)
			case 'd', 'D':
				g.input.Offer(grid.Right)
			case 'r', 'R':
				g.maybeReset()
			}
		}
	}
	return false
}

// maybeReset restarts after a finished game. A reset mid-game is ignored.
func (g *Game) maybeReset() {
	if g.eng.State() == engine.StateGameOver {
		g.eng.Reset()
		g.renderer.Flush()
	}
}

func (g *Game) recordSessionEnd(span trace.Span, games int) {
	span.SetAttributes(attribute.Int("games.finished", games))
}

// Close cleans up the terminal.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
