package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/grid"
	"github.com/samdwyer/gridsnake/internal/telemetry"
	"github.com/samdwyer/gridsnake/internal/ui"
)

// RunConsole drives the engine over a byte-oriented console: full text frames
// to out, single-character commands from in. w/a/s/d steer, r restarts after a
// game over, q quits. This is the interaction model of the original serial
// console target, lifted onto arbitrary reader/writer pairs.
func RunConsole(ctx context.Context, cfg engine.Config, in io.Reader, out io.Writer) error {
	board := grid.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight, Boundary: cfg.Boundary}
	renderer := ui.NewConsoleRenderer(out, board)
	input := &ui.InputBuffer{}

	eng, err := engine.New(cfg, renderer, input)
	if err != nil {
		return err
	}
	if err := renderer.Flush(); err != nil {
		return fmt.Errorf("write opening frame: %w", err)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.console_session", trace.WithAttributes(
		attribute.Int("grid.width", cfg.GridWidth),
		attribute.Int("grid.height", cfg.GridHeight),
		attribute.String("grid.boundary", cfg.Boundary.String()),
		attribute.Int("tick.hz", cfg.TickHz),
	))
	defer span.End()

	// The reader goroutine only forwards bytes; every engine call stays on
	// this goroutine, serialized by the select below.
	commands := make(chan byte, 8)
	go func() {
		defer close(commands)
		r := bufio.NewReader(in)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case commands <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			wasRunning := eng.State() == engine.StateRunning
			eng.Advance()
			if err := renderer.Flush(); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
			if wasRunning && eng.State() == engine.StateGameOver {
				span.AddEvent("game_over", trace.WithAttributes(
					attribute.String("reason", eng.Reason().String()),
					attribute.Int("score", eng.Score()),
					attribute.Int64("ticks", int64(eng.Tick())),
				))
			}

		case b, ok := <-commands:
			if !ok {
				// Input closed; a serial console playing a stream is done.
				return nil
			}
			switch b {
			case 'w', 'W':
				input.Offer(grid.Up)
			case 's', 'S':
				input.Offer(grid.Down)
			case 'a', 'A':
				input.Offer(grid.Left)
			case 'd', 'D':
				input.Offer(grid.Right)
			case 'r', 'R':
				if eng.State() == engine.StateGameOver {
					eng.Reset()
				}
			case 'q', 'Q':
				return nil
			}
		}
	}
}
