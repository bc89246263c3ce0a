package game

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/grid"
)

func consoleConfig() engine.Config {
	return engine.Config{
		GridWidth:          6,
		GridHeight:         4,
		Boundary:           grid.BoundaryWall,
		TickHz:             200, // fast ticks keep the test short
		InitialSnakeLength: 3,
		Seed:               5,
	}
}

func TestRunConsoleQuitCommand(t *testing.T) {
	var out strings.Builder

	err := RunConsole(context.Background(), consoleConfig(), strings.NewReader("q"), &out)
	if err != nil {
		t.Fatalf("RunConsole() error: %v", err)
	}

	// The opening frame is written before any command is handled.
	if !strings.Contains(out.String(), "Score 0") {
		t.Errorf("opening frame missing from output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "@") {
		t.Errorf("opening frame missing the snake head:\n%s", out.String())
	}
}

func TestRunConsoleEndsOnInputEOF(t *testing.T) {
	var out strings.Builder

	done := make(chan error, 1)
	go func() {
		done <- RunConsole(context.Background(), consoleConfig(), strings.NewReader(""), &out)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("RunConsole() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("RunConsole did not return after input EOF")
	}
}

func TestRunConsoleHonorsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A reader that never delivers anything, so only the context can stop us.
	var out strings.Builder

	err := RunConsole(ctx, consoleConfig(), blockingReader{stop: make(chan struct{})}, &out)
	if err != context.Canceled {
		t.Errorf("RunConsole() = %v, want context.Canceled", err)
	}
}

// blockingReader blocks every Read until stop closes. The forwarding
// goroutine it strands is reclaimed when the test binary exits.
type blockingReader struct {
	stop chan struct{}
}

func (b blockingReader) Read(p []byte) (int, error) {
	<-b.stop
	return 0, nil
}
