package ui

import (
	"strings"
	"testing"

	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/grid"
)

func TestConsoleFrame(t *testing.T) {
	g := grid.Grid{Width: 4, Height: 3, Boundary: grid.BoundaryWall}
	r := NewConsoleRenderer(&strings.Builder{}, g)

	r.DrawCell(grid.Cell{X: 1, Y: 1}, engine.ColorSnake)
	r.DrawCell(grid.Cell{X: 2, Y: 1}, engine.ColorHead)
	r.DrawCell(grid.Cell{X: 0, Y: 2}, engine.ColorFood)
	r.DrawScore(7)

	want := "Score 7\n" +
		"######\n" +
		"#    #\n" +
		"# o@ #\n" +
		"#*   #\n" +
		"######\n"
	if got := r.Frame(); got != want {
		t.Errorf("Frame() =\n%s\nwant\n%s", got, want)
	}
}

func TestConsoleFrameWrapBorder(t *testing.T) {
	g := grid.Grid{Width: 2, Height: 1, Boundary: grid.BoundaryWrap}
	r := NewConsoleRenderer(&strings.Builder{}, g)

	frame := r.Frame()
	if !strings.Contains(frame, "....") {
		t.Errorf("wrap boundary frame should use a dotted border:\n%s", frame)
	}
}

func TestConsoleClearCell(t *testing.T) {
	g := grid.Grid{Width: 3, Height: 1, Boundary: grid.BoundaryWall}
	r := NewConsoleRenderer(&strings.Builder{}, g)

	r.DrawCell(grid.Cell{X: 1, Y: 0}, engine.ColorSnake)
	r.ClearCell(grid.Cell{X: 1, Y: 0})

	if !strings.Contains(r.Frame(), "#   #") {
		t.Errorf("cleared cell still drawn:\n%s", r.Frame())
	}
}

func TestConsoleGameOverBanner(t *testing.T) {
	g := grid.Grid{Width: 3, Height: 1, Boundary: grid.BoundaryWall}
	r := NewConsoleRenderer(&strings.Builder{}, g)

	r.ShowGameOver(engine.ReasonSelf, 12)
	if !strings.Contains(r.Frame(), "GAME OVER (self)") {
		t.Errorf("missing game over banner:\n%s", r.Frame())
	}

	r.ShowGameOver(engine.ReasonBoardFilled, 12)
	if !strings.Contains(r.Frame(), "YOU WIN!") {
		t.Errorf("board filled should read as a win:\n%s", r.Frame())
	}

	// The next draw means a reset happened; the banner must drop.
	r.DrawCell(grid.Cell{X: 0, Y: 0}, engine.ColorHead)
	if strings.Contains(r.Frame(), "GAME OVER") {
		t.Errorf("banner survived a reset:\n%s", r.Frame())
	}
}

func TestConsoleRendererWithEngine(t *testing.T) {
	// End-to-end over the adapter boundary: a real engine drawing its
	// opening frame through the console renderer.
	cfg := engine.Config{
		GridWidth:          5,
		GridHeight:         5,
		Boundary:           grid.BoundaryWall,
		TickHz:             8,
		InitialSnakeLength: 3,
		Seed:               7,
	}
	g := grid.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight, Boundary: cfg.Boundary}
	r := NewConsoleRenderer(&strings.Builder{}, g)

	if _, err := engine.New(cfg, r, &InputBuffer{}); err != nil {
		t.Fatalf("engine.New() error: %v", err)
	}

	frame := r.Frame()
	board := frame[strings.Index(frame, "\n")+1:] // drop the score line
	if strings.Count(board, "o") != 2 || strings.Count(board, "@") != 1 {
		t.Errorf("opening frame should show two body cells and a head:\n%s", frame)
	}
	if strings.Count(board, "*") != 1 {
		t.Errorf("opening frame should show one food cell:\n%s", frame)
	}
}
