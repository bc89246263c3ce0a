package engine

import (
	"testing"

	"github.com/samdwyer/gridsnake/internal/grid"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.GridWidth = 0 }},
		{"zero height", func(c *Config) { c.GridHeight = 0 }},
		{"negative width", func(c *Config) { c.GridWidth = -3 }},
		{"zero tick rate", func(c *Config) { c.TickHz = 0 }},
		{"zero snake length", func(c *Config) { c.InitialSnakeLength = 0 }},
		{"snake longer than grid", func(c *Config) { c.GridWidth = 6; c.InitialSnakeLength = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridWidth = 0
	if _, err := New(cfg, &mockRenderer{}, &stubInput{}); err == nil {
		t.Error("New() with zero-width grid should fail before starting")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SNAKE_GRID_WIDTH", "32")
	t.Setenv("SNAKE_GRID_HEIGHT", "20")
	t.Setenv("SNAKE_BOUNDARY", "wrap")
	t.Setenv("SNAKE_TICK_HZ", "10")
	t.Setenv("SNAKE_INITIAL_LENGTH", "4")
	t.Setenv("SNAKE_SEED", "42")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}

	want := Config{
		GridWidth:          32,
		GridHeight:         20,
		Boundary:           grid.BoundaryWrap,
		TickHz:             10,
		InitialSnakeLength: 4,
		Seed:               42,
	}
	if cfg != want {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("SNAKE_TICK_HZ", "fast")
	if _, err := FromEnv(); err == nil {
		t.Error("FromEnv() with non-numeric tick rate should fail")
	}
}

func TestFromEnvRejectsUnknownBoundary(t *testing.T) {
	t.Setenv("SNAKE_BOUNDARY", "bounce")
	if _, err := FromEnv(); err == nil {
		t.Error("FromEnv() with unknown boundary policy should fail")
	}
}

func TestTickInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickHz = 8
	if got := cfg.TickInterval().Milliseconds(); got != 125 {
		t.Errorf("TickInterval() = %dms at 8 Hz, want 125ms", got)
	}
}
