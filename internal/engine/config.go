package engine

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/gridsnake/internal/grid"
)

// Config holds the engine construction options. Everything is fixed for the
// lifetime of an engine; there is no runtime reconfiguration.
type Config struct {
	GridWidth  int
	GridHeight int
	Boundary   grid.Boundary
	// TickHz is the advance rate driven by the external tick source.
	// The engine itself only uses it to report TickInterval.
	TickHz int
	// InitialSnakeLength is the snake length after construction or reset.
	InitialSnakeLength int
	// Seed for the food spawner RNG. A seed of 0 means derive one from the
	// current time, like a fresh game; any other value gives a reproducible run.
	Seed int64
}

// DefaultConfig returns the standard small-display setup.
func DefaultConfig() Config {
	return Config{
		GridWidth:          24,
		GridHeight:         16,
		Boundary:           grid.BoundaryWall,
		TickHz:             8,
		InitialSnakeLength: 3,
		Seed:               0,
	}
}

// Validate checks the configuration once, before the engine starts.
func (c Config) Validate() error {
	if c.GridWidth < 2 || c.GridHeight < 2 {
		return fmt.Errorf("grid %dx%d too small: both dimensions must be at least 2", c.GridWidth, c.GridHeight)
	}
	if c.TickHz < 1 {
		return fmt.Errorf("tick rate %d Hz invalid: must be at least 1", c.TickHz)
	}
	if c.InitialSnakeLength < 1 {
		return fmt.Errorf("initial snake length %d invalid: must be at least 1", c.InitialSnakeLength)
	}
	// The snake starts at the grid center heading right, with its body
	// trailing left; the tail must not start off-grid.
	if c.InitialSnakeLength > c.GridWidth/2+1 {
		return fmt.Errorf("initial snake length %d does not fit a %d-wide grid", c.InitialSnakeLength, c.GridWidth)
	}
	return nil
}

// TickInterval returns the period of one tick at the configured rate.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickHz)
}

// seed resolves the RNG seed, substituting the current time for 0.
func (c Config) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// FromEnv builds a Config from SNAKE_* environment variables, starting from
// DefaultConfig. Unset variables keep their defaults; malformed values are
// reported rather than ignored.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	intVars := []struct {
		name string
		dst  *int
	}{
		{"SNAKE_GRID_WIDTH", &cfg.GridWidth},
		{"SNAKE_GRID_HEIGHT", &cfg.GridHeight},
		{"SNAKE_TICK_HZ", &cfg.TickHz},
		{"SNAKE_INITIAL_LENGTH", &cfg.InitialSnakeLength},
	}
	for _, v := range intVars {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s=%q: %w", v.name, raw, err)
		}
		*v.dst = n
	}

	if raw := os.Getenv("SNAKE_BOUNDARY"); raw != "" {
		b, err := grid.ParseBoundary(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid SNAKE_BOUNDARY: %w", err)
		}
		cfg.Boundary = b
	}

	if raw := os.Getenv("SNAKE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid SNAKE_SEED=%q: %w", raw, err)
		}
		cfg.Seed = seed
	}

	return cfg, cfg.Validate()
}
