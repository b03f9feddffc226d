package config

import (
	"flag"
	"log"
	"time"

	"github.com/pkg/errors"

	"snakefx/game/types"
)

// Frontends accepted by -ui
const (
	UIWindow   = "window"
	UITerminal = "terminal"
	UIHeadless = "headless"
)

type Config struct {
	Variant   types.Variant
	UI        string
	Interval  time.Duration
	GridSize  int
	CellSize  int
	Autopilot bool
	Sound     bool
	HTTPAddr  string
	DataDir   string
	Seed      uint64
}

// Parse reads the command line into a Config
func Parse(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	mode := fs.String("mode", "wrap", "Rules: wrap (edges wrap, reset on death) or walls (edges kill, exit on death)")
	ui := fs.String("ui", UIWindow, "Frontend: window, terminal or headless")
	speed := fs.Int("speed", int(types.DefaultTickInterval/time.Millisecond), "Tick interval in milliseconds (100-150)")
	grid := fs.Int("grid", types.DefaultGridSize, "Cells per side")
	cell := fs.Int("cell", types.DefaultCellSize, "Pixels per cell in the window")
	autopilot := fs.Bool("autopilot", false, "Let the computer steer")
	sound := fs.Bool("sound", true, "Play sound effects")
	httpAddr := fs.String("http", "", "Serve the spectator API on this address, e.g. :8080")
	dataDir := fs.String("data", "data", "Directory for stats and logs, empty disables persistence")
	seed := fs.Uint64("seed", 0, "Food placement seed, 0 picks one from the clock")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	variant, err := types.ParseVariant(*mode)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Variant:   variant,
		UI:        *ui,
		Interval:  time.Duration(*speed) * time.Millisecond,
		GridSize:  *grid,
		CellSize:  *cell,
		Autopilot: *autopilot,
		Sound:     *sound,
		HTTPAddr:  *httpAddr,
		DataDir:   *dataDir,
		Seed:      *seed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, cfg.Validate()
}

// Validate rejects unusable values and clamps the tick interval into range.
func (c *Config) Validate() error {
	switch c.UI {
	case UIWindow, UITerminal, UIHeadless:
	default:
		return errors.Errorf("unknown ui %q", c.UI)
	}
	if c.GridSize < 2 {
		return errors.Errorf("grid must be at least 2 cells, got %d", c.GridSize)
	}
	if c.CellSize < 4 {
		return errors.Errorf("cell must be at least 4 pixels, got %d", c.CellSize)
	}

	clamped := c.Interval
	if clamped < types.MinTickInterval {
		clamped = types.MinTickInterval
	} else if clamped > types.MaxTickInterval {
		clamped = types.MaxTickInterval
	}
	if clamped != c.Interval {
		log.Printf("Tick interval %v out of range, using %v", c.Interval, clamped)
		c.Interval = clamped
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.NewSquareGrid(c.GridSize)
}
