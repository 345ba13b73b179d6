package app

import (
	"flag"
	"fmt"
	"time"

	"ca-sheet/internal/evolve"

	"go.uber.org/multierr"
)

// Config represents the command-line parameters for the frontends.
type Config struct {
	Rows   int
	Cols   int
	Seed   int64
	Policy evolve.ReseedPolicy
	Mode   evolve.Mode

	Cell     int
	TPS      int
	StepTPS  int
	Auto     bool
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := evolve.DefaultConfig()
	return &Config{
		Rows:     d.Rows,
		Cols:     d.Cols,
		Policy:   d.Policy,
		Mode:     d.Mode,
		Cell:     10,
		TPS:      60,
		StepTPS:  2,
		HUDWidth: 180,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for reseeding (0 picks one from the clock)")
	fs.TextVar(&c.Policy, "policy", c.Policy, "rows seeded on a full-sheet reset: even, every or first")
	fs.TextVar(&c.Mode, "mode", c.Mode, "initial mode: sheet or frontier")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.StepTPS, "step-tps", c.StepTPS, "automatic generation steps per second")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "start with automatic generation steps running")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	err := c.Evolve().Validate()
	if c.Cell < 1 {
		err = multierr.Append(err, fmt.Errorf("cell must be at least 1, got %d", c.Cell))
	}
	if c.TPS < 1 {
		err = multierr.Append(err, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.StepTPS < 1 || c.StepTPS > maxStepTPS {
		err = multierr.Append(err, fmt.Errorf("step-tps must be in [1, %d], got %d", maxStepTPS, c.StepTPS))
	}
	if c.HUDWidth < 0 {
		err = multierr.Append(err, fmt.Errorf("hud must not be negative, got %d", c.HUDWidth))
	}
	return err
}

// ResolveSeed replaces a zero seed with one derived from the clock and
// returns the seed in effect.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// Evolve extracts the controller configuration.
func (c *Config) Evolve() evolve.Config {
	return evolve.Config{Rows: c.Rows, Cols: c.Cols, Policy: c.Policy, Mode: c.Mode, Seed: c.Seed}
}

// StepInterval is the delay between automatic generation steps.
func (c *Config) StepInterval() time.Duration {
	if c.StepTPS < 1 {
		return time.Second
	}
	return time.Second / time.Duration(c.StepTPS)
}

const maxStepTPS = 60
