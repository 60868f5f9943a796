package app

import (
	"flag"
	"fmt"
	"strconv"

	"seven-gates/pkg/sims/sevengates"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Width  int
	Height int
	Steps  int
	Seed   int64
	Frames bool
	Scale  int
	TPS    int

	ConfigFile string
}

// NewConfig returns a Config populated with the terminal defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "sevengates",
		Width:  32,
		Height: 16,
		Steps:  24,
		Seed:   7,
		Scale:  12,
	}
}

// NewViewerConfig returns the defaults for the desktop viewer.
func NewViewerConfig() *Config {
	c := NewConfig()
	c.TPS = 8
	return c
}

// Bind attaches the terminal flags to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width")
	fs.IntVar(&c.Height, "height", c.Height, "grid height")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of steps to simulate")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for the initial state")
	fs.BoolVar(&c.Frames, "frames", c.Frames, "print every frame instead of only the final state")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second when printing frames (0 prints as fast as possible)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML run file; flags set on the command line take precedence")
}

// BindViewer attaches the desktop viewer flags to the provided FlagSet.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width")
	fs.IntVar(&c.Height, "height", c.Height, "grid height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// SimOptions converts the config into the string map accepted by sim
// factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}

// Validate reports the first setting that cannot be run.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid %dx%d: %w", c.Width, c.Height, sevengates.ErrInvalidDimensions)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps %d: %w", c.Steps, sevengates.ErrNegativeSteps)
	}
	if c.TPS < 0 {
		return fmt.Errorf("tps %d must not be negative", c.TPS)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	return nil
}
