package app

import (
	"fmt"

	"github.com/spf13/pflag"

	"pxworld/internal/sims/sand"
)

// Config represents the command-line parameters of the windowed front end.
type Config struct {
	Scale     int
	BrushSize int
	Brush     string
	Paused    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 2, BrushSize: 30, Brush: sand.BrushSand.Name}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.BrushSize, "brush-size", c.BrushSize, "edge length of the paint brush")
	fs.StringVar(&c.Brush, "brush", c.Brush, "initial brush")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the simulation paused")
}

// Validate checks the values after flag parsing.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.BrushSize <= 0 {
		return fmt.Errorf("brush size must be positive, got %d", c.BrushSize)
	}
	if _, err := sand.BrushByName(c.Brush); err != nil {
		return err
	}
	return nil
}
