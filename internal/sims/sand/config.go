package sand

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Scatter controls random seeding of the top band of the world on Reset.
type Scatter struct {
	Sand  float64 `yaml:"sand"`
	Water float64 `yaml:"water"`
	Top   int     `yaml:"top"`
}

// Drop paints a square of a brush when the world is reset.
type Drop struct {
	Brush string `yaml:"brush"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Size  int    `yaml:"size"`
}

// Config controls the world dimensions, tiling and initial contents.
type Config struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	ChunkSize int `yaml:"chunk_size"`
	Border    int `yaml:"border"`

	TPS  int   `yaml:"tps"`
	Seed int64 `yaml:"seed"`

	PropagateDirty bool `yaml:"propagate_dirty"`

	Scatter Scatter `yaml:"scatter"`
	Drops   []Drop  `yaml:"drops,omitempty"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          512,
		Height:         512,
		ChunkSize:      32,
		Border:         10,
		TPS:            5,
		Seed:           1337,
		PropagateDirty: true,
		Scatter:        Scatter{Top: 64},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().With(cfg)
}

// With returns a copy of c with the recognised keys of cfg applied. Values
// that fail to parse or are out of range are ignored.
func (c Config) With(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["chunk_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunkSize = parsed
		}
	}
	if v, ok := cfg["border"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Border = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["propagate_dirty"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.PropagateDirty = parsed
		}
	}
	if v, ok := cfg["scatter_sand"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Scatter.Sand = parsed
		}
	}
	if v, ok := cfg["scatter_water"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Scatter.Water = parsed
		}
	}
	if v, ok := cfg["scatter_top"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Scatter.Top = parsed
		}
	}
	return c
}

// Validate checks that the config describes a world that can be built.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.ChunkSize <= 0 {
		return fmt.Errorf("%w: %dx%d with chunk size %d", ErrInvalidDimensions, c.Width, c.Height, c.ChunkSize)
	}
	if c.Width%c.ChunkSize != 0 || c.Height%c.ChunkSize != 0 {
		return fmt.Errorf("%w: %dx%d is not a multiple of chunk size %d", ErrInvalidDimensions, c.Width, c.Height, c.ChunkSize)
	}
	if c.Border < 0 || 2*c.Border > min(c.Width, c.Height) {
		return fmt.Errorf("%w: border %d does not fit %dx%d", ErrInvalidDimensions, c.Border, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	}
	if c.Scatter.Sand < 0 || c.Scatter.Sand > 1 || c.Scatter.Water < 0 || c.Scatter.Water > 1 {
		return fmt.Errorf("%w: scatter densities must lie in [0,1]", ErrInvalidConfig)
	}
	if c.Scatter.Top < 0 {
		return fmt.Errorf("%w: scatter band %d is negative", ErrInvalidConfig, c.Scatter.Top)
	}
	for i, d := range c.Drops {
		if _, err := BrushByName(d.Brush); err != nil {
			return fmt.Errorf("drop %d: %w", i, err)
		}
		if d.Size <= 0 {
			return fmt.Errorf("%w: drop %d has size %d", ErrInvalidConfig, i, d.Size)
		}
	}
	return nil
}

// Load reads a YAML config from path. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
