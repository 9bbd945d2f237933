package sand

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.TPS != 5 || cfg.Border != 10 || !cfg.PropagateDirty {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":               "128",
		"h":               "64",
		"chunk_size":      "16",
		"border":          "2",
		"tps":             "30",
		"seed":            "-5",
		"propagate_dirty": "false",
		"scatter_sand":    "0.4",
		"scatter_water":   "1.5",
		"scatter_top":     "12",
	})
	if cfg.Width != 128 || cfg.Height != 64 || cfg.ChunkSize != 16 || cfg.Border != 2 {
		t.Fatalf("dimensions not applied: %+v", cfg)
	}
	if cfg.TPS != 30 || cfg.Seed != -5 || cfg.PropagateDirty {
		t.Fatalf("timing/seed not applied: %+v", cfg)
	}
	if cfg.Scatter.Sand != 0.4 || cfg.Scatter.Top != 12 {
		t.Fatalf("scatter not applied: %+v", cfg.Scatter)
	}
	if cfg.Scatter.Water != 0 {
		t.Fatalf("out-of-range water density should be ignored, got %v", cfg.Scatter.Water)
	}

	ignored := FromMap(map[string]string{"w": "nope", "tps": "-1"})
	def := DefaultConfig()
	if ignored.Width != def.Width || ignored.TPS != def.TPS {
		t.Fatalf("invalid values should keep defaults, got %+v", ignored)
	}
	if got := FromMap(nil); got.Width != def.Width {
		t.Fatal("nil map should return defaults")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
		want error
	}{
		{"chunk mismatch", func(c *Config) { c.Width = 500 }, ErrInvalidDimensions},
		{"border too thick", func(c *Config) { c.Border = 300 }, ErrInvalidDimensions},
		{"zero tps", func(c *Config) { c.TPS = 0 }, ErrInvalidConfig},
		{"bad density", func(c *Config) { c.Scatter.Sand = 2 }, ErrInvalidConfig},
		{"unknown drop brush", func(c *Config) { c.Drops = []Drop{{Brush: "lava", Size: 1}} }, ErrUnknownBrush},
		{"empty drop", func(c *Config) { c.Drops = []Drop{{Brush: "sand"}} }, ErrInvalidConfig},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mut(&cfg)
			if err := cfg.Validate(); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if _, err := NewWithConfig(cfg); !errors.Is(err, c.want) {
				t.Fatalf("NewWithConfig expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	cfg := DefaultConfig()
	cfg.Width = 128
	cfg.Drops = []Drop{{Brush: "water", X: 20, Y: 20, Size: 8}}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Width != 128 || len(loaded.Drops) != 1 || loaded.Drops[0].Brush != "water" {
		t.Fatalf("round trip lost data: %+v", loaded)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("width: 64\nheight: 64\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 64 || cfg.ChunkSize != 32 || cfg.TPS != 5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
