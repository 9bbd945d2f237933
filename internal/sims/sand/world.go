package sand

import (
	"fmt"
	"image"

	"pxworld/internal/core"
	prng "pxworld/pkg/core"
)

// World ties the grid, its chunks and the step engine together.
type World struct {
	cfg Config

	grid   *Grid
	engine *Engine

	tick     uint64
	revision uint64
	last     StepStats
}

var _ core.Sim = (*World)(nil)

// New returns a world of the given dimensions using the default config.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and returns a world reset with cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height, cfg.ChunkSize, cfg.Border)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:    cfg,
		grid:   grid,
		engine: NewEngine(cfg.PropagateDirty),
	}
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Config returns the configuration the world was built from.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the cell grid for reads and edits.
func (w *World) Grid() *Grid { return w.grid }

// Chunks lists the chunks in row-major tiling order.
func (w *World) Chunks() []*Chunk { return w.grid.Chunks() }

// Tick returns the number of ticks run since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// Revision changes whenever a tick moves a pixel or an edit writes cells.
func (w *World) Revision() uint64 { return w.revision }

// LastStats returns the statistics of the most recent tick.
func (w *World) LastStats() StepStats { return w.last }

// Image converts the whole world to 8 bits per channel.
func (w *World) Image() *image.RGBA { return w.grid.Image() }

// Reset rebuilds the initial world: border and sky, then scatter seeding,
// then the configured drops. A zero seed falls back to the config seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.grid.init()
	w.scatter(prng.NewRNG(effective))
	for _, d := range w.cfg.Drops {
		b, err := BrushByName(d.Brush)
		if err != nil {
			continue
		}
		w.Paint(b, d.X, d.Y, d.Size)
	}
	w.tick = 0
	w.last = StepStats{}
	w.revision++
}

// Step advances the world by one tick.
func (w *World) Step() {
	w.last = w.engine.Step(w.grid)
	w.tick++
	if w.last.Moved > 0 {
		w.revision++
	}
}

// PaintNamed paints with the preset called name.
func (w *World) PaintNamed(name string, x, y, size int) (int, error) {
	b, err := BrushByName(name)
	if err != nil {
		return 0, err
	}
	return w.Paint(b, x, y, size), nil
}

// Count tallies the cells of each material.
func (w *World) Count() map[Material]int {
	counts := make(map[Material]int)
	for _, c := range w.grid.Cells() {
		counts[c.Material()]++
	}
	return counts
}

func (w *World) String() string {
	s := w.Size()
	return fmt.Sprintf("%s %dx%d tick=%d", w.Name(), s.W, s.H, w.tick)
}

func (w *World) scatter(rng *prng.RNG) {
	sc := w.cfg.Scatter
	if sc.Top <= 0 || (sc.Sand <= 0 && sc.Water <= 0) {
		return
	}
	b := w.grid.Border()
	sand, water := BrushSand.Cell(), BrushWater.Cell()
	for y := b; y < b+sc.Top && y < w.grid.Height()-b; y++ {
		for x := b; x < w.grid.Width()-b; x++ {
			switch {
			case rng.Chance(sc.Sand):
				w.grid.SetCell(x, y, sand)
			case rng.Chance(sc.Water):
				w.grid.SetCell(x, y, water)
			}
		}
	}
}
