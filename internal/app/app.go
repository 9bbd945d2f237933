//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pxworld/internal/core"
	"pxworld/internal/render"
	"pxworld/internal/sims/sand"
	"pxworld/internal/ui"
)

var brushKeys = map[ebiten.Key]sand.Brush{
	ebiten.Key1: sand.BrushSand,
	ebiten.Key2: sand.BrushWater,
	ebiten.Key3: sand.BrushWood,
	ebiten.Key4: sand.BrushConcrete,
	ebiten.Key0: sand.BrushErase,
}

// Game adapts a sand world to the ebiten.Game interface. Ebiten drives
// Update at its own rate; world ticks are paced by a fixed step so the
// simulation cadence does not depend on the frame rate.
type Game struct {
	world   *sand.World
	painter *render.ChunkPainter
	picker  *ui.Picker
	clock   *core.FixedStep

	scale     int
	brushSize int
	paused    bool
	tickOnce  bool
	seed      int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, cfg *Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	brush, _ := sand.BrushByName(cfg.Brush)
	size := world.Size()
	picker := ui.NewPicker()
	picker.Select(brush)
	return &Game{
		world:     world,
		painter:   render.NewChunkPainter(size.W, size.H),
		picker:    picker,
		clock:     core.NewFixedStep(world.Config().TPS),
		scale:     cfg.Scale,
		brushSize: cfg.BrushSize,
		paused:    cfg.Paused,
		seed:      world.Config().Seed,
	}, nil
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.painter.Invalidate()
	g.clock.Reset()
	g.tickOnce = false
}

// Update handles input and advances the world by however many ticks are due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	for key, brush := range brushKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.picker.Select(brush)
		}
	}

	g.handlePointer()
	// each tick clears the previous dirty flags, so upload before stepping
	g.painter.Sync(g.world)

	ticks := g.clock.Ticks()
	if g.paused {
		ticks = 0
	}
	if g.tickOnce {
		ticks = 1
		g.tickOnce = false
	}
	for i := 0; i < ticks; i++ {
		g.world.Step()
		g.painter.Sync(g.world)
	}
	return nil
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.picker.Toggle(mx, my)
		return
	}
	if g.picker.Open() {
		g.picker.Hover(mx, my)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.picker.Close()
		}
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.world.Paint(g.picker.Selected(), mx/g.scale, my/g.scale, g.brushSize)
	}
}

// Draw renders the world, the picker and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Sync(g.world)
	g.painter.Draw(screen, g.scale)
	g.picker.Draw(screen)

	state := "running"
	if g.paused {
		state = "paused"
	}
	ui.DrawStatus(screen, fmt.Sprintf("tick %d  %s  brush %s",
		g.world.Tick(), state, g.picker.Selected().Name))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
