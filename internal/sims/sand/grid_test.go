package sand

import (
	"errors"
	"testing"
)

func newTestGrid(t *testing.T, w, h, chunk, border int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, chunk, border)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name             string
		w, h, chunk, brd int
	}{
		{"zero width", 0, 32, 16, 0},
		{"zero chunk", 32, 32, 0, 0},
		{"not a multiple", 40, 32, 16, 0},
		{"negative border", 32, 32, 16, -1},
		{"border too thick", 32, 32, 16, 17},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewGrid(c.w, c.h, c.chunk, c.brd)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}

func TestGridInitBorderAndSky(t *testing.T) {
	g := newTestGrid(t, 32, 32, 16, 3)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			cell, err := g.GetPixel(x, y)
			if err != nil {
				t.Fatalf("GetPixel(%d,%d): %v", x, y, err)
			}
			inBorder := x < 3 || y < 3 || x >= 29 || y >= 29
			if inBorder && cell != Border {
				t.Fatalf("(%d,%d) = %#08x, want border", x, y, uint32(cell))
			}
			if !inBorder && cell != Ambient {
				t.Fatalf("(%d,%d) = %#08x, want ambient", x, y, uint32(cell))
			}
			if inBorder != !g.InInterior(x, y) {
				t.Fatalf("InInterior(%d,%d) disagrees with border layout", x, y)
			}
		}
	}
}

func TestSetPixelBounds(t *testing.T) {
	g := newTestGrid(t, 16, 16, 8, 0)
	err := g.SetPixel(16, 0, MaterialSand, BehaviorFalling, ColorSand)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	var be *BoundsError
	if !errors.As(err, &be) || be.X != 16 || be.Y != 0 {
		t.Fatalf("expected BoundsError at (16,0), got %v", err)
	}
	if _, err := g.GetPixel(-1, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("GetPixel(-1,3) expected ErrOutOfBounds, got %v", err)
	}
	if _, err := g.ChunkAt(3, 16); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("ChunkAt(3,16) expected ErrOutOfBounds, got %v", err)
	}
	if err := g.SetPixel(1, 1, Material(0x03), BehaviorStatic, 0); !errors.Is(err, ErrInvalidMaterial) {
		t.Fatalf("expected ErrInvalidMaterial, got %v", err)
	}
}

func TestMustSetPixelPanicsOutOfBounds(t *testing.T) {
	g := newTestGrid(t, 8, 8, 8, 0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	g.MustSetPixel(8, 8, MaterialSand, BehaviorFalling, ColorSand)
}

func TestSetPixelWritesAndMarksChunk(t *testing.T) {
	g := newTestGrid(t, 16, 16, 8, 0)
	for _, c := range g.Chunks() {
		c.SetDirty(false)
	}
	g.MustSetPixel(9, 2, MaterialSand, BehaviorFalling|BehaviorBlocking, ColorSand)
	cell, _ := g.GetPixel(9, 2)
	if cell.Material() != MaterialSand || cell.Color() != ColorSand {
		t.Fatalf("unexpected cell %#08x", uint32(cell))
	}
	for i, c := range g.Chunks() {
		if want := i == 1; c.Dirty() != want {
			t.Fatalf("chunk %d dirty=%v, want %v", i, c.Dirty(), want)
		}
	}
}

func TestChunkTilingIsRowMajorAndTotal(t *testing.T) {
	g := newTestGrid(t, 64, 32, 16, 0)
	cx, cy := g.ChunkGrid()
	if cx != 4 || cy != 2 || len(g.Chunks()) != 8 {
		t.Fatalf("expected 4x2 chunks, got %dx%d (%d)", cx, cy, len(g.Chunks()))
	}
	for i, c := range g.Chunks() {
		x, y := c.Origin()
		if x != (i%4)*16 || y != (i/4)*16 || c.Index() != i {
			t.Fatalf("chunk %d origin (%d,%d)", i, x, y)
		}
	}
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			owners := 0
			for _, c := range g.Chunks() {
				if c.Contains(x, y) {
					owners++
				}
			}
			if owners != 1 {
				t.Fatalf("(%d,%d) owned by %d chunks", x, y, owners)
			}
			c, err := g.ChunkAt(x, y)
			if err != nil || !c.Contains(x, y) {
				t.Fatalf("ChunkAt(%d,%d) resolved to a chunk that does not contain it", x, y)
			}
		}
	}
}

func TestChunkMovePrimitives(t *testing.T) {
	g := newTestGrid(t, 16, 16, 8, 0)
	c, _ := g.ChunkAt(4, 4)
	sand := BrushSand.Cell()
	g.SetCell(4, 4, sand)

	steps := []struct {
		name   string
		move   func(x, y int) bool
		tx, ty int
	}{
		{"down", c.MoveDown, 4, 5},
		{"right", c.MoveRight, 5, 5},
		{"up", c.MoveUp, 5, 4},
		{"left", c.MoveLeft, 4, 4},
		{"down-right", c.MoveDownRight, 5, 5},
		{"down-left", c.MoveDownLeft, 4, 6},
	}
	x, y := 4, 4
	for _, s := range steps {
		if !s.move(x, y) {
			t.Fatalf("%s: move reported failure", s.name)
		}
		if got, _ := c.Pixel(s.tx, s.ty); got != sand {
			t.Fatalf("%s: destination holds %#08x", s.name, uint32(got))
		}
		if got, _ := c.Pixel(x, y); got != Ambient {
			t.Fatalf("%s: source holds %#08x, want ambient", s.name, uint32(got))
		}
		x, y = s.tx, s.ty
	}
	if c.MoveLeft(0, 0) {
		t.Fatal("moving off the grid must fail")
	}
	if !c.Clear(x, y) {
		t.Fatal("Clear reported failure")
	}
	if got, _ := c.Pixel(x, y); got != Ambient {
		t.Fatalf("Clear left %#08x", uint32(got))
	}
	if _, ok := c.Pixel(-1, 0); ok {
		t.Fatal("out-of-grid Pixel must report ok=false")
	}
}

func TestChunkRenderableImage(t *testing.T) {
	g := newTestGrid(t, 16, 16, 8, 0)
	g.SetCell(9, 10, BrushWater.Cell())
	c, _ := g.ChunkAt(9, 10)
	img := c.RenderableImage()
	if img.Bounds() != c.Bounds() {
		t.Fatalf("image bounds %v, want %v", img.Bounds(), c.Bounds())
	}
	if got := img.RGBAAt(9, 10); got != rgb(33, 105, 247) {
		t.Fatalf("water pixel rendered as %v", got)
	}
	if got := img.RGBAAt(8, 8); got != rgb(181, 255, 255) {
		t.Fatalf("sky pixel rendered as %v", got)
	}
	world := g.Image()
	if world.RGBAAt(9, 10) != img.RGBAAt(9, 10) {
		t.Fatal("world image disagrees with chunk image")
	}
}
