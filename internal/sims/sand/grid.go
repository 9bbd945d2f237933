package sand

import (
	"fmt"
	"image"

	"pxworld/internal/core"
)

// Grid owns the world's cell buffer and its chunk tiling. Chunks are views
// into the same buffer; all writes land in the single row-major slice.
type Grid struct {
	cells     *core.Grid[Cell]
	border    int
	chunkSize int
	chunksX   int
	chunksY   int
	chunks    []*Chunk
}

// NewGrid allocates a w×h world tiled by chunkSize-square chunks and fills
// it with a border-thick frame of concrete around a sky interior.
func NewGrid(w, h, chunkSize, border int) (*Grid, error) {
	if w <= 0 || h <= 0 || chunkSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d with chunk size %d", ErrInvalidDimensions, w, h, chunkSize)
	}
	if w%chunkSize != 0 || h%chunkSize != 0 {
		return nil, fmt.Errorf("%w: %dx%d is not a multiple of chunk size %d", ErrInvalidDimensions, w, h, chunkSize)
	}
	if border < 0 || 2*border > min(w, h) {
		return nil, fmt.Errorf("%w: border %d does not fit %dx%d", ErrInvalidDimensions, border, w, h)
	}
	g := &Grid{
		cells:     core.NewGrid[Cell](w, h),
		border:    border,
		chunkSize: chunkSize,
		chunksX:   w / chunkSize,
		chunksY:   h / chunkSize,
	}
	g.chunks = make([]*Chunk, 0, g.chunksX*g.chunksY)
	for cy := 0; cy < g.chunksY; cy++ {
		for cx := 0; cx < g.chunksX; cx++ {
			g.chunks = append(g.chunks, &Chunk{
				grid:  g,
				index: len(g.chunks),
				x:     cx * chunkSize,
				y:     cy * chunkSize,
				w:     chunkSize,
				h:     chunkSize,
			})
		}
	}
	g.init()
	return g, nil
}

// init writes the border frame and the sky interior. Every chunk starts dirty
// so the first redraw covers the whole world.
func (g *Grid) init() {
	w, h, b := g.cells.W, g.cells.H, g.border
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < b || x >= w-b || y < b || y >= h-b {
				g.cells.Set(x, y, Border)
				continue
			}
			g.cells.Set(x, y, Ambient)
		}
	}
	for _, c := range g.chunks {
		c.dirty = true
	}
}

// Width returns the world width in cells.
func (g *Grid) Width() int { return g.cells.W }

// Height returns the world height in cells.
func (g *Grid) Height() int { return g.cells.H }

// Border returns the thickness of the immovable frame.
func (g *Grid) Border() int { return g.border }

// ChunkSize returns the edge length of a chunk.
func (g *Grid) ChunkSize() int { return g.chunkSize }

// Cells exposes the backing buffer in row-major order.
func (g *Grid) Cells() []Cell { return g.cells.Cells() }

// InBounds reports whether (x, y) addresses a grid cell.
func (g *Grid) InBounds(x, y int) bool { return g.cells.InBounds(x, y) }

// InInterior reports whether (x, y) lies inside the border frame.
func (g *Grid) InInterior(x, y int) bool {
	b := g.border
	return x >= b && y >= b && x < g.cells.W-b && y < g.cells.H-b
}

// SetPixel encodes and writes a cell at (x, y) and marks its chunk dirty.
func (g *Grid) SetPixel(x, y int, m Material, b Behavior, c Color16) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %#02x", ErrInvalidMaterial, uint8(m))
	}
	return g.SetCell(x, y, Encode(m, b, c))
}

// SetCell writes an already encoded cell at (x, y) and marks its chunk dirty.
func (g *Grid) SetCell(x, y int, cell Cell) error {
	if !g.cells.InBounds(x, y) {
		return g.boundsError(x, y)
	}
	g.cells.Set(x, y, cell)
	g.chunkFor(x, y).dirty = true
	return nil
}

// MustSetPixel is SetPixel for callers whose coordinates are correct by
// construction. It panics on error.
func (g *Grid) MustSetPixel(x, y int, m Material, b Behavior, c Color16) {
	if err := g.SetPixel(x, y, m, b, c); err != nil {
		panic(err)
	}
}

// GetPixel returns the raw cell at (x, y).
func (g *Grid) GetPixel(x, y int) (Cell, error) {
	if !g.cells.InBounds(x, y) {
		return 0, g.boundsError(x, y)
	}
	return g.cells.At(x, y), nil
}

// ChunkAt resolves the chunk owning (x, y).
func (g *Grid) ChunkAt(x, y int) (*Chunk, error) {
	if !g.cells.InBounds(x, y) {
		return nil, g.boundsError(x, y)
	}
	return g.chunkFor(x, y), nil
}

// Chunks lists every chunk in row-major tiling order.
func (g *Grid) Chunks() []*Chunk { return g.chunks }

// ChunkGrid returns the number of chunks per row and per column.
func (g *Grid) ChunkGrid() (int, int) { return g.chunksX, g.chunksY }

// Image converts the whole world to 8 bits per channel.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.cells.W, g.cells.H))
	fillRGBA(img.Pix, g.cells.Cells())
	return img
}

func (g *Grid) chunkFor(x, y int) *Chunk {
	return g.chunks[(y/g.chunkSize)*g.chunksX+x/g.chunkSize]
}

// cell returns the value at (x, y); ok is false outside the grid.
func (g *Grid) cell(x, y int) (Cell, bool) {
	if !g.cells.InBounds(x, y) {
		return 0, false
	}
	return g.cells.At(x, y), true
}

// blocking treats anything outside the grid as blocking.
func (g *Grid) blocking(x, y int) bool {
	c, ok := g.cell(x, y)
	return !ok || c.Blocking()
}

func (g *Grid) boundsError(x, y int) error {
	return &BoundsError{X: x, Y: y, W: g.cells.W, H: g.cells.H}
}

// fillRGBA converts packed cells into RGBA pixels in buf.
func fillRGBA(buf []byte, cells []Cell) {
	for i, c := range cells {
		col := c.Color().ToRGBA()
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
