package sand

import "image"

// Chunk is a fixed-size rectangular view over the grid buffer. It owns no
// cells; reads and writes go straight to the grid, so a pixel moved across a
// chunk edge is visible to the neighbouring chunk immediately.
//
// All coordinates taken by Chunk methods are world coordinates.
type Chunk struct {
	grid  *Grid
	index int
	x, y  int
	w, h  int
	dirty bool
}

// Origin returns the world coordinate of the chunk's top-left cell.
func (c *Chunk) Origin() (int, int) { return c.x, c.y }

// Index returns the chunk's position in row-major tiling order.
func (c *Chunk) Index() int { return c.index }

// Bounds returns the chunk's region in world coordinates.
func (c *Chunk) Bounds() image.Rectangle {
	return image.Rect(c.x, c.y, c.x+c.w, c.y+c.h)
}

// Contains reports whether (x, y) lies inside the chunk.
func (c *Chunk) Contains(x, y int) bool {
	return x >= c.x && y >= c.y && x < c.x+c.w && y < c.y+c.h
}

// Dirty reports whether anything in the chunk changed since the flag was
// last cleared.
func (c *Chunk) Dirty() bool { return c.dirty }

// SetDirty overrides the dirty flag.
func (c *Chunk) SetDirty(d bool) { c.dirty = d }

// Pixel reads the cell at (x, y). Out-of-grid reads report ok=false.
func (c *Chunk) Pixel(x, y int) (Cell, bool) { return c.grid.cell(x, y) }

// MoveUp moves the pixel at (x, y) one cell up.
func (c *Chunk) MoveUp(x, y int) bool { return c.move(x, y, 0, -1) }

// MoveDown moves the pixel at (x, y) one cell down.
func (c *Chunk) MoveDown(x, y int) bool { return c.move(x, y, 0, 1) }

// MoveLeft moves the pixel at (x, y) one cell left.
func (c *Chunk) MoveLeft(x, y int) bool { return c.move(x, y, -1, 0) }

// MoveRight moves the pixel at (x, y) one cell right.
func (c *Chunk) MoveRight(x, y int) bool { return c.move(x, y, 1, 0) }

// MoveDownLeft moves the pixel at (x, y) diagonally down and left.
func (c *Chunk) MoveDownLeft(x, y int) bool { return c.move(x, y, -1, 1) }

// MoveDownRight moves the pixel at (x, y) diagonally down and right.
func (c *Chunk) MoveDownRight(x, y int) bool { return c.move(x, y, 1, 1) }

// Clear resets (x, y) to the ambient cell.
func (c *Chunk) Clear(x, y int) bool {
	if !c.grid.InBounds(x, y) {
		return false
	}
	c.grid.cells.Set(x, y, Ambient)
	return true
}

// move copies the full cell from (x, y) to (x+dx, y+dy) and leaves Ambient
// behind. Either end falling outside the grid makes it a no-op.
func (c *Chunk) move(x, y, dx, dy int) bool {
	g := c.grid.cells
	tx, ty := x+dx, y+dy
	if !g.InBounds(x, y) || !g.InBounds(tx, ty) {
		return false
	}
	g.Set(tx, ty, g.At(x, y))
	g.Set(x, y, Ambient)
	return true
}

// RenderableImage converts the chunk's region to 8 bits per channel. The
// image bounds start at the chunk origin so it can be drawn into a
// world-sized image without translation.
func (c *Chunk) RenderableImage() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	g := c.grid.cells
	for row := 0; row < c.h; row++ {
		start := g.Index(c.x, c.y+row)
		off := row * img.Stride
		fillRGBA(img.Pix[off:off+c.w*4], g.Cells()[start:start+c.w])
	}
	return img
}
