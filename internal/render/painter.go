//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pxworld/internal/sims/sand"
)

// ChunkPainter keeps a world-sized ebiten image in sync with a sand world,
// uploading only the chunks flagged dirty.
type ChunkPainter struct {
	w, h     int
	img      *ebiten.Image
	revision uint64
	primed   bool
}

// NewChunkPainter allocates a painter for a world of size w*h.
func NewChunkPainter(w, h int) *ChunkPainter {
	return &ChunkPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Sync uploads chunks changed since the previous call and returns how many
// were written. The first call uploads every chunk.
func (p *ChunkPainter) Sync(world *sand.World) int {
	if p.primed && world.Revision() == p.revision {
		return 0
	}
	n := 0
	for _, c := range world.Chunks() {
		if p.primed && !c.Dirty() {
			continue
		}
		src := c.RenderableImage()
		sub := p.img.SubImage(c.Bounds()).(*ebiten.Image)
		sub.WritePixels(src.Pix)
		n++
	}
	p.primed = true
	p.revision = world.Revision()
	return n
}

// Invalidate forces the next Sync to upload every chunk.
func (p *ChunkPainter) Invalidate() { p.primed = false }

// Draw blits the world image onto dst at the given scale.
func (p *ChunkPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *ChunkPainter) Size() (int, int) { return p.w, p.h }
