package render

import (
	"image"
	"image/draw"

	"pxworld/internal/sims/sand"
)

// Compose draws chunk images into dst at their world positions. With
// dirtyOnly set, chunks whose dirty flag is clear are skipped. It returns
// the number of chunks drawn.
func Compose(dst *image.RGBA, chunks []*sand.Chunk, dirtyOnly bool) int {
	n := 0
	for _, c := range chunks {
		if dirtyOnly && !c.Dirty() {
			continue
		}
		src := c.RenderableImage()
		draw.Draw(dst, src.Bounds(), src, src.Bounds().Min, draw.Src)
		n++
	}
	return n
}

// Frame composes every chunk of w into a new world-sized image.
func Frame(w *sand.World) *image.RGBA {
	s := w.Size()
	dst := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
	Compose(dst, w.Chunks(), false)
	return dst
}
