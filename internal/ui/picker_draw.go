//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"pxworld/internal/sims/sand"
)

var (
	pickerBackdrop = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	pickerShade    = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	pickerOutline  = color.RGBA{R: 255, G: 255, B: 255, A: 230}
)

// Draw renders the picker disc when open.
func (p *Picker) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	cx, cy, r := float32(p.cx), float32(p.cy), float32(p.radius)
	vector.DrawFilledCircle(screen, cx, cy, r, pickerBackdrop, true)

	if p.hovered {
		fill := p.selected.Color.ToRGBA()
		fill.A = 160
		vector.DrawFilledCircle(screen, cx, cy, r-2, fill, true)
		// shade the half that is not selected
		if p.selected == sand.BrushSand {
			vector.DrawFilledRect(screen, cx, cy-r, r, 2*r, pickerShade, true)
		} else {
			vector.DrawFilledRect(screen, cx-r, cy-r, r, 2*r, pickerShade, true)
		}
	}

	vector.StrokeCircle(screen, cx, cy, r, 1, pickerOutline, true)
	vector.StrokeLine(screen, cx, cy-r, cx, cy+r, 1, pickerOutline, true)

	face := basicfont.Face7x13
	text.Draw(screen, "sand", face, p.cx-p.radius+6, p.cy+4, pickerOutline)
	text.Draw(screen, "water", face, p.cx+6, p.cy+4, pickerOutline)
}

// DrawStatus prints a one-line status in the top-left corner.
func DrawStatus(screen *ebiten.Image, line string) {
	text.Draw(screen, line, basicfont.Face7x13, 6, 16, pickerOutline)
}
