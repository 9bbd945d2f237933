package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// Terminal renders img as lines of upper-half-block glyphs: the foreground
// paints the upper pixel and the background the one below, so each line
// covers two sampled rows. The image is downsampled by nearest neighbour to
// at most cols columns.
func Terminal(img image.Image, cols int) string {
	b := img.Bounds()
	if b.Empty() {
		return ""
	}
	if cols <= 0 {
		cols = 80
	}
	step := (b.Dx() + cols - 1) / cols
	if step < 1 {
		step = 1
	}

	var sb strings.Builder
	styles := make(map[[2]string]lipgloss.Style)
	for y := b.Min.Y; y < b.Max.Y; y += 2 * step {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		lower := y + step
		for x := b.Min.X; x < b.Max.X; x += step {
			top := hex(img.At(x, y))
			bottom := top
			if lower < b.Max.Y {
				bottom = hex(img.At(x, lower))
			}
			key := [2]string{top, bottom}
			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bottom))
				styles[key] = style
			}
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String()
}

func hex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
