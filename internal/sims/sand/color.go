package sand

import "image/color"

// ToRGBA converts the 5-6-5 color to 8 bits per channel. Each channel is
// scaled with rounding: 5-bit channels by (v*527+23)>>6, the 6-bit channel
// by (v*259+33)>>6.
func (c Color16) ToRGBA() color.RGBA {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	return color.RGBA{
		R: uint8((r5*527 + 23) >> 6),
		G: uint8((g6*259 + 33) >> 6),
		B: uint8((b5*527 + 23) >> 6),
		A: 0xFF,
	}
}

// RGBA8888 packs the converted color as 0xRRGGBBAA.
func (c Color16) RGBA8888() uint32 {
	rgba := c.ToRGBA()
	return uint32(rgba.R)<<24 | uint32(rgba.G)<<16 | uint32(rgba.B)<<8 | uint32(rgba.A)
}
