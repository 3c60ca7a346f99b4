package render

import "image/color"

// Frame colors.
var (
	Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	PuckColor  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	LeftColor  = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	RightColor = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	TextColor  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

const (
	// ScoreY is the top of the score line in logical pixels.
	ScoreY = 24
	// FontSize is the point size used for the score.
	FontSize = 64
)

// rgba8 converts c to 8-bit channels suitable for draw-color APIs.
func rgba8(c color.Color) (r, g, b, a uint8) {
	cr, cg, cb, ca := c.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}

// CenterX returns the x offset that centers an item of width w in a span of
// total pixels.
func CenterX(total, w int) int {
	return (total - w) / 2
}
