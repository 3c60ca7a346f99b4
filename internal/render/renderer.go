//go:build ebiten

package render

import (
	"image/color"

	"pong/internal/pong"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter fills solid rectangles by stretching a single white pixel.
type Painter struct {
	pixel *ebiten.Image
}

// NewPainter allocates the backing pixel image.
func NewPainter() *Painter {
	p := &Painter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// Clear fills the whole destination with the background color.
func (p *Painter) Clear(dst *ebiten.Image) {
	dst.Fill(Background)
}

// Fill draws r onto dst in the given color. Empty rectangles are skipped.
func (p *Painter) Fill(dst *ebiten.Image, r pong.Rect, clr color.Color) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W), float64(r.H))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(p.pixel, op)
}

// DrawMatch paints the three entities of m in their fixed colors.
func (p *Painter) DrawMatch(dst *ebiten.Image, m *pong.Match) {
	p.Fill(dst, m.Puck().Rect, PuckColor)
	p.Fill(dst, m.Left().Rect, LeftColor)
	p.Fill(dst, m.Right().Rect, RightColor)
}

// Dispose releases the pixel image.
func (p *Painter) Dispose() {
	if p.pixel != nil {
		p.pixel.Dispose()
		p.pixel = nil
	}
}
