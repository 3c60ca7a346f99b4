//go:build ebiten

package ui

import (
	"fmt"

	"pong/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Scoreboard owns the single image holding the rasterized score line.
type Scoreboard struct {
	face    font.Face
	screenW int
	img     *ebiten.Image
}

// NewScoreboard constructs a scoreboard centered on a screen of width screenW.
func NewScoreboard(face font.Face, screenW int) *Scoreboard {
	return &Scoreboard{face: face, screenW: screenW}
}

// Update discards the previous image and rasterizes s into a new one. When it
// returns an error no score is drawn until the next successful Update.
func (b *Scoreboard) Update(s string) error {
	b.release()
	box, err := render.MeasureScore(b.face, s)
	if err != nil {
		return fmt.Errorf("measure score: %w", err)
	}
	b.img = ebiten.NewImage(box.W, box.H)
	text.Draw(b.img, s, b.face, 0, box.Baseline, render.TextColor)
	return nil
}

// Draw paints the score line box horizontally centered with its top at
// render.ScoreY.
func (b *Scoreboard) Draw(screen *ebiten.Image) {
	if b.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(render.CenterX(b.screenW, b.img.Bounds().Dx())), render.ScoreY)
	screen.DrawImage(b.img, op)
}

// Close releases the score image.
func (b *Scoreboard) Close() { b.release() }

func (b *Scoreboard) release() {
	if b.img != nil {
		b.img.Dispose()
		b.img = nil
	}
}
