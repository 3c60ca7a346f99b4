package render

import (
	"errors"

	"golang.org/x/image/font"
)

// ScoreBox is the line box a score string occupies: its advance width and
// the font's ascent plus descent, with the baseline Ascent pixels below the
// top. The box top sits at ScoreY in both backends.
type ScoreBox struct {
	W, H     int
	Baseline int
}

// MeasureScore returns the line box of s set in face.
func MeasureScore(face font.Face, s string) (ScoreBox, error) {
	if face == nil {
		return ScoreBox{}, errors.New("no font face")
	}
	w := font.MeasureString(face, s).Ceil()
	if w <= 0 {
		return ScoreBox{}, errors.New("score text has no width")
	}
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	if h <= 0 {
		return ScoreBox{}, errors.New("font face has no height")
	}
	return ScoreBox{W: w, H: h, Baseline: m.Ascent.Ceil()}, nil
}
