package render

import (
	"image/color"
	"testing"
)

func TestRGBA8(t *testing.T) {
	r, g, b, a := rgba8(LeftColor)
	if r != 0xff || g != 0 || b != 0 || a != 0xff {
		t.Fatalf("rgba8(LeftColor) = (%d,%d,%d,%d)", r, g, b, a)
	}
	r, g, b, a = rgba8(color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xff})
	if r != 0x80 || g != 0x40 || b != 0x20 || a != 0xff {
		t.Fatalf("rgba8(nrgba) = (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestCenterX(t *testing.T) {
	cases := []struct{ total, w, want int }{
		{1080, 280, 400},
		{1080, 1080, 0},
		{1080, 281, 399},
		{1080, 1200, -60},
	}
	for _, tc := range cases {
		if got := CenterX(tc.total, tc.w); got != tc.want {
			t.Fatalf("CenterX(%d, %d) = %d, expected %d", tc.total, tc.w, got, tc.want)
		}
	}
}
