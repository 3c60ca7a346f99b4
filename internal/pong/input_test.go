package pong

import "testing"

func TestPaddleVelocity(t *testing.T) {
	cases := []struct {
		up, down bool
		want     int
	}{
		{false, false, 0},
		{true, false, -PaddleSpeed},
		{false, true, PaddleSpeed},
		{true, true, PaddleSpeed},
	}
	for _, tc := range cases {
		if got := PaddleVelocity(tc.up, tc.down); got != tc.want {
			t.Fatalf("PaddleVelocity(up=%v, down=%v) = %d, expected %d", tc.up, tc.down, got, tc.want)
		}
	}
}
