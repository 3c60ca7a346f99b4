package pong

import "testing"

func TestScoreText(t *testing.T) {
	cases := []struct {
		score Score
		want  string
	}{
		{Score{}, "0        0"},
		{Score{Left: 3, Right: 12}, "3        12"},
		{Score{Left: 123456, Right: 654321}, "123456        654321"},
	}
	for _, tc := range cases {
		if got := tc.score.Text(); got != tc.want {
			t.Fatalf("Text(%+v) = %q, expected %q", tc.score, got, tc.want)
		}
	}
}

func TestScoreReset(t *testing.T) {
	s := Score{Left: 4, Right: 7}
	s.Reset()
	if s != (Score{}) {
		t.Fatalf("Reset left %+v", s)
	}
}
