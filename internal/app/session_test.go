package app

import (
	"bytes"
	"strings"
	"testing"

	"pong/internal/pong"
)

// sendLeft parks the puck just short of the right goal line so the next
// Advance scores for the left player.
func sendLeft(s *Session) {
	p := s.Match().Puck()
	p.X, p.Y = 1060, 600
	p.VelX, p.VelY = 10, 0
}

func sendRight(s *Session) {
	p := s.Match().Puck()
	p.X, p.Y = -10, 600
	p.VelX, p.VelY = -10, 0
}

func TestSessionReportsGoals(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out)

	if s.Advance(pong.Input{}) {
		t.Fatal("first frame must not end the session")
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}

	sendLeft(s)
	s.Advance(pong.Input{})
	sendRight(s)
	s.Advance(pong.Input{})

	want := "Left: 1, Right: 0\nLeft: 1, Right: 1\n"
	if out.String() != want {
		t.Fatalf("output = %q, expected %q", out.String(), want)
	}
	if s.ScoreText() != "1        1" {
		t.Fatalf("score text = %q", s.ScoreText())
	}
}

func TestSessionAnnouncesWinner(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out)

	for i := 0; i < pong.WinScore; i++ {
		if s.Done() {
			t.Fatalf("session ended after %d goals", i)
		}
		sendRight(s)
		stop := s.Advance(pong.Input{})
		if stop != (i == pong.WinScore-1) {
			t.Fatalf("goal %d: stop = %v", i+1, stop)
		}
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != pong.WinScore+1 {
		t.Fatalf("got %d lines, expected %d: %q", len(lines), pong.WinScore+1, out.String())
	}
	if lines[len(lines)-2] != "Left: 0, Right: 10" {
		t.Fatalf("last score line = %q", lines[len(lines)-2])
	}
	if lines[len(lines)-1] != "Right Wins!" {
		t.Fatalf("win line = %q", lines[len(lines)-1])
	}

	n := out.Len()
	if !s.Advance(pong.Input{}) || out.Len() != n {
		t.Fatal("a finished session must keep reporting stop without output")
	}
}

func TestSessionCloseResetsScore(t *testing.T) {
	s := NewSession(nil)
	sendLeft(s)
	s.Advance(pong.Input{})
	if s.Match().Score().Left != 1 {
		t.Fatal("goal not counted")
	}
	s.Close()
	if s.Match().Score() != (pong.Score{}) {
		t.Fatalf("score after Close = %+v", s.Match().Score())
	}
}

func TestSessionStopEndsWithoutResult(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out)
	s.Advance(pong.Input{})

	s.Stop()
	if !s.Done() {
		t.Fatal("Stop must mark the session done")
	}
	sendLeft(s)
	if !s.Advance(pong.Input{}) {
		t.Fatal("a stopped session must report stop")
	}
	if out.Len() != 0 {
		t.Fatalf("stopped session wrote %q", out.String())
	}
	if s.Match().Score() != (pong.Score{}) || s.Match().Over() {
		t.Fatal("stopping must not score or pick a winner")
	}
	if p := *s.Match().Puck(); p.X != 1060 || p.Y != 600 {
		t.Fatalf("stopped session advanced the puck to %+v", p)
	}
}
