package app

import (
	"fmt"
	"io"

	"pong/internal/pong"
)

// Session drives a match one frame at a time and reports score changes and
// the final result to out.
type Session struct {
	match *pong.Match
	out   io.Writer
	done  bool
}

// NewSession starts a fresh match that reports to out.
func NewSession(out io.Writer) *Session {
	if out == nil {
		out = io.Discard
	}
	return &Session{match: pong.NewMatch(), out: out}
}

// Match exposes the underlying match for drawing.
func (s *Session) Match() *pong.Match { return s.match }

// ScoreText returns the current score line.
func (s *Session) ScoreText() string { return s.match.Score().Text() }

// Done reports whether the match has been decided.
func (s *Session) Done() bool { return s.done }

// Stop ends the session without a result, for a closed window or a quit key.
func (s *Session) Stop() { s.done = true }

// Advance steps the match with the sampled input. It returns true once the
// loop must stop; the frame that produced the win is still expected to be
// drawn by the caller.
func (s *Session) Advance(in pong.Input) bool {
	if s.done {
		return true
	}
	ev := s.match.Step(in)
	if ev.Goal != pong.SideNone {
		score := s.match.Score()
		fmt.Fprintf(s.out, "Left: %d, Right: %d\n", score.Left, score.Right)
	}
	if ev.Winner != pong.SideNone {
		fmt.Fprintf(s.out, "%s Wins!\n", ev.Winner)
		s.done = true
	}
	return s.done
}

// Close zeroes the score at shutdown.
func (s *Session) Close() {
	s.match.Reset()
}
