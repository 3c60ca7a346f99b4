package pong

import "strconv"

// scoreGap separates the two numbers in the score line.
const scoreGap = "        "

// Score holds the points of both players.
type Score struct {
	Left  uint
	Right uint
}

// Text formats the score the way it is shown at the top of the screen.
func (s Score) Text() string {
	return strconv.FormatUint(uint64(s.Left), 10) + scoreGap + strconv.FormatUint(uint64(s.Right), 10)
}

// Reset zeroes both counters.
func (s *Score) Reset() {
	s.Left, s.Right = 0, 0
}
