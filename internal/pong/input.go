package pong

// PaddleSpeed is the vertical paddle speed in pixels per frame.
const PaddleSpeed = 20

// PaddleVelocity maps a pair of opposing keys to a vertical velocity. Down
// takes priority when both keys are held.
func PaddleVelocity(up, down bool) int {
	switch {
	case down:
		return PaddleSpeed
	case up:
		return -PaddleSpeed
	default:
		return 0
	}
}
