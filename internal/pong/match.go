package pong

// WinScore is the number of points that ends a match.
const WinScore = 10

var (
	puckStart = Entity{
		Rect:    Rect{X: 530, Y: 350, W: 20, H: 20},
		VelX:    10,
		VelY:    10,
		Bounces: true,
	}
	leftStart  = Entity{Rect: Rect{X: 24, Y: 270, W: 20, H: 90}}
	rightStart = Entity{Rect: Rect{X: 1036, Y: 270, W: 20, H: 90}}
)

// Match stores the complete state of one game.
type Match struct {
	bounds Size

	puck  Entity
	left  Entity
	right Entity

	score  Score
	winner Side
}

// NewMatch returns a match on the standard arena with entities at their
// starting positions.
func NewMatch() *Match {
	m := &Match{bounds: Arena}
	m.Reset()
	return m
}

// Reset puts every entity back at its start and zeroes the score.
func (m *Match) Reset() {
	m.puck = puckStart
	m.left = leftStart
	m.right = rightStart
	m.score.Reset()
	m.winner = SideNone
}

// Bounds returns the play area.
func (m *Match) Bounds() Size { return m.bounds }

// Puck returns a pointer to the puck entity.
func (m *Match) Puck() *Entity { return &m.puck }

// Left returns a pointer to the left paddle.
func (m *Match) Left() *Entity { return &m.left }

// Right returns a pointer to the right paddle.
func (m *Match) Right() *Entity { return &m.right }

// Score returns the current score.
func (m *Match) Score() Score { return m.score }

// Winner returns the side that reached WinScore, or SideNone.
func (m *Match) Winner() Side { return m.winner }

// Over reports whether the match has a winner.
func (m *Match) Over() bool { return m.winner != SideNone }

// Step advances the match by one frame. Paddle velocities sampled from in
// apply from the next frame's move onward. Once the match is over Step
// leaves the state untouched.
func (m *Match) Step(in Input) Events {
	if m.Over() {
		return Events{Winner: m.winner}
	}

	m.puck.Move(m.bounds)
	m.left.Move(m.bounds)
	m.right.Move(m.bounds)

	m.left.VelY = PaddleVelocity(in.LeftUp, in.LeftDown)
	m.right.VelY = PaddleVelocity(in.RightUp, in.RightDown)

	m.collide()

	ev := Events{Goal: m.checkGoal()}
	ev.Winner = m.checkWinner()
	return ev
}

// collide reflects the puck off either paddle. Both paddles are tested, so
// a puck overlapping both in one frame reflects twice.
func (m *Match) collide() {
	if m.puck.Overlaps(m.left.Rect) {
		m.puck.X = m.left.Right()
		m.puck.VelX = -m.puck.VelX
	}
	if m.puck.Overlaps(m.right.Rect) {
		m.puck.X = m.right.X - m.puck.W
		m.puck.VelX = -m.puck.VelX
	}
}

func (m *Match) checkGoal() Side {
	switch {
	case m.puck.X > m.right.Right():
		m.score.Left++
		m.resetPuck()
		return SideLeft
	case m.puck.Right() < m.left.X:
		m.score.Right++
		m.resetPuck()
		return SideRight
	}
	return SideNone
}

// resetPuck recenters the puck and keeps its velocity.
func (m *Match) resetPuck() {
	m.puck.X = puckStart.X
	m.puck.Y = puckStart.Y
}

func (m *Match) checkWinner() Side {
	switch {
	case m.score.Right >= WinScore:
		m.winner = SideRight
	case m.score.Left >= WinScore:
		m.winner = SideLeft
	}
	return m.winner
}
