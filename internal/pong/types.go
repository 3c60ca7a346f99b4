package pong

// Size describes the dimensions of the playing field.
type Size struct {
	W int
	H int
}

// Arena is the fixed logical play area.
var Arena = Size{W: 1080, H: 720}

// Rect is an axis-aligned rectangle in integer pixel coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Overlaps reports whether r and o share a non-zero area. Edges are
// half-open, so rectangles that only touch do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Side identifies one of the two players.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// Input is the sampled key state for one frame.
type Input struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool
}

// Events reports what happened during a single Step.
type Events struct {
	Goal   Side
	Winner Side
}
