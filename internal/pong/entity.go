package pong

// Entity is anything on the field with its own physics.
type Entity struct {
	Rect
	VelX, VelY int
	Bounces    bool
}

// Move advances the entity by its velocity, one axis at a time. A move that
// leaves the bounds is undone; bouncing entities also reverse on that axis.
func (e *Entity) Move(bounds Size) {
	e.X += e.VelX
	if e.X > bounds.W || e.X < -e.W {
		e.X -= e.VelX
		if e.Bounces {
			e.VelX = -e.VelX
		}
	}

	e.Y += e.VelY
	if e.Y+e.H > bounds.H || e.Y < 0 {
		e.Y -= e.VelY
		if e.Bounces {
			e.VelY = -e.VelY
		}
	}
}
