package breakout

// Wall reflects the ball off the ceiling and the side edges of the screen.
// The floor is open.
type Wall struct {
	Width float64
}

// Intersects inverts the velocity component that points out of the screen.
func (w Wall) Intersects(ball *Ball) {
	c := ball.Shape.Center

	// Ceiling
	if c.Y < 0 && ball.Velocity.Y < 0 {
		ball.BounceY()
	}

	// Left and right walls
	if (c.X < 0 && ball.Velocity.X < 0) || (w.Width < c.X && ball.Velocity.X > 0) {
		ball.BounceX()
	}
}
