package breakout

import "math"

// Snapshot contains the complete session state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	State int

	BallX, BallY   float64
	BallVX, BallVY float64
	Elapsed        float64

	PaddleX float64

	// Brick positions (row-major), X then Y for each brick
	BrickData []float64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	brickData := make([]float64, 0, s.bricks.Len()*2)
	for i := range s.bricks.Len() {
		r := s.bricks.Brick(i)
		brickData = append(brickData, r.X, r.Y)
	}

	return Snapshot{
		Tick:      s.tick,
		State:     int(s.state),
		BallX:     s.ball.Shape.Center.X,
		BallY:     s.ball.Shape.Center.Y,
		BallVX:    s.ball.Velocity.X,
		BallVY:    s.ball.Velocity.Y,
		Elapsed:   s.ball.ElapsedTime,
		PaddleX:   s.paddle.Rect.X,
		BrickData: brickData,
	}
}

// ApplySnapshot restores session state from a snapshot. Brick data of the
// wrong length is ignored.
func (s *Session) ApplySnapshot(snap Snapshot) {
	s.tick = snap.Tick
	s.state = State(snap.State)
	s.ball.Shape.Center.X = snap.BallX
	s.ball.Shape.Center.Y = snap.BallY
	s.ball.Velocity.X = snap.BallVX
	s.ball.Velocity.Y = snap.BallVY
	s.ball.ElapsedTime = snap.Elapsed
	s.paddle.Rect.X = snap.PaddleX

	if len(snap.BrickData) == s.bricks.Len()*2 {
		for i := range s.bricks.Len() {
			s.bricks.bricks[i].X = snap.BrickData[i*2]
			s.bricks.bricks[i].Y = snap.BrickData[i*2+1]
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.Elapsed)
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, v := range snap.BrickData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
