package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the single ball in play.
type Ball struct {
	Velocity    core.Vec2
	Shape       core.Circle
	ElapsedTime float64 // Seconds of play, only advanced when ramp-up is on

	cfg config.BallConfig
}

// NewBall places a ball at its configured start, moving straight up.
func NewBall(cfg config.BallConfig) Ball {
	return Ball{
		Velocity: core.Vec2{X: 0, Y: -cfg.BaseSpeed()},
		Shape:    core.NewCircle(cfg.X, cfg.Y, cfg.Radius),
		cfg:      cfg,
	}
}

// TargetSpeed returns the speed the ball should have after elapsed seconds.
func (b *Ball) TargetSpeed(elapsed float64) float64 {
	if !b.cfg.RampUp {
		return b.cfg.Speed
	}
	return math.Min(b.cfg.InitialSpeed+elapsed*b.cfg.SpeedIncrement, b.cfg.MaxSpeed)
}

// BaseSpeed is the speed bounces off the paddle normalize to.
func (b *Ball) BaseSpeed() float64 {
	return b.cfg.BaseSpeed()
}

// Speed returns the current velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Velocity.Length()
}

// Update advances the speed ramp and moves the ball by dt seconds.
func (b *Ball) Update(dt float64) {
	if b.cfg.RampUp {
		b.ElapsedTime += dt
	}
	b.Velocity = b.Velocity.SetLength(b.TargetSpeed(b.ElapsedTime))
	b.Shape = b.Shape.MovedBy(b.Velocity.Scale(dt))
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Velocity.X = -b.Velocity.X
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Velocity.Y = -b.Velocity.Y
}

// Draw renders the ball.
func (b *Ball) Draw(c core.Canvas) {
	c.FillCircle(b.Shape, core.ColorWhite)
}
