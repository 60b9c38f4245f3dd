package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player's paddle. Its center follows the cursor horizontally;
// its row never changes.
type Paddle struct {
	Rect core.Rect
	cfg  config.PaddleConfig
}

// NewPaddle creates a paddle centered on cursorX.
func NewPaddle(cfg config.PaddleConfig, cursorX float64) Paddle {
	return Paddle{
		Rect: core.RectAtCenter(cursorX, cfg.Y, cfg.Width, cfg.Height),
		cfg:  cfg,
	}
}

// Update centers the paddle on cursorX.
func (p *Paddle) Update(cursorX float64) {
	p.Rect.X = cursorX - p.cfg.Width/2
}

// Intersects bounces a descending ball off the paddle. The new horizontal
// velocity is proportional to the hit offset from the paddle center times the
// deflection gain; the result is rescaled to the ball's base speed.
// Returns whether the ball was deflected.
func (p *Paddle) Intersects(ball *Ball) bool {
	if ball.Velocity.Y <= 0 || !p.Rect.IntersectsCircle(ball.Shape) {
		return false
	}

	// The gain is not clamped: edge hits can go almost horizontal.
	offset := ball.Shape.Center.X - p.Rect.Center().X
	ball.Velocity = core.Vec2{
		X: offset * p.cfg.DeflectionGain,
		Y: -ball.Velocity.Y,
	}.SetLength(ball.BaseSpeed())
	return true
}

// Draw renders the paddle as a rounded rectangle.
func (p *Paddle) Draw(c core.Canvas) {
	c.FillRoundedRect(p.Rect, p.cfg.CornerRadius, core.ColorWhite)
}
