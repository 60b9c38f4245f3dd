package breakout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestNewPaddle(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig().Paddle, 400)
	assert.Equal(t, core.NewRect(370, 495, 60, 10), p.Rect)
}

func TestPaddleTracksCursor(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig().Paddle, 400)

	p.Update(100)
	assert.Equal(t, 70.0, p.Rect.X)
	assert.Equal(t, 495.0, p.Rect.Y, "vertical position is fixed")

	p.Update(-20)
	assert.Equal(t, -50.0, p.Rect.X, "the paddle is not clamped to the screen")
}

func TestPaddleCenterHit(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig().Paddle, 400)
	ball := ballAt(400, 490, 0, 300)

	require.True(t, p.Intersects(&ball))
	assert.InDelta(t, 0, ball.Velocity.X, 1e-9)
	assert.Less(t, ball.Velocity.Y, 0.0)
	assert.InDelta(t, ball.BaseSpeed(), ball.Speed(), 1e-9)
	assert.InDelta(t, 400, ball.Speed(), 1e-9)
}

func TestPaddleOffCenterHit(t *testing.T) {
	tests := []struct {
		name   string
		ballX  float64
		wantVX float64
	}{
		// offset * gain 10 against vy -300, rescaled to 400
		{"right of center", 420, 200 / math.Hypot(200, 300) * 400},
		{"left of center", 380, -200 / math.Hypot(200, 300) * 400},
		{"right edge", 430, 300 / math.Hypot(300, 300) * 400},
		{"beyond the edge", 436, 360 / math.Hypot(360, 300) * 400},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(config.DefaultBreakoutConfig().Paddle, 400)
			ball := ballAt(tc.ballX, 490, 0, 300)

			require.True(t, p.Intersects(&ball))
			assert.InDelta(t, tc.wantVX, ball.Velocity.X, 1e-9)
			assert.Less(t, ball.Velocity.Y, 0.0)
			assert.InDelta(t, 400, ball.Speed(), 1e-9)
		})
	}
}

func TestPaddleIgnoresRisingBall(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig().Paddle, 400)
	ball := ballAt(400, 490, 50, -300)

	assert.False(t, p.Intersects(&ball))
	assert.Equal(t, core.Vec2{X: 50, Y: -300}, ball.Velocity)
}

func TestPaddleMiss(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig().Paddle, 100)
	ball := ballAt(400, 490, 0, 300)

	assert.False(t, p.Intersects(&ball))
	assert.Equal(t, core.Vec2{X: 0, Y: 300}, ball.Velocity)
}

func TestPaddleFixedProfileBaseSpeed(t *testing.T) {
	cfg := fixedConfig()
	cfg.Ball.Speed = 350
	p := NewPaddle(cfg.Paddle, 400)
	ball := NewBall(cfg.Ball)
	ball.Shape = core.NewCircle(400, 490, 8)
	ball.Velocity = core.Vec2{Y: 500}

	require.True(t, p.Intersects(&ball))
	assert.InDelta(t, 350, ball.Speed(), 1e-9)
}

func TestPaddleDraw(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig().Paddle, 400)
	before := p

	var c recordingCanvas
	p.Draw(&c)
	p.Draw(&c)

	assert.Equal(t, before, p)
	require.Equal(t, 2, c.count("rounded"))
	assert.Equal(t, p.Rect, c.calls[0].rect)
}
