package breakout

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestField(t *testing.T) *BrickField {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	f, err := NewBrickField(cfg.Bricks, cfg.Scene.Height)
	require.NoError(t, err)
	return f
}

func ballAt(x, y, vx, vy float64) Ball {
	b := NewBall(config.DefaultBreakoutConfig().Ball)
	b.Shape = core.NewCircle(x, y, 8)
	b.Velocity = core.Vec2{X: vx, Y: vy}
	return b
}

func TestBrickFieldLayout(t *testing.T) {
	f := newTestField(t)

	require.Equal(t, 100, f.Len())
	assert.Equal(t, 100, f.Remaining())
	assert.Equal(t, core.NewRect(0, 60, 40, 20), f.Brick(0))
	assert.Equal(t, core.NewRect(760, 60, 40, 20), f.Brick(19))
	assert.Equal(t, core.NewRect(40, 80, 40, 20), f.Brick(21))
	assert.Equal(t, core.NewRect(760, 140, 40, 20), f.Brick(99))
}

func TestBrickFieldRejectsEmptyGrid(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bricks
	cfg.Columns = 0

	_, err := NewBrickField(cfg, 600)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg = config.DefaultBreakoutConfig().Bricks
	cfg.Height = -1
	_, err = NewBrickField(cfg, 600)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestBrickHitFromAbove(t *testing.T) {
	f := newTestField(t)
	ball := ballAt(20, 55, 30, 300)

	hit := f.Intersects(&ball)

	require.True(t, hit)
	assert.Equal(t, -300.0, ball.Velocity.Y, "vertical velocity flips")
	assert.Equal(t, 30.0, ball.Velocity.X, "horizontal velocity unchanged")

	removed := f.Brick(0)
	assert.True(t, removed.Bottom() < 0 || removed.Y > 600, "removed brick must leave [0, 600], got %v", removed)
	assert.Equal(t, -540.0, removed.Y)
	assert.False(t, f.Alive(0))
	assert.Equal(t, 99, f.Remaining())
	assert.Equal(t, 100, f.Len(), "bricks are never deleted")
}

func TestBrickHitFromSide(t *testing.T) {
	f := newTestField(t)
	ball := ballAt(-5, 70, 300, 10)

	require.True(t, f.Intersects(&ball))
	assert.Equal(t, -300.0, ball.Velocity.X)
	assert.Equal(t, 10.0, ball.Velocity.Y)
	assert.False(t, f.Alive(0))
}

func TestBrickCornerHitBouncesVertically(t *testing.T) {
	f := newTestField(t)
	ball := ballAt(-4, 56, 200, 200)

	require.True(t, f.Intersects(&ball))
	assert.Equal(t, -200.0, ball.Velocity.Y)
	assert.Equal(t, 200.0, ball.Velocity.X)
}

func TestBrickAtMostOneHitPerCall(t *testing.T) {
	f := newTestField(t)
	// Straddles bricks 0 and 1 from above
	ball := ballAt(40, 55, 0, 300)

	require.True(t, f.Intersects(&ball))
	assert.Equal(t, 99, f.Remaining(), "exactly one brick is removed")
	assert.False(t, f.Alive(0), "the first brick in scan order wins")
	assert.True(t, f.Alive(1))
	assert.Equal(t, -300.0, ball.Velocity.Y, "single bounce")

	// The next call resolves the other overlap
	require.True(t, f.Intersects(&ball))
	assert.False(t, f.Alive(1))
	assert.Equal(t, 98, f.Remaining())
}

func TestBrickMiss(t *testing.T) {
	f := newTestField(t)
	ball := ballAt(400, 400, 10, -400)

	assert.False(t, f.Intersects(&ball))
	assert.Equal(t, core.Vec2{X: 10, Y: -400}, ball.Velocity)
	assert.Equal(t, 100, f.Remaining())
}

func TestBrickFieldDraw(t *testing.T) {
	f := newTestField(t)
	ball := ballAt(20, 55, 0, 300)
	f.Intersects(&ball)

	var c recordingCanvas
	f.Draw(&c)
	first := append([]drawCall(nil), c.calls...)
	f.Draw(&c)

	require.Equal(t, 200, c.count("rect"), "every brick is drawn on each call")
	assert.Equal(t, first, c.calls[100:], "drawing twice gives the same output")
	assert.Equal(t, 99, f.Remaining(), "drawing does not change the field")

	// Brick 1 sits at y=60: inset by 1 and hue 20
	assert.Equal(t, core.NewRect(41, 61, 38, 18), c.calls[1].rect)
	assert.Equal(t, colorful.Hsv(20, 1, 1), c.calls[1].color)

	// Brick 20 sits at y=80: hue 40
	assert.Equal(t, colorful.Hsv(40, 1, 1), c.calls[20].color)

	// Removed brick 0 is drawn off-canvas with a wrapped hue
	assert.Less(t, c.calls[0].rect.Bottom(), 0.0)
	assert.Equal(t, colorful.Hsv(140, 1, 1), c.calls[0].color)
}
