package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestWallIntersects(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		v      core.Vec2
		expect core.Vec2
	}{
		{"left wall moving left", -1, 300, core.Vec2{X: -50, Y: 10}, core.Vec2{X: 50, Y: 10}},
		{"left wall moving right", -1, 300, core.Vec2{X: 50, Y: 10}, core.Vec2{X: 50, Y: 10}},
		{"right wall moving right", 801, 300, core.Vec2{X: 50, Y: 10}, core.Vec2{X: -50, Y: 10}},
		{"right wall moving left", 801, 300, core.Vec2{X: -50, Y: 10}, core.Vec2{X: -50, Y: 10}},
		{"ceiling moving up", 400, -1, core.Vec2{X: 5, Y: -50}, core.Vec2{X: 5, Y: 50}},
		{"ceiling moving down", 400, -1, core.Vec2{X: 5, Y: 50}, core.Vec2{X: 5, Y: 50}},
		{"corner", -1, -1, core.Vec2{X: -50, Y: -50}, core.Vec2{X: 50, Y: 50}},
		{"inside", 400, 300, core.Vec2{X: -50, Y: -50}, core.Vec2{X: -50, Y: -50}},
		{"below the floor", 400, 700, core.Vec2{X: 0, Y: 50}, core.Vec2{X: 0, Y: 50}},
	}

	w := Wall{Width: 800}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := ballAt(tc.x, tc.y, tc.v.X, tc.v.Y)
			w.Intersects(&ball)
			assert.Equal(t, tc.expect, ball.Velocity)
			assert.Equal(t, core.Vec2{X: tc.x, Y: tc.y}, ball.Shape.Center, "walls never move the ball")
		})
	}
}
