package breakout

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickField is the fixed grid of bricks. Bricks are stored row-major, row 0
// on top. A hit brick is moved out of the playfield rather than removed so
// indices and scan order never change.
type BrickField struct {
	bricks      []core.Rect
	cfg         config.BricksConfig
	sceneHeight float64
}

// NewBrickField lays out cfg.Columns x cfg.Rows bricks starting at cfg.Top.
func NewBrickField(cfg config.BricksConfig, sceneHeight float64) (*BrickField, error) {
	if cfg.Columns <= 0 || cfg.Rows <= 0 {
		return nil, fmt.Errorf("breakout: brick grid %dx%d: %w", cfg.Columns, cfg.Rows, config.ErrInvalid)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("breakout: brick size %vx%v: %w", cfg.Width, cfg.Height, config.ErrInvalid)
	}
	return layoutBricks(cfg, sceneHeight), nil
}

// layoutBricks builds the grid without checking cfg.
func layoutBricks(cfg config.BricksConfig, sceneHeight float64) *BrickField {
	f := &BrickField{
		bricks:      make([]core.Rect, cfg.Columns*cfg.Rows),
		cfg:         cfg,
		sceneHeight: sceneHeight,
	}
	for y := range cfg.Rows {
		for x := range cfg.Columns {
			f.bricks[y*cfg.Columns+x] = core.NewRect(
				float64(x)*cfg.Width,
				cfg.Top+float64(y)*cfg.Height,
				cfg.Width,
				cfg.Height,
			)
		}
	}
	return f
}

// Len returns the total number of bricks, alive or not.
func (f *BrickField) Len() int {
	return len(f.bricks)
}

// Brick returns the rectangle of brick i.
func (f *BrickField) Brick(i int) core.Rect {
	return f.bricks[i]
}

// Alive reports whether brick i is still inside the playfield.
func (f *BrickField) Alive(i int) bool {
	r := f.bricks[i]
	return r.Bottom() > 0 && r.Y < f.sceneHeight
}

// Remaining returns the number of bricks still in play.
func (f *BrickField) Remaining() int {
	n := 0
	for i := range f.bricks {
		if f.Alive(i) {
			n++
		}
	}
	return n
}

// Intersects resolves at most one brick collision per call: the first brick
// in row-major order that touches the ball. Touching a top or bottom edge
// flips the vertical velocity, otherwise the horizontal one. Returns whether
// a brick was hit.
func (f *BrickField) Intersects(ball *Ball) bool {
	for i := range f.bricks {
		brick := &f.bricks[i]
		if !brick.IntersectsCircle(ball.Shape) {
			continue
		}

		// Top/bottom first: a corner hit is a vertical bounce.
		if brick.BottomEdge().IntersectsCircle(ball.Shape) || brick.TopEdge().IntersectsCircle(ball.Shape) {
			ball.BounceY()
		} else {
			ball.BounceX()
		}

		*brick = brick.MovedBy(0, f.cfg.RemovalOffset)
		return true
	}
	return false
}

// Draw renders every brick inset by the configured margin, hued by its
// vertical position. Removed bricks land outside the canvas.
func (f *BrickField) Draw(c core.Canvas) {
	for _, brick := range f.bricks {
		c.FillRect(brick.Stretched(-f.cfg.Inset), f.hue(brick))
	}
}

// hue maps a brick's Y to a fully saturated color.
func (f *BrickField) hue(brick core.Rect) colorful.Color {
	h := math.Mod(brick.Y-f.cfg.HueOffset, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsv(h, 1, 1)
}
