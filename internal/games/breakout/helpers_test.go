package breakout

import (
	"image/color"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// drawCall records one canvas call.
type drawCall struct {
	kind  string
	rect  core.Rect
	shape core.Circle
	text  string
	color color.Color
}

// recordingCanvas is a core.Canvas that records every call.
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) Size() (w, h float64) { return 800, 600 }

func (c *recordingCanvas) FillRect(r core.Rect, col color.Color) {
	c.calls = append(c.calls, drawCall{kind: "rect", rect: r, color: col})
}

func (c *recordingCanvas) FillRoundedRect(r core.Rect, _ float64, col color.Color) {
	c.calls = append(c.calls, drawCall{kind: "rounded", rect: r, color: col})
}

func (c *recordingCanvas) FillCircle(s core.Circle, col color.Color) {
	c.calls = append(c.calls, drawCall{kind: "circle", shape: s, color: col})
}

func (c *recordingCanvas) DrawTextCentered(text string, _ core.Vec2, col color.Color) {
	c.calls = append(c.calls, drawCall{kind: "text", text: text, color: col})
}

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, call := range c.calls {
		if call.kind == kind {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) texts() []string {
	var out []string
	for _, call := range c.calls {
		if call.kind == "text" {
			out = append(out, call.text)
		}
	}
	return out
}

// frame builds a core.Frame for tests.
func frame(dt, cursorX float64, restart bool) core.Frame {
	return core.StaticFrame{Delta: dt, Cursor: cursorX, Restart: restart}
}

// fixedConfig returns the defaults with the fixed-speed switches.
func fixedConfig() config.BreakoutConfig {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay = config.GameplayConfig{RampUp: false, GameOver: false}
	cfg.Normalize()
	return cfg
}
