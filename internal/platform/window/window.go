// Package window runs the game in a desktop window with Ebiten.
package window

import (
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Debug font cell size used by ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

// canvas implements core.Canvas on an Ebiten image. The logical screen is
// the world size, so world coordinates are pixels.
type canvas struct {
	dst    *ebiten.Image
	w, h   float64
	labels map[string]*ebiten.Image // Pre-rendered white text
}

func (c *canvas) Size() (w, h float64) {
	return c.w, c.h
}

func (c *canvas) FillRect(r core.Rect, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, true)
}

// FillRoundedRect draws a cross of two rectangles and a circle in each corner.
func (c *canvas) FillRoundedRect(r core.Rect, radius float64, col color.Color) {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 {
		c.FillRect(r, col)
		return
	}

	c.FillRect(core.NewRect(r.X+radius, r.Y, r.W-2*radius, r.H), col)
	c.FillRect(core.NewRect(r.X, r.Y+radius, r.W, r.H-2*radius), col)
	for _, p := range []core.Vec2{
		{X: r.X + radius, Y: r.Y + radius},
		{X: r.Right() - radius, Y: r.Y + radius},
		{X: r.X + radius, Y: r.Bottom() - radius},
		{X: r.Right() - radius, Y: r.Bottom() - radius},
	} {
		vector.DrawFilledCircle(c.dst, float32(p.X), float32(p.Y), float32(radius), col, true)
	}
}

func (c *canvas) FillCircle(s core.Circle, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(s.Center.X), float32(s.Center.Y), float32(s.R), col, true)
}

// DrawTextCentered prints with the debug font, tinted to col.
func (c *canvas) DrawTextCentered(text string, at core.Vec2, col color.Color) {
	img, ok := c.labels[text]
	if !ok {
		img = ebiten.NewImage(max(len(text)*glyphW, 1), glyphH)
		ebitenutil.DebugPrint(img, text)
		c.labels[text] = img
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(at.X-float64(img.Bounds().Dx())/2, at.Y-glyphH/2)
	opts.ColorScale.ScaleWithColor(col)
	c.dst.DrawImage(img, opts)
}

// Host adapts a registry.Game to ebiten.Game.
type Host struct {
	game   registry.Game
	canvas *canvas
	logger *log.Logger
}

// NewHost wraps a game that has already been Reset.
// A nil logger discards logs.
func NewHost(game registry.Game, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := game.Bounds()
	return &Host{
		game:   game,
		canvas: &canvas{w: w, h: h, labels: make(map[string]*ebiten.Image)},
		logger: logger,
	}
}

// Update runs one frame at the fixed tick rate.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.logger.Info("session stopped", "game", h.game.ID())
		return ebiten.Termination
	}

	x, _ := ebiten.CursorPosition()
	result := h.game.Advance(core.StaticFrame{
		Delta:   1 / float64(ebiten.TPS()),
		Cursor:  float64(x),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
	})

	switch {
	case result.Lost:
		h.logger.Info("game over",
			"game", h.game.ID(),
			"bricks_left", result.State.BricksLeft,
			"elapsed", result.State.ElapsedSeconds,
		)
	case result.Restarted:
		h.logger.Info("restarted", "game", h.game.ID())
	}
	return nil
}

// Draw renders the game.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(core.ColorBlack)
	h.canvas.dst = screen
	h.game.Draw(h.canvas)
}

// Layout fixes the logical screen to the world size.
func (h *Host) Layout(_, _ int) (int, int) {
	return int(h.canvas.w), int(h.canvas.h)
}

// Run resets the game and opens a window until the player quits.
func Run(game registry.Game, tickRate int, logger *log.Logger) error {
	if err := game.Reset(); err != nil {
		return err
	}
	logger.Info("session started", "game", game.ID(), "host", "window")

	host := NewHost(game, logger)
	w, h := host.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if tickRate > 0 {
		ebiten.SetTPS(tickRate)
	}

	return ebiten.RunGame(host)
}
