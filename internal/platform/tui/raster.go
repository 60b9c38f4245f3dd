package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Half-block glyphs: the foreground paints one half of the cell, the
// background the other.
const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// label is text queued for the cell layer.
type label struct {
	text string
	col  int
	row  int
	fg   color.NRGBA
}

// Raster is a core.Canvas that scales world coordinates onto terminal
// cells. Every cell holds two square-ish pixels stacked vertically.
// Shapes too small to cover any pixel center still paint the pixel that
// contains their center, so the ball never disappears at low resolution.
type Raster struct {
	worldW, worldH float64
	cols, rows     int
	pixels         []color.NRGBA // cols x rows*2, row-major
	labels         []label
}

// NewRaster creates a raster mapping a worldW x worldH scene onto
// cols x rows terminal cells.
func NewRaster(worldW, worldH float64, cols, rows int) *Raster {
	r := &Raster{worldW: worldW, worldH: worldH}
	r.Resize(cols, rows)
	return r
}

// Resize changes the cell grid. Content is discarded.
func (r *Raster) Resize(cols, rows int) {
	r.cols = max(cols, 0)
	r.rows = max(rows, 0)
	r.pixels = make([]color.NRGBA, r.cols*r.rows*2)
	r.labels = r.labels[:0]
}

// Clear erases all pixels and labels.
func (r *Raster) Clear() {
	clear(r.pixels)
	r.labels = r.labels[:0]
}

// Size returns the world size.
func (r *Raster) Size() (w, h float64) {
	return r.worldW, r.worldH
}

// Cols returns the grid width in cells.
func (r *Raster) Cols() int { return r.cols }

// Rows returns the grid height in cells.
func (r *Raster) Rows() int { return r.rows }

// scale returns pixels per world unit on each axis.
func (r *Raster) scale() (sx, sy float64) {
	return float64(r.cols) / r.worldW, float64(r.rows*2) / r.worldH
}

// WorldX maps a cell column to the world X of its center.
func (r *Raster) WorldX(col int) float64 {
	if r.cols == 0 {
		return 0
	}
	return (float64(col) + 0.5) * r.worldW / float64(r.cols)
}

// Pixel returns the pixel color at px, py. Out of range pixels are ColorNone.
func (r *Raster) Pixel(px, py int) color.NRGBA {
	if px < 0 || px >= r.cols || py < 0 || py >= r.rows*2 {
		return core.ColorNone
	}
	return r.pixels[py*r.cols+px]
}

func (r *Raster) set(px, py int, c color.NRGBA) {
	if px < 0 || px >= r.cols || py < 0 || py >= r.rows*2 {
		return
	}
	r.pixels[py*r.cols+px] = c
}

// FillRect paints every pixel whose center lies inside rect.
func (r *Raster) FillRect(rect core.Rect, c color.Color) {
	r.fill(rect, c, func(core.Vec2) bool { return true })
}

// FillRoundedRect paints rect with corners of the given radius cut away.
func (r *Raster) FillRoundedRect(rect core.Rect, radius float64, c color.Color) {
	radius = math.Min(radius, math.Min(rect.W, rect.H)/2)
	inner := rect.Stretched(-radius)
	r.fill(rect, c, func(p core.Vec2) bool {
		dx := p.X - core.ClampF(p.X, inner.X, inner.Right())
		dy := p.Y - core.ClampF(p.Y, inner.Y, inner.Bottom())
		return dx*dx+dy*dy <= radius*radius
	})
}

// FillCircle paints every pixel whose center lies inside the circle.
func (r *Raster) FillCircle(circle core.Circle, c color.Color) {
	bounds := core.RectAtCenter(circle.Center.X, circle.Center.Y, circle.R*2, circle.R*2)
	r.fill(bounds, c, func(p core.Vec2) bool {
		dx, dy := p.X-circle.Center.X, p.Y-circle.Center.Y
		return dx*dx+dy*dy <= circle.R*circle.R
	})
}

// DrawTextCentered queues text centered on the cell containing at.
// Labels are written on top of the pixels by Compose.
func (r *Raster) DrawTextCentered(text string, at core.Vec2, c color.Color) {
	if r.cols == 0 || r.rows == 0 {
		return
	}
	r.labels = append(r.labels, label{
		text: text,
		col:  int(math.Floor(at.X * float64(r.cols) / r.worldW)),
		row:  int(math.Floor(at.Y * float64(r.rows) / r.worldH)),
		fg:   core.ToNRGBA(c),
	})
}

// fill paints the pixels of bounds whose centers satisfy inside. When no
// pixel qualifies, the pixel under the center of bounds is painted.
func (r *Raster) fill(bounds core.Rect, c color.Color, inside func(core.Vec2) bool) {
	col := core.ToNRGBA(c)
	if col.A == 0 || r.cols == 0 || r.rows == 0 {
		return
	}

	sx, sy := r.scale()
	x0 := max(int(math.Ceil(bounds.X*sx-0.5)), 0)
	x1 := min(int(math.Floor(bounds.Right()*sx-0.5)), r.cols-1)
	y0 := max(int(math.Ceil(bounds.Y*sy-0.5)), 0)
	y1 := min(int(math.Floor(bounds.Bottom()*sy-0.5)), r.rows*2-1)

	painted := false
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			p := core.Vec2{X: (float64(px) + 0.5) / sx, Y: (float64(py) + 0.5) / sy}
			if inside(p) {
				r.pixels[py*r.cols+px] = col
				painted = true
			}
		}
	}

	if !painted {
		center := bounds.Center()
		r.set(int(math.Floor(center.X*sx)), int(math.Floor(center.Y*sy)), col)
	}
}

// Compose writes the raster into screen, which should be cols x rows.
// Each cell pairs an upper and a lower pixel; labels are drawn last.
func (r *Raster) Compose(screen *core.Screen) {
	screen.Clear()
	for row := range r.rows {
		for col := range r.cols {
			top := r.pixels[(row*2)*r.cols+col]
			bottom := r.pixels[(row*2+1)*r.cols+col]

			switch {
			case top.A == 0 && bottom.A == 0:
				continue
			case top.A == 0:
				screen.SetCell(col, row, core.Cell{Rune: lowerHalf, Fg: bottom})
			default:
				screen.SetCell(col, row, core.Cell{Rune: upperHalf, Fg: top, Bg: bottom})
			}
		}
	}

	for _, l := range r.labels {
		screen.DrawTextCentered(l.col, l.row, l.text, l.fg)
	}
}
