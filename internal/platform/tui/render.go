package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// cellStyle is the color pair a run of cells shares.
type cellStyle struct {
	fg, bg color.NRGBA
}

// Renderer converts Screen buffers to styled strings. Styles are cached per
// color pair since bricks repeat the same few hues across a frame.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[cellStyle]lipgloss.Style
}

// NewRenderer creates a renderer bound to lg. A nil lg uses the default
// lipgloss renderer for the local terminal.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[cellStyle]lipgloss.Style),
	}
}

// hexColor formats c as #rrggbb.
func hexColor(c color.NRGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func (r *Renderer) style(key cellStyle) lipgloss.Style {
	if st, ok := r.styles[key]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if key.fg.A != 0 {
		st = st.Foreground(lipgloss.Color(hexColor(key.fg)))
	}
	if key.bg.A != 0 {
		st = st.Background(lipgloss.Color(hexColor(key.bg)))
	}
	r.styles[key] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default lipgloss renderer.
func RenderScreen(s *core.Screen) string {
	return NewRenderer(nil).Render(s)
}
