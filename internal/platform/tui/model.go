package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// maxFrameDelta caps the delta of a single tick so a stalled terminal does
// not tunnel the ball through the paddle.
const maxFrameDelta = 0.25

// cursorStep is how far one arrow press moves the cursor, as a fraction of
// the world width.
const cursorStep = 0.025

// Model is the Bubble Tea model for running the game in a terminal.
// The paddle follows the mouse; the last row shows key help.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	raster   *Raster
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	cursorX    float64
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a model for a game that has already been Reset.
// A nil lg uses the local terminal renderer; a nil logger discards logs.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger, lg *lipgloss.Renderer) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	worldW, worldH := game.Bounds()
	cols, rows := cfg.ScreenW, playRows(cfg.ScreenH)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cols, rows),
		raster:     NewRaster(worldW, worldH, cols, rows),
		renderer:   NewRenderer(lg),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		cursorX:    worldW / 2,
	}
}

// playRows is the number of rows left for the playfield after the help line.
func playRows(height int) int {
	return max(height-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.cursorX = m.raster.WorldX(msg.X)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	worldW, _ := m.game.Bounds()

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session stopped", "game", m.game.ID())
		return m, tea.Quit
	case core.ActionLeft:
		m.cursorX = core.ClampF(m.cursorX-worldW*cursorStep, 0, worldW)
	case core.ActionRight:
		m.cursorX = core.ClampF(m.cursorX+worldW*cursorStep, 0, worldW)
	case core.ActionRestart:
		m.inputFrame.Set(core.ActionRestart)
	}
	return m, nil
}

// handleResize processes window resize events. The world size is fixed,
// so only the raster scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	rows := playRows(msg.Height)
	m.screen.Resize(msg.Width, rows)
	m.raster.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame with the time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxFrameDelta)
	}
	m.lastTick = now

	result := m.game.Advance(core.StaticFrame{
		Delta:   dt,
		Cursor:  m.cursorX,
		Restart: m.inputFrame.Has(core.ActionRestart),
	})
	m.gameState = result.State

	switch {
	case result.Lost:
		m.logger.Info("game over",
			"game", m.game.ID(),
			"bricks_left", result.State.BricksLeft,
			"elapsed", result.State.ElapsedSeconds,
		)
	case result.Restarted:
		m.logger.Info("restarted", "game", m.game.ID())
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.raster.Clear()
	m.game.Draw(m.raster)
	m.raster.Compose(m.screen)

	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// CursorX returns the cursor position in world units.
func (m Model) CursorX() float64 {
	return m.cursorX
}

// Run resets the game and runs it in the local terminal until the player
// quits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if err := game.Reset(); err != nil {
		return err
	}
	logger.Info("session started", "game", game.ID())

	model := NewModel(game, cfg, logger, nil)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
