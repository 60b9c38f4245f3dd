// Package breakout implements the brick breaker: ball, brick field, paddle,
// walls and the session that advances them frame by frame.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Profile is a registered variant of the game.
type Profile struct {
	ID    string
	Title string
	// Gameplay, when set, replaces the loaded gameplay switches.
	Gameplay *config.GameplayConfig
}

// Registered profiles.
var (
	ProfileClassic = Profile{
		ID:    "breakout",
		Title: "Breakout",
	}
	ProfileFixed = Profile{
		ID:       "breakout_fixed",
		Title:    "Breakout (Fixed Speed)",
		Gameplay: &config.GameplayConfig{RampUp: false, GameOver: false},
	}
)

// Profiles returns every registered profile.
func Profiles() []Profile {
	return []Profile{ProfileClassic, ProfileFixed}
}

// ProfileByID looks up a profile by its registry ID.
func ProfileByID(id string) (Profile, bool) {
	for _, p := range Profiles() {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts a Session to the registry.
type Game struct {
	profile Profile
	session *Session
	source  string // Where the configuration was loaded from
}

// New creates a game for the given profile. Reset must be called before the
// first frame.
func New(p Profile) *Game {
	return &Game{profile: p}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.profile.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.profile.Title
}

// LoadConfig resolves the effective configuration for a profile: file or
// embedded defaults, then the difficulty preset, then the profile switches.
func LoadConfig(p Profile) (config.BreakoutConfig, string, error) {
	cfg, source, err := config.LoadBreakout(configPath)
	if err != nil {
		return config.BreakoutConfig{}, "", err
	}

	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	if p.Gameplay != nil {
		cfg.Gameplay = *p.Gameplay
	}
	cfg.Normalize()
	return cfg, source, nil
}

// Reset loads configuration and builds a new session.
func (g *Game) Reset() error {
	cfg, source, err := LoadConfig(g.profile)
	if err != nil {
		return err
	}
	session, err := NewSession(cfg)
	if err != nil {
		return err
	}
	g.session = session
	g.source = source
	return nil
}

// Advance runs one frame.
func (g *Game) Advance(f core.Frame) core.StepResult {
	return g.session.Advance(f)
}

// Draw renders the session.
func (g *Game) Draw(c core.Canvas) {
	g.session.Draw(c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.GameState()
}

// Bounds returns the scene size.
func (g *Game) Bounds() (w, h float64) {
	cfg := g.session.Config()
	return cfg.Scene.Width, cfg.Scene.Height
}

// ConfigSource reports where the configuration was loaded from.
func (g *Game) ConfigSource() string {
	return g.source
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Register the profiles with the registry
func init() {
	for _, p := range Profiles() {
		registry.Register(p.ID, func() registry.Game {
			return New(p)
		})
	}
}
