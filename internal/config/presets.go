package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.RampUp = true
		cfg.Ball.Speed = 300
		cfg.Ball.InitialSpeed = 300
		cfg.Ball.SpeedIncrement = 5
		cfg.Ball.MaxSpeed = 450
		cfg.Paddle.Width = 90
	case DifficultyNormal:
		cfg.Gameplay.RampUp = true
	case DifficultyHard:
		cfg.Gameplay.RampUp = true
		cfg.Ball.Speed = 500
		cfg.Ball.InitialSpeed = 500
		cfg.Ball.SpeedIncrement = 20
		cfg.Ball.MaxSpeed = 800
		cfg.Paddle.Width = 45
	case DifficultyFixed:
		cfg.Gameplay.RampUp = false
	}
	cfg.Normalize()
}
