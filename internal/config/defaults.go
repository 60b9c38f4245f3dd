package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	cfg := BreakoutConfig{
		Scene: SceneConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			X:              400,
			Y:              400,
			Radius:         8,
			Speed:          400,
			InitialSpeed:   400,
			SpeedIncrement: 10, // per second
			MaxSpeed:       600,
		},
		Bricks: BricksConfig{
			Columns:       20,
			Rows:          5,
			Width:         40,
			Height:        20,
			Top:           60,
			Inset:         1,
			RemovalOffset: -600,
			HueOffset:     40,
		},
		Paddle: PaddleConfig{
			Width:          60,
			Height:         10,
			Y:              500,
			CornerRadius:   3,
			DeflectionGain: 10,
		},
		Gameplay: GameplayConfig{
			RampUp:   true,
			GameOver: true,
		},
	}
	cfg.Normalize()
	return cfg
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
