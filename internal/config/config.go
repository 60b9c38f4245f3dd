// Package config provides YAML-based game configuration loading, difficulty
// presets and validation for the breakout game.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// BreakoutConfig contains all configuration for the breakout game.
type BreakoutConfig struct {
	Scene    SceneConfig    `yaml:"scene"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// SceneConfig defines the playfield size in world units.
type SceneConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball's starting state and speed curve.
type BallConfig struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`           // Fixed speed when ramp-up is off
	InitialSpeed   float64 `yaml:"initial_speed"`   // Speed at t=0 when ramp-up is on
	SpeedIncrement float64 `yaml:"speed_increment"` // Added per second of play
	MaxSpeed       float64 `yaml:"max_speed"`
	RampUp         bool    `yaml:"-"` // Copied from GameplayConfig.RampUp
}

// BaseSpeed is the speed a paddle bounce normalizes the ball to.
func (b BallConfig) BaseSpeed() float64 {
	if b.RampUp {
		return b.InitialSpeed
	}
	return b.Speed
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Columns       int     `yaml:"columns"`
	Rows          int     `yaml:"rows"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Top           float64 `yaml:"top"`            // Y of the first row
	Inset         float64 `yaml:"inset"`          // Drawing margin on each side
	RemovalOffset float64 `yaml:"removal_offset"` // Y translation applied to a hit brick
	HueOffset     float64 `yaml:"hue_offset"`     // Hue = brick.Y - HueOffset
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Y              float64 `yaml:"y"` // Vertical center
	CornerRadius   float64 `yaml:"corner_radius"`
	DeflectionGain float64 `yaml:"deflection_gain"`
}

// GameplayConfig holds the profile switches.
type GameplayConfig struct {
	RampUp   bool `yaml:"ramp_up"`   // Ball accelerates over time
	GameOver bool `yaml:"game_over"` // Losing the ball ends the session
}

// Normalize copies cross-section settings into the sections that use them.
func (c *BreakoutConfig) Normalize() {
	c.Ball.RampUp = c.Gameplay.RampUp
}

// Validate checks configuration preconditions. Violations are reported
// together, each wrapping ErrInvalid.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Scene.Width > 0, "scene.width must be positive, got %v", c.Scene.Width)
	check(c.Scene.Height > 0, "scene.height must be positive, got %v", c.Scene.Height)

	check(c.Ball.Radius > 0, "ball.radius must be positive, got %v", c.Ball.Radius)
	if c.Gameplay.RampUp {
		check(c.Ball.InitialSpeed > 0, "ball.initial_speed must be positive, got %v", c.Ball.InitialSpeed)
		check(c.Ball.SpeedIncrement >= 0, "ball.speed_increment must not be negative, got %v", c.Ball.SpeedIncrement)
		check(c.Ball.MaxSpeed >= c.Ball.InitialSpeed, "ball.max_speed (%v) must be at least ball.initial_speed (%v)",
			c.Ball.MaxSpeed, c.Ball.InitialSpeed)
	} else {
		check(c.Ball.Speed > 0, "ball.speed must be positive, got %v", c.Ball.Speed)
	}

	check(c.Bricks.Columns > 0, "bricks.columns must be positive, got %d", c.Bricks.Columns)
	check(c.Bricks.Rows > 0, "bricks.rows must be positive, got %d", c.Bricks.Rows)
	check(c.Bricks.Width > 0, "bricks.width must be positive, got %v", c.Bricks.Width)
	check(c.Bricks.Height > 0, "bricks.height must be positive, got %v", c.Bricks.Height)
	check(c.Bricks.Inset >= 0 && 2*c.Bricks.Inset < c.Bricks.Width && 2*c.Bricks.Inset < c.Bricks.Height,
		"bricks.inset must fit inside a brick, got %v", c.Bricks.Inset)
	// Every removed brick must end up entirely above or below the playfield.
	offset := c.Bricks.RemovalOffset
	fieldBottom := c.Bricks.Top + c.Bricks.Height*float64(c.Bricks.Rows)
	check(fieldBottom+offset <= 0 || c.Bricks.Top+offset >= c.Scene.Height,
		"bricks.removal_offset %v does not move bricks out of the playfield", offset)

	check(c.Paddle.Width > 0, "paddle.width must be positive, got %v", c.Paddle.Width)
	check(c.Paddle.Height > 0, "paddle.height must be positive, got %v", c.Paddle.Height)
	check(c.Paddle.CornerRadius >= 0, "paddle.corner_radius must not be negative, got %v", c.Paddle.CornerRadius)

	return errors.Join(errs...)
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
