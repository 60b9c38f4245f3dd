package core

import "image/color"

// RuntimeConfig contains host parameters passed to the platform layer.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal hosts)
	ScreenH  int // Screen height in characters (terminal hosts)
	TickRate int // Frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Frame is the per-frame input a host hands to the game.
type Frame interface {
	// DeltaTime is the time since the previous frame in seconds, never negative.
	DeltaTime() float64
	// CursorX is the pointer's horizontal position in world units.
	CursorX() float64
	// RestartPressed reports whether restart was pressed this frame.
	RestartPressed() bool
}

// Canvas is the set of draw primitives a host provides. Coordinates are in
// world units; the host maps them to its own surface.
type Canvas interface {
	// Size returns the drawable world size.
	Size() (w, h float64)
	FillRect(r Rect, c color.Color)
	FillRoundedRect(r Rect, radius float64, c color.Color)
	FillCircle(c Circle, col color.Color)
	// DrawTextCentered draws text centered on at.
	DrawTextCentered(text string, at Vec2, c color.Color)
}

// StaticFrame is a Frame with fixed values. Hosts build one per tick.
type StaticFrame struct {
	Delta   float64
	Cursor  float64
	Restart bool
}

// DeltaTime implements Frame.
func (f StaticFrame) DeltaTime() float64 { return f.Delta }

// CursorX implements Frame.
func (f StaticFrame) CursorX() float64 { return f.Cursor }

// RestartPressed implements Frame.
func (f StaticFrame) RestartPressed() bool { return f.Restart }

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver       bool // Whether the ball has been lost
	BricksLeft     int  // Bricks still in play
	BallSpeed      float64
	ElapsedSeconds float64
}

// StepResult is returned by Game.Advance() after each frame.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State     GameState
	BrickHit  bool // A brick was removed this frame
	Lost      bool // The session moved to game over this frame
	Restarted bool // The session was reset this frame
}
