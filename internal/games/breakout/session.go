package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// State is the session state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Overlay text shown while the session is over.
const (
	GameOverLabel = "GameOver"
	RestartHint   = "Press R to restart"
)

// Session owns the ball, bricks, paddle and walls and advances them one
// frame at a time.
type Session struct {
	cfg config.BreakoutConfig

	ball   Ball
	bricks *BrickField
	paddle Paddle
	wall   Wall

	state   State
	tick    uint64
	cursorX float64 // Last cursor position seen, used when rebuilding the paddle
}

// NewSession validates cfg and builds a fresh session in the playing state.
// The paddle starts centered on the scene until the first frame moves it.
func NewSession(cfg config.BreakoutConfig) (*Session, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	s := &Session{
		cfg:     cfg,
		wall:    Wall{Width: cfg.Scene.Width},
		cursorX: cfg.Scene.Width / 2,
	}
	s.Reset()
	return s, nil
}

// Reset rebuilds the ball, bricks and paddle exactly as constructed and
// returns to the playing state. The paddle is centered on the last cursor X.
func (s *Session) Reset() {
	s.ball = NewBall(s.cfg.Ball)
	s.bricks = layoutBricks(s.cfg.Bricks, s.cfg.Scene.Height)
	s.paddle = NewPaddle(s.cfg.Paddle, s.cursorX)
	s.state = StatePlaying
	s.tick = 0
}

// Advance runs one frame. While playing the order is fixed: paddle, ball,
// bricks, walls, paddle collision, then the lose check. While over, only a
// restart press is handled. A negative delta is treated as zero.
func (s *Session) Advance(f core.Frame) core.StepResult {
	s.cursorX = f.CursorX()

	var res core.StepResult
	if s.state == StateGameOver {
		if f.RestartPressed() {
			s.Reset()
			res.Restarted = true
		}
		res.State = s.GameState()
		return res
	}

	s.tick++
	s.paddle.Update(s.cursorX)
	s.ball.Update(math.Max(0, f.DeltaTime()))

	res.BrickHit = s.bricks.Intersects(&s.ball)
	s.wall.Intersects(&s.ball)
	s.paddle.Intersects(&s.ball)

	if s.cfg.Gameplay.GameOver && s.ball.Shape.Center.Y > s.cfg.Scene.Height {
		s.state = StateGameOver
		res.Lost = true
	}

	res.State = s.GameState()
	return res
}

// Draw renders bricks, ball and paddle, plus the game over overlay.
// It does not change the session.
func (s *Session) Draw(c core.Canvas) {
	s.bricks.Draw(c)
	s.ball.Draw(c)
	s.paddle.Draw(c)

	if s.state == StateGameOver {
		center := core.Vec2{X: s.cfg.Scene.Width / 2, Y: s.cfg.Scene.Height / 2}
		c.DrawTextCentered(GameOverLabel, center, core.ColorWhite)
		c.DrawTextCentered(RestartHint, center.Add(core.Vec2{Y: 40}), core.ColorGray)
	}
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// GameState summarizes the session for the platform.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		GameOver:       s.state == StateGameOver,
		BricksLeft:     s.bricks.Remaining(),
		BallSpeed:      s.ball.Speed(),
		ElapsedSeconds: s.ball.ElapsedTime,
	}
}

// Ball returns the ball for inspection.
func (s *Session) Ball() *Ball {
	return &s.ball
}

// Bricks returns the brick field for inspection.
func (s *Session) Bricks() *BrickField {
	return s.bricks
}

// Paddle returns the paddle for inspection.
func (s *Session) Paddle() *Paddle {
	return &s.paddle
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.BreakoutConfig {
	return s.cfg
}
