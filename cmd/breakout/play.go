package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [profile]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The paddle follows the mouse.

Controls:
  Mouse      - Move the paddle
  Left/Right - Nudge the paddle (terminals without mouse support)
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Profiles:
  breakout       - Ball speeds up over time, losing the ball ends the game
  breakout_fixed - Constant speed, the game never ends

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Default values
  hard   - Faster ball, narrower paddle
  fixed  - No speed ramp

Logs are written to --log-file so they do not corrupt the screen.

Examples:
  breakout play
  breakout play breakout_fixed
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", defaultLogPath(), "Log file path (empty disables logging)")
}

// defaultLogPath returns ~/.arcade/breakout.log, or empty if home is unavailable.
func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "breakout.log")
}

// openLogFile opens path for appending. An empty path discards logs.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func runPlay(_ *cobra.Command, args []string) {
	profile, err := resolveProfile(args)
	if err != nil {
		fail("%v", err)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fail("cannot open log file: %v", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size before the first resize message arrives
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(profile)
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game failed", "error", err)
		logFile.Close()
		fail("running game: %v", err)
	}
}
