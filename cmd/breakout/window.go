package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/window"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [profile]",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with the mouse.

Controls:
  Mouse    - Move the paddle
  R        - Restart (after game over)
  Q/Esc    - Quit

Examples:
  breakout window
  breakout window breakout_fixed --fps 120`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	profile, err := resolveProfile(args)
	if err != nil {
		fail("%v", err)
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(profile)
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := window.Run(game, flagFPS, logger); err != nil {
		fail("running game: %v", err)
	}
}
