// breakout is a single-screen brick breaker for the terminal, a desktop
// window or remote play over SSH.
//
// Usage:
//
//	breakout play [profile]   - Play in the terminal
//	breakout window [profile] - Play in a desktop window
//	breakout serve            - Start SSH server for remote play
//	breakout list             - List available profiles
//	breakout config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Load configuration from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--profile <id>        - breakout or breakout_fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagProfile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball into a wall of bricks",
	Long: `Breakout is a single-screen brick breaker. Move the paddle with the
mouse, keep the ball in play and clear the wall.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  list     - Show all available profiles
  config   - Print the effective configuration

Examples:
  breakout play
  breakout play breakout_fixed
  breakout window --difficulty hard
  breakout serve --ssh :2222
  breakout config --config ./my-breakout.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", breakout.ProfileClassic.ID, "Game profile to play")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the CLI logger writing to w at the --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	}), nil
}

// resolveProfile applies the load flags and returns the profile to play.
// A positional argument overrides --profile.
func resolveProfile(args []string) (string, error) {
	profile := flagProfile
	if len(args) > 0 {
		profile = args[0]
	}
	if !registry.Exists(profile) {
		return "", fmt.Errorf("unknown profile %q, run 'breakout list' to see available profiles", profile)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return "", err
	}
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(preset)
	return profile, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
