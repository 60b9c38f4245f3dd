package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var configCmd = &cobra.Command{
	Use:   "config [profile]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config file,
the difficulty preset and the profile switches are applied.

The output is valid YAML and can be saved as a starting point:
  breakout config > ~/.arcade/configs/breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	profile, err := resolveProfile(args)
	if err != nil {
		fail("%v", err)
	}

	p, ok := breakout.ProfileByID(profile)
	if !ok {
		fail("profile %q has no breakout configuration", profile)
	}

	cfg, source, err := breakout.LoadConfig(p)
	if err != nil {
		fail("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("# profile: %s\n# source: %s\n", profile, source)
	fmt.Print(string(data))
}
