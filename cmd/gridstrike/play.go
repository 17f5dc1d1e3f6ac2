package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridstrike/internal/core"
	"github.com/vovakirdan/gridstrike/internal/platform/tui"
	"github.com/vovakirdan/gridstrike/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play GridStrike",
	Long: `Start a game. Without a variant, the config's attack_rule picks one:
"single" plays gridstrike, "same_color" plays gridstrike_flood.

Controls:
  Arrows/WASD/hjkl  - Move one cell
  Space/Enter       - Attack the tile under you
  P                 - Pause
  R                 - New board
  ?                 - More help
  Q/Ctrl+C          - Quit

Examples:
  gridstrike play
  gridstrike play gridstrike_flood
  gridstrike play --seed 42 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// variantForRule returns the variant that plays with the given attack rule.
func variantForRule(rule string) string {
	if rule == "same_color" {
		return "gridstrike_flood"
	}
	return "gridstrike"
}

func runPlay(_ *cobra.Command, args []string) error {
	// The terminal belongs to the game; logs go to the configured file only.
	cfg, logger, closeLog, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	variant := variantForRule(cfg.Gameplay.AttackRule)
	if len(args) == 1 {
		variant = args[0]
	}

	game, err := registry.Create(variant)
	if err != nil {
		return fmt.Errorf("%w (run 'gridstrike list' to see variants)", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	logger.Info("starting game", "variant", variant, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
