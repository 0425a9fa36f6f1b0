package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Left/Right, A/D  - Move the catcher
  Shift+Arrow      - Move at dash speed
  Z/X              - Dash
  Tab              - Toggle autopilot
  P/Esc            - Pause
  R                - Restart (after the map ends)
  B                - Leave (while paused or after the map ends)
  Ctrl+S           - Save a screenshot to ~/.catch/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Smaller fruits fall slower; start at lowest difficulty
  normal - Start at 30% difficulty, progresses to max
  hard   - Bigger, faster fruits; start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  catch play catch
  catch play catch --difficulty easy
  catch play catch_rain --seed 42
  catch play catch --config ./my-catch.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q; run 'catch list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
