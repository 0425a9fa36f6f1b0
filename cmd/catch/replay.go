package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var flagReplaySave bool

var replayCmd = &cobra.Command{
	Use:   "replay <mode>",
	Short: "Replay a map with autopilot and verify the digest",
	Long: `Regenerate the map for a seed, play it twice with the autopilot and
check that both runs judge every object identically.

Earlier recorded runs of the same map are compared against the digest.
With --save the verified run is stored.

Examples:
  catch replay catch --seed 42
  catch replay catch_rain --seed 7 --save
  catch replay catch --seed 42 --difficulty hard`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplaySave, "save", false, "Store the verified run")
}

func runReplay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q; run 'catch list' to see available modes", gameID)
	}
	mode := catch.Mode(gameID)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	game, err := catch.Verify(mode, seed, flagFPS)
	if err != nil {
		return err
	}
	summary := game.Summary()
	logger.Info("replay verified", "mode", gameID, "seed", seed, "elapsed", time.Since(start))

	fmt.Printf("Mode:      %s\n", gameID)
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Digest:    %s (deterministic)\n", summary.Digest)
	fmt.Printf("Score:     %d\n", summary.Score)
	fmt.Printf("Max combo: %dx\n", summary.MaxCombo)
	fmt.Printf("Accuracy:  %.2f%%\n", summary.Accuracy*100)
	fmt.Printf("Fruits:    %d caught, %d missed\n", summary.Fruits, summary.FruitMisses)
	fmt.Printf("Droplets:  %d caught, %d missed\n", summary.Droplets, summary.DropletMisses)
	fmt.Printf("Tiny:      %d caught, %d missed\n", summary.TinyDroplets, summary.TinyMisses)
	fmt.Printf("Bananas:   %d caught, %d missed\n", summary.Bananas, summary.BananasMissed)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	defer store.Close()

	earlier, err := store.PlaysBySeed(gameID, seed)
	if err != nil {
		return err
	}
	if len(earlier) > 0 {
		matching := 0
		for _, p := range earlier {
			if p.Digest == summary.Digest {
				matching++
			}
		}
		fmt.Printf("\n%d earlier run(s) of this map, %d with the same judgements.\n", len(earlier), matching)
	}

	if flagReplaySave {
		id, err := store.SavePlay(tui.NewPlay(game))
		if err != nil {
			return err
		}
		fmt.Printf("Saved run #%d.\n", id)
	}
	return nil
}
