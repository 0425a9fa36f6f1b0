package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the best runs of a mode",
	Long: `Display the top runs for the specified mode with combo, accuracy
and the seed needed to replay the map.

Examples:
  catch scores catch
  catch scores catch_rain --limit 20
  catch scores catch --recent
  catch scores catch --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q; run 'catch list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return nil
	}

	var plays []storage.Play
	if flagScoresRecent {
		plays, err = store.RecentPlays(gameID, flagScoresLimit)
	} else {
		plays, err = store.TopPlays(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Runs"
	}
	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(plays) == 0 {
		return printScoresOnly(store, gameID)
	}

	fmt.Printf("  %-4s  %-9s  %-6s  %-7s  %-20s  %-4s  %s\n", "Rank", "Score", "Combo", "Acc", "Seed", "Auto", "Date")
	fmt.Printf("  %-4s  %-9s  %-6s  %-7s  %-20s  %-4s  %s\n", "----", "-----", "-----", "---", "----", "----", "----")
	for i, p := range plays {
		auto := ""
		if p.Autopilot {
			auto = "yes"
		}
		fmt.Printf("  %-4d  %-9d  %-6s  %-7s  %-20d  %-4s  %s\n",
			i+1,
			p.Score,
			fmt.Sprintf("%dx", p.MaxCombo),
			fmt.Sprintf("%.2f%%", p.Accuracy*100),
			p.Seed,
			auto,
			p.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  Avg: %.0f  Games: %d  Best combo: %dx\n",
			stats.HighScore, stats.AvgScore, stats.GamesCount, stats.BestCombo)
	}
	return nil
}

// printScoresOnly lists bare scores, for databases holding scores without runs.
func printScoresOnly(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'catch play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
