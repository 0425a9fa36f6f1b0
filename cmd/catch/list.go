package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered mode with its best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %6s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Best", "Description")
	fmt.Printf("  %-*s  %-*s  %6s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "-----------")

	for _, g := range games {
		best := 0
		if store != nil {
			best, _ = store.HighScore(g.ID)
		}
		fmt.Printf("  %-*s  %-*s  %6d  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, best, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'catch play <id>' to play a mode.")
}
