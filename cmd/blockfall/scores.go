package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 high scores for the given variant.

The default database is in-memory, so pass --db to read a score file.

Examples:
  blockfall scores blockfall --db ~/.blockfall/scores.db`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	logger := newStderrLogger()

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Debug("scores database opened", "path", flagDBPath)

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockfall play %s --db %s' to set the first high score!\n", gameID, flagDBPath)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %s\n", "Rank", "Score", "Level", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %s\n", "----", "-----", "-----", "----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-10d  %s\n", i+1, entry.Score, entry.Level, entry.Seed, dateStr)
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		logger.Warn("could not read stats", "game", gameID, "error", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.1f  Lines: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
}
