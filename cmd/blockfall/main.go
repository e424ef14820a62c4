// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play [variant]      - Play a variant (default: blockfall)
//	blockfall menu                - Pick a variant interactively
//	blockfall list                - List available variants
//	blockfall scores <variant>    - Show high scores for a variant
//	blockfall replay <script>     - Fold a scripted game and print the result
//
// Global flags:
//
//	--seed <value>     - Session seed for reproducible games
//	--db <path>        - Score database (default: in-memory)
//	--config <path>    - Game config YAML
//	--log-file <path>  - Write logs to a file while the TUI runs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall drops tetrominoes onto a grid. Fill a row to clear it;
every cleared row scores a point and raises the level, and a row of debris
rises into the play area. The game ends when a block settles in the top row.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker
  list     - Show all variants
  scores   - View high scores
  replay   - Run a scripted game

Examples:
  blockfall play
  blockfall play blockfall_pivot --seed 42
  blockfall menu --db ~/.blockfall/scores.db
  blockfall replay ./game.yaml --trace`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Session seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", ":memory:", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger returns a logger for the interactive commands. The terminal
// belongs to the TUI, so logs go to --log-file or nowhere.
// The returned close function must be called before exit.
func newLogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
	}), closeFn
}

// newStderrLogger returns a logger for non-interactive commands.
func newStderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
	})
}
