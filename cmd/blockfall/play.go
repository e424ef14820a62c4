package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: blockfall).

Variants:
  blockfall        - Standard rules, the O piece never rotates
  blockfall_pivot  - The O piece rotates about its pivot

Controls:
  Left/A, Right/D  - Move
  Up/X, Z          - Rotate right, rotate left
  Down/S           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play blockfall_pivot
  blockfall play --seed 42 --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := blockfall.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	cfg := loadConfig(logger)
	store := openStore(logger)

	width, height := terminalSize()
	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	runErr := playSession(gameID, cfg, store, rt, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
