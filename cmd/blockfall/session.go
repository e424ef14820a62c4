package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// configurable is implemented by games that accept a loaded config.
type configurable interface {
	UseConfig(cfg config.Config)
}

// loadConfig loads the game config, exiting on a broken file.
func loadConfig(logger *log.Logger) config.Config {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)
	return cfg
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the score database; the game still runs without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// playSession runs one game of the given variant in the TUI.
func playSession(gameID string, cfg config.Config, store *storage.Store, rt core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if c, ok := game.(configurable); ok {
		c.UseConfig(cfg)
	}

	rt.TickInterval = cfg.TickInterval()
	rt.BestScore = 0
	if store != nil {
		best, err := store.HighScore(gameID)
		if err != nil {
			logger.Warn("could not read best score", "game", gameID, "error", err)
		}
		rt.BestScore = best
	}

	return tui.Run(game, store, rt, tui.Options{
		SoftDropThrottle: cfg.SoftDropThrottle(),
		Logger:           logger,
	})
}
