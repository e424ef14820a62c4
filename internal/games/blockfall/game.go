// Package blockfall adapts the falling-block engine to the platform's
// registry.Game interface: it maps platform actions to engine actions,
// owns pause and restart seeding, and draws the board.
package blockfall

import (
	"math/rand/v2"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Variant IDs.
const (
	ID      = "blockfall"
	PivotID = "blockfall_pivot"
)

// seedStream separates the restart seed generator from other PCG users.
const seedStream = 0x5eed5eed

// Package-level config path, set by the CLI before games are created.
var configPath string

// SetConfigPath sets the config file used by subsequent Reset calls.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements registry.Game for one blockfall variant.
type Game struct {
	id    string
	pivot bool // Always rotate the O piece

	cfg       config.Config
	cfgErr    error // Load failure behind a default config
	cfgLoaded bool

	state     engine.State
	seeds     *rand.Rand // Draws piece and debris seeds for every new game
	pieceSeed uint32     // Piece seed of the running game
	tick      uint64

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates the standard variant.
func New() *Game {
	return &Game{id: ID}
}

// NewPivot creates the variant that rotates the O piece about its pivot.
func NewPivot() *Game {
	return &Game{id: PivotID, pivot: true}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(PivotID, func() registry.Game {
		return NewPivot()
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.pivot {
		return "Blockfall (Square Pivot)"
	}
	return "Blockfall"
}

// UseConfig pins the configuration instead of loading it on Reset.
func (g *Game) UseConfig(cfg config.Config) {
	g.cfg = cfg
	g.cfgErr = nil
	g.cfgLoaded = true
}

// ConfigError returns the error that made Reset fall back to the default
// config, or nil.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Rules returns the engine rules this variant plays with.
func (g *Game) Rules() engine.Rules {
	rules := g.cfg.EngineRules()
	if g.pivot {
		rules.RotateSquare = true
	}
	return rules
}

// Reset starts a new session. Piece and debris seeds for this game and every
// later restart come from cfg.Seed.
// Without UseConfig the config is loaded from the search path; a broken file
// leaves the defaults in place and is reported by ConfigError.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.cfgLoaded {
		loaded, _, err := config.Load(configPath)
		if err != nil {
			loaded = config.DefaultConfig()
		}
		g.cfg = loaded
		g.cfgErr = err
		g.cfgLoaded = true
	}

	g.seeds = rand.New(rand.NewPCG(uint64(cfg.Seed), seedStream))
	g.tick = 0
	g.paused = false
	g.newGame(cfg.BestScore)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// newGame folds a restart with fresh seeds, keeping the given high score.
func (g *Game) newGame(highScore int) {
	seed, debris := g.seeds.Uint32(), g.seeds.Uint64()
	g.state = engine.New(g.Rules(), seed, debris)
	g.state.HighScore = highScore
	g.pieceSeed = seed
}

func (g *Game) restart() {
	seed, debris := g.seeds.Uint32(), g.seeds.Uint64()
	g.state = engine.Reduce(g.state, engine.RestartWith(seed, debris))
	g.pieceSeed = seed
	g.paused = false
}

// Resize updates the screen size and the too-small flag.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step applies the frame's actions in order.
// Pause blocks every engine action; restart is always honoured.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var restarted bool

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		switch a {
		case core.ActionPause:
			if !g.state.Ended {
				g.paused = !g.paused
			}
		case core.ActionRestart:
			g.restart()
			restarted = true
		default:
			if g.paused {
				continue
			}
			if k, ok := engineAction(a); ok {
				g.state = engine.Reduce(g.state, engine.Do(k))
			}
		}
	}

	return core.StepResult{State: g.State(), Restarted: restarted}
}

// engineAction maps platform actions to reducer actions.
func engineAction(a core.Action) (engine.ActionKind, bool) {
	switch a {
	case core.ActionTick:
		return engine.ActionTick, true
	case core.ActionLeft:
		return engine.ActionMoveLeft, true
	case core.ActionRight:
		return engine.ActionMoveRight, true
	case core.ActionSoftDrop:
		return engine.ActionSoftDrop, true
	case core.ActionHardDrop:
		return engine.ActionHardDrop, true
	case core.ActionRotateLeft:
		return engine.ActionRotateLeft, true
	case core.ActionRotateRight:
		return engine.ActionRotateRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		Level:     g.state.Level,
		HighScore: g.state.HighScore,
		GameOver:  g.state.Ended,
		Paused:    g.paused || g.tooSmall,
	}
}

// EngineState returns the underlying engine snapshot.
func (g *Game) EngineState() engine.State {
	return g.state
}

// PieceSeed returns the piece seed of the running game.
func (g *Game) PieceSeed() uint32 {
	return g.pieceSeed
}
