package blockfall

import "github.com/vovakirdan/blockfall/internal/games/blockfall/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Seed      uint32 // Piece seed of the running game
	Score     int
	Level     int
	HighScore int
	Current   string // Shape letter
	Next      string // Shape letter
	Board     string // engine.FormatState output
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.Ended:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Variant:   g.id,
		Seed:      g.pieceSeed,
		Score:     g.state.Score,
		Level:     g.state.Level,
		HighScore: g.state.HighScore,
		Current:   g.state.Current.Shape.String(),
		Next:      g.state.Next.Shape.String(),
		Board:     engine.FormatState(g.state),
		State:     state,
	}
}
