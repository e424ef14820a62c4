package engine

// Default playfield dimensions and debris buffer.
const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultDebrisBuffer = 5
)

// Minimum playfield size that still fits every spawned shape.
const (
	MinWidth  = 5
	MinHeight = 4
)

// Rules are the per-session constants of a game.
type Rules struct {
	Width        int
	Height       int
	DebrisBuffer int  // Rows at the top that never receive debris
	RotateSquare bool // Rotate the O piece instead of treating it as invariant
}

// DefaultRules returns the standard 10x20 rules.
func DefaultRules() Rules {
	return Rules{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		DebrisBuffer: DefaultDebrisBuffer,
	}
}

// Status is the state machine position of a game.
type Status uint8

const (
	StatusRunning Status = iota
	StatusEnded
)

// String returns the status name.
func (s Status) String() string {
	if s == StatusEnded {
		return "ended"
	}
	return "running"
}

// State is a complete, immutable-by-convention game snapshot.
// Both random sources are part of the value, so folding the same actions
// over the same State always yields the same result.
type State struct {
	Ended     bool
	Grid      Grid
	Current   Piece
	Next      Piece
	Score     int
	Level     int
	HighScore int

	Sequence Sequence
	Debris   Debris
	Rules    Rules
}

// New builds a fresh running game: empty grid, current and next piece
// drawn from a sequence seeded with seed.
func New(rules Rules, seed uint32, debrisSeed uint64) State {
	seq := NewSequence(seed)
	current, seq := Generate(seq, rules.Width)
	next, seq := Generate(seq, rules.Width)

	return State{
		Grid:     NewGrid(rules.Width, rules.Height),
		Current:  current,
		Next:     next,
		Sequence: seq,
		Debris:   NewDebris(debrisSeed),
		Rules:    rules,
	}
}

// Status returns Running or Ended.
func (s State) Status() Status {
	if s.Ended {
		return StatusEnded
	}
	return StatusRunning
}
