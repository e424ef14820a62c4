package engine

import (
	"fmt"
	"iter"
	"strings"
)

// ActionKind enumerates the inputs the reducer understands.
type ActionKind uint8

const (
	ActionTick ActionKind = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateLeft
	ActionRotateRight
	ActionRestart
)

var actionNames = [...]string{
	ActionTick:        "tick",
	ActionMoveLeft:    "left",
	ActionMoveRight:   "right",
	ActionSoftDrop:    "soft_drop",
	ActionHardDrop:    "hard_drop",
	ActionRotateLeft:  "rotate_left",
	ActionRotateRight: "rotate_right",
	ActionRestart:     "restart",
}

// String returns the script name of the action kind.
func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("action(%d)", k)
}

// ParseActionKind parses a script name such as "rotate_left".
func ParseActionKind(name string) (ActionKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range actionNames {
		if n == name {
			return ActionKind(k), true
		}
	}
	return 0, false
}

// Action is one element of the input stream.
// Seed and DebrisSeed are only read by ActionRestart.
type Action struct {
	Kind       ActionKind
	Seed       uint32
	DebrisSeed uint64
}

// Do wraps a kind without payload.
func Do(k ActionKind) Action {
	return Action{Kind: k}
}

// RestartWith builds a restart action carrying fresh seeds.
func RestartWith(seed uint32, debrisSeed uint64) Action {
	return Action{Kind: ActionRestart, Seed: seed, DebrisSeed: debrisSeed}
}

// Reduce applies one action and returns the next state.
// Once the game has ended every action except restart is a no-op.
func Reduce(s State, a Action) State {
	if a.Kind == ActionRestart {
		return restart(s, a)
	}
	if s.Ended {
		return s
	}

	switch a.Kind {
	case ActionTick, ActionSoftDrop:
		return tick(s)
	case ActionMoveLeft:
		return Move(s, Left)
	case ActionMoveRight:
		return Move(s, Right)
	case ActionHardDrop:
		return HardDrop(s)
	case ActionRotateLeft:
		return Rotate(s, Left)
	case ActionRotateRight:
		return Rotate(s, Right)
	}
	return s
}

// tick runs gravity, then line clear with refill, then scoring and the
// end check.
func tick(s State) State {
	s, _ = SoftTick(s)

	grid, cleared := ClearLines(s.Grid)
	grid, s.Debris = Refill(grid, cleared, s.Rules.DebrisBuffer, s.Debris)
	s.Grid = grid

	s = addClears(s, len(cleared))
	if CheckGameEnd(s.Grid) {
		s.Ended = true
	}
	return s
}

// restart rebuilds the game from the action's seeds.
// The session high score survives.
func restart(s State, a Action) State {
	fresh := New(s.Rules, a.Seed, a.DebrisSeed)
	fresh.HighScore = s.HighScore
	return fresh
}

// Fold applies actions in order and returns the final state.
func Fold(s State, actions []Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

// Steps yields every action together with the state it produced.
func Steps(s State, actions []Action) iter.Seq2[Action, State] {
	return func(yield func(Action, State) bool) {
		for _, a := range actions {
			s = Reduce(s, a)
			if !yield(a, s) {
				return
			}
		}
	}
}
