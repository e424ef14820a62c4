// Package replay runs scripted blockfall sessions.
// A script is a YAML file with seeds, an optional starting board and a list
// of actions; folding it through the engine always gives the same result.
package replay

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// maxRepeat bounds "action*N" entries.
const maxRepeat = 100000

// Script is the YAML structure of a replay file.
type Script struct {
	Variant      string   `yaml:"variant,omitempty"`
	Seed         uint32   `yaml:"seed"`
	DebrisSeed   uint64   `yaml:"debris_seed"`
	DebrisBuffer *int     `yaml:"debris_buffer,omitempty"`
	Board        []string `yaml:"board,omitempty"`
	Current      string   `yaml:"current,omitempty"`
	Actions      []string `yaml:"actions"`
}

// Parse decodes a script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("replay: yaml unmarshal: %w", err)
	}
	switch s.Variant {
	case "":
		s.Variant = blockfall.ID
	case blockfall.ID, blockfall.PivotID:
	default:
		return Script{}, fmt.Errorf("replay: unknown variant %q", s.Variant)
	}
	return s, nil
}

// ParseFile reads and decodes a script file.
func ParseFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: read %s: %w", path, err)
	}
	return Parse(data)
}

// Rules returns the engine rules for the script: defaults from base, grid size
// from the board when one is given, square rotation from the variant.
// Without an explicit debris_buffer, a board shorter than the base buffer
// clamps it below the board height.
func (s Script) Rules(base config.Config) engine.Rules {
	rules := base.EngineRules()
	if len(s.Board) > 0 {
		rules.Width = len(s.Board[0])
		rules.Height = len(s.Board)
	}
	switch {
	case s.DebrisBuffer != nil:
		rules.DebrisBuffer = *s.DebrisBuffer
	case len(s.Board) > 0:
		// A short board keeps at least its top row out of the refill band.
		rules.DebrisBuffer = min(rules.DebrisBuffer, max(rules.Height-1, 0))
	}
	if s.Variant == blockfall.PivotID {
		rules.RotateSquare = true
	}
	return rules
}

// Initial builds the starting state.
func (s Script) Initial(base config.Config) (engine.State, error) {
	rules := s.Rules(base)
	if rules.Width < engine.MinWidth || rules.Height < engine.MinHeight {
		return engine.State{}, fmt.Errorf("replay: board %dx%d is below %dx%d",
			rules.Width, rules.Height, engine.MinWidth, engine.MinHeight)
	}
	if rules.DebrisBuffer < 0 || rules.DebrisBuffer >= rules.Height {
		return engine.State{}, fmt.Errorf("replay: debris_buffer %d out of range", rules.DebrisBuffer)
	}

	st := engine.New(rules, s.Seed, s.DebrisSeed)

	if len(s.Board) > 0 {
		grid, err := engine.ParseGrid(s.Board)
		if err != nil {
			return engine.State{}, fmt.Errorf("replay: board: %w", err)
		}
		st.Grid = grid
	}

	if s.Current != "" {
		shape, ok := engine.ParseShape(s.Current)
		if !ok {
			return engine.State{}, fmt.Errorf("replay: unknown shape %q", s.Current)
		}
		st.Current = engine.Spawn(shape, rules.Width)
	}
	return st, nil
}

// Compile expands the action list.
// Entries are an action name, "name*N" for N repeats, or "restart" with
// optional explicit seeds ("restart 5 9"). Bare restarts draw their seeds
// from a generator seeded with the script seeds.
func (s Script) Compile() ([]engine.Action, error) {
	seeds := rand.New(rand.NewPCG(uint64(s.Seed), s.DebrisSeed))
	var out []engine.Action

	for i, entry := range s.Actions {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			return nil, fmt.Errorf("replay: action %d is empty", i)
		}

		name, count, err := splitRepeat(fields[0])
		if err != nil {
			return nil, fmt.Errorf("replay: action %d: %w", i, err)
		}
		kind, ok := engine.ParseActionKind(name)
		if !ok {
			return nil, fmt.Errorf("replay: action %d: unknown action %q", i, name)
		}

		if kind != engine.ActionRestart {
			if len(fields) > 1 {
				return nil, fmt.Errorf("replay: action %d: %s takes no arguments", i, name)
			}
			for range count {
				out = append(out, engine.Do(kind))
			}
			continue
		}

		switch len(fields) {
		case 1:
			for range count {
				out = append(out, engine.RestartWith(seeds.Uint32(), seeds.Uint64()))
			}
		case 3:
			seed, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("replay: action %d: seed: %w", i, err)
			}
			debris, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("replay: action %d: debris seed: %w", i, err)
			}
			for range count {
				out = append(out, engine.RestartWith(uint32(seed), debris))
			}
		default:
			return nil, fmt.Errorf("replay: action %d: restart takes zero or two seeds", i)
		}
	}
	return out, nil
}

// splitRepeat parses "name" or "name*N".
func splitRepeat(token string) (string, int, error) {
	name, rep, found := strings.Cut(token, "*")
	if !found {
		return name, 1, nil
	}
	n, err := strconv.Atoi(rep)
	if err != nil || n < 1 || n > maxRepeat {
		return "", 0, fmt.Errorf("invalid repeat count %q", rep)
	}
	return name, n, nil
}

// Run folds the whole script and returns the final state.
func Run(s Script, base config.Config) (engine.State, error) {
	st, err := s.Initial(base)
	if err != nil {
		return engine.State{}, err
	}
	actions, err := s.Compile()
	if err != nil {
		return engine.State{}, err
	}
	return engine.Fold(st, actions), nil
}
