package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/replay"
)

var flagTrace bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a scripted game and print the final board",
	Long: `Fold a replay script through the engine and print the result.

A script sets the seeds, an optional starting board and piece, and a list of
actions. Actions are tick, left, right, soft_drop, hard_drop,
rotate_left, rotate_right and restart; "tick*10" repeats an action and
"restart 5 9" restarts with explicit piece and debris seeds.

Example script:
  seed: 42
  debris_seed: 7
  variant: blockfall
  actions:
    - left
    - hard_drop
    - tick*3

Examples:
  blockfall replay ./game.yaml
  blockfall replay ./game.yaml --trace`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the board after every action")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newStderrLogger()

	script, err := replay.ParseFile(args[0])
	if err != nil {
		return err
	}

	base := config.DefaultConfig()
	if flagConfig != "" {
		loaded, source, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		logger.Info("config loaded", "source", source)
		base = loaded
	}

	st, err := script.Initial(base)
	if err != nil {
		return err
	}
	actions, err := script.Compile()
	if err != nil {
		return err
	}
	logger.Info("replay", "variant", script.Variant, "seed", script.Seed, "actions", len(actions))

	out := cmd.OutOrStdout()
	if flagTrace {
		fmt.Fprintf(out, "step 0: initial\n%s\n\n", engine.FormatState(st))
	}
	step := 0
	for a, next := range engine.Steps(st, actions) {
		st = next
		step++
		if flagTrace {
			fmt.Fprintf(out, "step %d: %s\n%s\n\n", step, a.Kind, engine.FormatState(st))
		}
	}

	fmt.Fprintln(out, engine.FormatState(st))
	fmt.Fprintf(out, "score: %d\nlevel: %d\nhigh score: %d\nstatus: %s\n",
		st.Score, st.Level, st.HighScore, st.Status())

	if st.Status() == engine.StatusEnded {
		logger.Info("game ended during replay", "score", st.Score)
	}
	return nil
}
