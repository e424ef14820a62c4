package blockfall

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	g.UseConfig(config.DefaultConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{ID, PivotID} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestVariantRules(t *testing.T) {
	std := newTestGame(t, New(), 1)
	pivot := newTestGame(t, NewPivot(), 1)

	assert.False(t, std.Rules().RotateSquare)
	assert.True(t, pivot.Rules().RotateSquare)
	assert.Equal(t, engine.DefaultRules(), std.Rules())
	assert.NotEqual(t, std.Title(), pivot.Title())
}

func TestPivotVariantRotatesSquare(t *testing.T) {
	for _, tc := range []struct {
		game    *Game
		rotates bool
	}{
		{New(), false},
		{NewPivot(), true},
	} {
		g := newTestGame(t, tc.game, 1)
		g.state.Current = engine.Translate(engine.Spawn(engine.ShapeO, 10), 0, 5)
		before := g.state.Current

		g.Step(core.FrameOf(core.ActionRotateRight))
		assert.Equal(t, tc.rotates, before != g.state.Current, g.ID())
	}
}

func TestDeterminism(t *testing.T) {
	frames := []core.InputFrame{
		core.FrameOf(core.ActionLeft, core.ActionTick),
		core.FrameOf(core.ActionRotateRight),
		core.FrameOf(core.ActionHardDrop, core.ActionTick),
		core.FrameOf(core.ActionRight, core.ActionRight, core.ActionTick),
		core.FrameOf(core.ActionSoftDrop),
		core.FrameOf(core.ActionHardDrop, core.ActionTick),
	}

	g1 := newTestGame(t, New(), 12345)
	g2 := newTestGame(t, New(), 12345)
	for range 20 {
		for _, f := range frames {
			g1.Step(f)
			g2.Step(f)
		}
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Equal(t, g1.EngineState(), g2.EngineState())
}

func TestSessionSeedSelectsGame(t *testing.T) {
	a := newTestGame(t, New(), 1)
	b := newTestGame(t, New(), 1)
	c := newTestGame(t, New(), 2)

	assert.Equal(t, a.PieceSeed(), b.PieceSeed())
	assert.NotEqual(t, a.PieceSeed(), c.PieceSeed())
}

func TestFrameOrderIsApplied(t *testing.T) {
	g := newTestGame(t, New(), 3)
	g.Step(core.FrameOf(core.ActionTick, core.ActionTick))
	start := g.state.Current.Pivot()

	g.Step(core.FrameOf(core.ActionLeft, core.ActionLeft))
	assert.Equal(t, start.X-2, g.state.Current.Pivot().X)

	g.Step(core.FrameOf(core.ActionRight, core.ActionTick))
	assert.Equal(t, start.Add(-1, 1), g.state.Current.Pivot())
}

func TestPauseBlocksEngineActions(t *testing.T) {
	g := newTestGame(t, New(), 4)

	res := g.Step(core.FrameOf(core.ActionPause))
	require.True(t, res.State.Paused)
	before := g.EngineState()

	g.Step(core.FrameOf(core.ActionTick, core.ActionLeft, core.ActionHardDrop))
	assert.Equal(t, before, g.EngineState())
	assert.Equal(t, StatePaused, g.Snapshot().State)

	res = g.Step(core.FrameOf(core.ActionPause, core.ActionTick))
	assert.False(t, res.State.Paused)
	assert.Equal(t, before.Current.Pivot().Add(0, 1), g.state.Current.Pivot())
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, New(), 5)
	g.state.HighScore = 4
	g.state.Score = 3
	g.state.Ended = true
	oldSeed := g.PieceSeed()

	g.Step(core.FrameOf(core.ActionPause))
	assert.False(t, g.paused, "pause is ignored after game over")

	res := g.Step(core.FrameOf(core.ActionRestart))
	assert.True(t, res.Restarted)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 4, res.State.HighScore)
	assert.NotEqual(t, oldSeed, g.PieceSeed())
	assert.Equal(t, 0, g.state.Grid.FilledCount())
}

func TestRestartClearsPause(t *testing.T) {
	g := newTestGame(t, New(), 6)
	g.Step(core.FrameOf(core.ActionPause))

	res := g.Step(core.FrameOf(core.ActionRestart, core.ActionTick))
	assert.False(t, res.State.Paused)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
}

func TestEndedIgnoresMoves(t *testing.T) {
	g := newTestGame(t, New(), 7)
	g.state.Ended = true
	before := g.EngineState()

	res := g.Step(core.FrameOf(core.ActionLeft, core.ActionTick, core.ActionHardDrop))
	assert.True(t, res.State.GameOver)
	assert.Equal(t, before, g.EngineState())
	assert.Equal(t, StateGameOver, g.Snapshot().State)
}

func TestResetReportsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  width: 2\n"), 0o600))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	require.ErrorIs(t, g.ConfigError(), config.ErrInvalid)
	assert.Equal(t, engine.DefaultRules(), g.Rules())

	g.UseConfig(config.DefaultConfig())
	assert.NoError(t, g.ConfigError())
}

func TestResetLoadsConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  width: 12\n"), 0o600))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	require.NoError(t, g.ConfigError())
	assert.Equal(t, 12, g.Rules().Width)
}

func TestBestScoreSeedsHighScore(t *testing.T) {
	g := New()
	g.UseConfig(config.DefaultConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1, BestScore: 7})

	assert.Equal(t, 7, g.State().HighScore)
}

func TestTooSmall(t *testing.T) {
	g := New()
	g.UseConfig(config.DefaultConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	before := g.EngineState()
	res := g.Step(core.FrameOf(core.ActionTick))
	assert.True(t, res.State.Paused)
	assert.Equal(t, before, g.EngineState())
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New(), 8)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "BLOCKFALL")
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "┌")

	color := ShapeColor(g.state.Current.Shape)
	found := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y); c.Rune == blockChar && c.Color == color {
				found = true
			}
		}
	}
	assert.True(t, found, "current piece should be drawn in its shape colour")
	assert.Contains(t, out, string(ghostChar), "ghost piece should be drawn")
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, New(), 9)
	screen := core.NewScreen(80, 24)

	g.Step(core.FrameOf(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(core.FrameOf(core.ActionPause))
	g.state.Ended = true
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.False(t, strings.Contains(out, "PAUSED"))
}

func TestShapeColorsDistinct(t *testing.T) {
	seen := make(map[core.Color]bool)
	for s := range engine.Shape(engine.ShapeCount) {
		c := ShapeColor(s)
		assert.NotEqual(t, core.ColorDefault, c)
		assert.False(t, seen[c], "shape %s reuses colour", s)
		seen[c] = true
	}
}
