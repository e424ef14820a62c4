package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(MenuModel)
	require.True(t, ok)
	return out
}

func TestMenuListsVariantsWithBest(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	_, err = store.SaveScore(blockfall.PivotID, 12, 12, 1)
	require.NoError(t, err)

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()
	assert.Contains(t, view, "Blockfall (Square Pivot)  (best 12)")

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Selected())
	assert.Equal(t, blockfall.PivotID, m.Selected().GameID)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	sb := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, sb.WantsScoreboard())

	q := menuUpdate(t, m, runeKey('q'))
	assert.True(t, q.IsQuitting())
	assert.Empty(t, q.View())
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}

func TestScoreboardShowsScores(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	_, err = store.SaveScore(blockfall.ID, 9, 9, 4242)
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	assert.Contains(t, view, "HIGH SCORES - Blockfall")
	assert.Contains(t, view, "4242")
	assert.Contains(t, view, "games 1")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sb, ok := next.(ScoreboardModel)
	require.True(t, ok)
	assert.True(t, sb.IsGoingBack())
}

func scoreboardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return out
}

func TestScoreboardCyclesVariants(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	_, err = store.SaveScore(blockfall.ID, 12, 2, 99)
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)
	assert.Contains(t, m.View(), "piece seed 99")

	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	view := m.View()
	assert.Contains(t, view, "HIGH SCORES - Blockfall (Square Pivot)")
	assert.Contains(t, view, "No finished games yet.")
	assert.NotContains(t, view, "piece seed")

	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Contains(t, m.View(), "piece seed 99")

	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Contains(t, m.View(), "Square Pivot", "selection wraps backwards")

	m = scoreboardUpdate(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.False(t, m.IsGoingBack())
}
