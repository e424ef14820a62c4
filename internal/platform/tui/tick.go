// Package tui runs blockfall in the terminal with Bubble Tea.
// Timer ticks and key presses arrive as messages on one loop and are applied
// to the game in arrival order.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when the gravity timer fires.
type TickMsg time.Time

// tickCmd schedules the next gravity tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
