// Package tui hosts consolebird inside a Bubble Tea program.
// Bubble Tea owns the terminal; the engine draws into a virtual screen that
// the model renders with lipgloss, with a bubbles/help footer below it.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
