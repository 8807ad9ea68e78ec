// ABOUTME: tea.Cmd factories for the interactive loop.
// ABOUTME: PollCmd schedules the next PollMsg independently of the progress update interval.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PollInterval bounds how long a key press or quit can wait before the loop
// notices a due repaint or an expired hint.
const PollInterval = 100 * time.Millisecond

// PollCmd returns a tea.Cmd that sends a PollMsg after the given interval.
func PollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollMsg{Time: t}
	})
}
