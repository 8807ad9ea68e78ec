// ABOUTME: Bubble Tea message types used in the TUI message loop.
// ABOUTME: PollMsg drives the sub-second housekeeping loop that checks for due repaints.
package tui

import "time"

// PollMsg is sent every PollInterval. It decides whether a progress repaint
// is due and whether the key hint has expired.
type PollMsg struct {
	Time time.Time
}
