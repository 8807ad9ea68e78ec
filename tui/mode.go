// ABOUTME: Defines the display Mode enum for the interactive view (minimal bar or verbose layout).
// ABOUTME: Provides String and Toggle helpers used by the key handler.
package tui

// Mode selects how much the interactive view shows.
type Mode int

const (
	ModeMinimal Mode = iota // Bar only
	ModeVerbose             // Labels, bar, and elapsed/remaining summary
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMinimal:
		return "minimal"
	case ModeVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode. Unknown values fall back to ModeMinimal.
func (m Mode) Toggle() Mode {
	if m == ModeMinimal {
		return ModeVerbose
	}
	return ModeMinimal
}
