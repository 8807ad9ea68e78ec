// ABOUTME: Defines lipgloss styles for the progress bar tiers, date labels, summary line, and key hint.
// ABOUTME: Provides StyleForTier to map a progress.Tier to its bar style.
package tui

import (
	"github.com/2389-research/pmon/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Bar tiers
	NormalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	DangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	// Verbose layout
	LabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	SummaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

	// Instruction hint under the minimal bar
	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// StyleForTier returns the bar style for a progress tier.
func StyleForTier(tier progress.Tier) lipgloss.Style {
	switch tier {
	case progress.TierWarning:
		return WarningStyle
	case progress.TierDanger:
		return DangerStyle
	default:
		return NormalStyle
	}
}
