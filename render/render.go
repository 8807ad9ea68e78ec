// ABOUTME: Renders progress percentages as fixed-width 40-cell bars, bare or bracketed with a percentage.
// ABOUTME: Output is plain text; callers wrap it in a tier color style (lipgloss or fatih/color).
package render

import (
	"fmt"
	"math"
	"strings"
)

// Bar geometry and glyphs.
const (
	BarWidth    = 40
	FilledGlyph = "█"
	EmptyGlyph  = "░"
)

// FilledCells returns how many of the BarWidth cells a percentage fills,
// rounded to the nearest cell and clamped to [0, BarWidth].
func FilledCells(percent float64) int {
	switch {
	case math.IsNaN(percent) || percent <= 0:
		return 0
	case percent >= 100:
		return BarWidth
	}
	return int(math.Round(percent / 100 * BarWidth))
}

// Minimal renders the bare bar: exactly BarWidth cells, no brackets, no suffix.
func Minimal(percent float64) string {
	n := FilledCells(percent)
	return strings.Repeat(FilledGlyph, n) + strings.Repeat(EmptyGlyph, BarWidth-n)
}

// Bracketed renders the legacy single-line bar, e.g. "[████      ] 25%".
// Empty cells are spaces and the percentage is rounded to a whole number.
func Bracketed(percent float64) string {
	n := FilledCells(percent)
	shown := percent
	if math.IsNaN(shown) || shown < 0 {
		shown = 0
	}
	return fmt.Sprintf("[%s%s] %.0f%%",
		strings.Repeat(FilledGlyph, n), strings.Repeat(" ", BarWidth-n), shown)
}
