// ABOUTME: Implements the transient key hint shown under the minimal bar.
// ABOUTME: The hint is armed at loop start and on returning to minimal mode, and expires after HintTimeout.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
)

// HintTimeout is how long the hint stays on screen after being shown.
const HintTimeout = 3 * time.Second

// HintModel tracks when the key hint was last shown and whether it is visible.
type HintModel struct {
	text    string
	shownAt time.Time
	visible bool
}

// NewHintModel builds the hint text from the given bindings' help entries.
func NewHintModel(bindings []key.Binding) HintModel {
	return HintModel{text: hintText(bindings)}
}

// Show makes the hint visible and restarts its timeout at now.
func (h *HintModel) Show(now time.Time) {
	h.shownAt = now
	h.visible = true
}

// Hide clears the hint immediately.
func (h *HintModel) Hide() {
	h.visible = false
}

// Expire hides the hint once HintTimeout has passed since Show. It reports
// whether the hint was hidden by this call.
func (h *HintModel) Expire(now time.Time) bool {
	if h.visible && now.Sub(h.shownAt) >= HintTimeout {
		h.visible = false
		return true
	}
	return false
}

// Visible reports whether the hint should be drawn.
func (h HintModel) Visible() bool {
	return h.visible
}

// Text returns the unstyled hint text.
func (h HintModel) Text() string {
	return h.text
}

// View renders the hint, or an empty string when hidden.
func (h HintModel) View() string {
	if !h.visible {
		return ""
	}
	return HintStyle.Render(h.Text())
}

// hintText renders bindings as "press 'v' for details, 'q' to quit".
func hintText(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("'%s' %s", h.Key, h.Desc))
	}
	return "press " + strings.Join(parts, ", ")
}
