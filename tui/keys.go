// ABOUTME: Key bindings for the interactive view: 'v' toggles detail, 'q'/esc/ctrl+c quit.
// ABOUTME: Exposes ShortHelp so the bindings can describe themselves in the hint line.
package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keybindings for the TUI.
type keyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings shown in the hint line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Quit}
}

var defaultKeyMap = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "for details"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "to quit"),
	),
}
