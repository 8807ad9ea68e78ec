// ABOUTME: Tests for the Mode enum's String and Toggle methods.
// ABOUTME: Verifies toggling twice returns to the starting mode.
package tui

import "testing"

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeMinimal, "minimal"},
		{ModeVerbose, "verbose"},
		{Mode(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestModeToggle(t *testing.T) {
	if got := ModeMinimal.Toggle(); got != ModeVerbose {
		t.Errorf("ModeMinimal.Toggle() = %v, want verbose", got)
	}
	if got := ModeVerbose.Toggle(); got != ModeMinimal {
		t.Errorf("ModeVerbose.Toggle() = %v, want minimal", got)
	}
	if got := Mode(7).Toggle(); got != ModeMinimal {
		t.Errorf("Mode(7).Toggle() = %v, want minimal", got)
	}
}

func TestModeToggleTwiceIsIdentity(t *testing.T) {
	for _, m := range []Mode{ModeMinimal, ModeVerbose} {
		if got := m.Toggle().Toggle(); got != m {
			t.Errorf("%v toggled twice = %v", m, got)
		}
	}
}
