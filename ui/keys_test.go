package ui

import "testing"

func TestActionFor(t *testing.T) {
	tests := []struct {
		name     string
		keyCode  int
		expected Action
		ok       bool
	}{
		{"Space toggles playback", 32, ActionTogglePlayback, true},
		{"Up raises volume", 38, ActionVolumeUp, true},
		{"Down lowers volume", 40, ActionVolumeDown, true},
		{"F10 toggles stats", 121, ActionToggleStats, true},
		{"Letters are unbound", 65, ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := ActionFor(tt.keyCode)
			if a != tt.expected || ok != tt.ok {
				t.Errorf("ActionFor(%d) = %v, %v; want %v, %v", tt.keyCode, a, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestStepVolume(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		action   Action
		expected float64
	}{
		{"up", 0.5, ActionVolumeUp, 0.55},
		{"down", 0.5, ActionVolumeDown, 0.45},
		{"clamped at max", 0.98, ActionVolumeUp, 1},
		{"clamped at min", 0.02, ActionVolumeDown, 0},
		{"other actions leave volume", 0.5, ActionToggleStats, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepVolume(tt.v, tt.action, 0.05)
			if d := got - tt.expected; d > 1e-9 || d < -1e-9 {
				t.Errorf("StepVolume(%v) = %v, want %v", tt.v, got, tt.expected)
			}
		})
	}
}

func TestClampVolume(t *testing.T) {
	if ClampVolume(-0.2) != 0 || ClampVolume(1.5) != 1 || ClampVolume(0.3) != 0.3 {
		t.Error("ClampVolume out of range")
	}
}
