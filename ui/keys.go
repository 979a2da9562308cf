package ui

// Action is a keyboard command.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePlayback
	ActionVolumeUp
	ActionVolumeDown
	ActionToggleStats
)

// KeyActions maps DOM keyCodes to actions.
var KeyActions = map[int]Action{
	32:  ActionTogglePlayback, // Space
	38:  ActionVolumeUp,       // Up
	40:  ActionVolumeDown,     // Down
	121: ActionToggleStats,    // F10
}

// ActionFor returns the action bound to keyCode.
func ActionFor(keyCode int) (Action, bool) {
	a, ok := KeyActions[keyCode]
	return a, ok
}

// StepVolume moves v by step in the direction of a and clamps to [0, 1].
// Actions other than volume up/down return v unchanged.
func StepVolume(v float64, a Action, step float64) float64 {
	switch a {
	case ActionVolumeUp:
		v += step
	case ActionVolumeDown:
		v -= step
	default:
		return v
	}
	return ClampVolume(v)
}

// ClampVolume clamps v to the slider range.
func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
