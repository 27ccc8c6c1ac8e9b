package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionSteerLeft         // Left, A - tilt the device left
	ActionSteerRight        // Right, D - tilt the device right
	ActionBoost             // Space - start from title, toggle turbo meter
	ActionConfirm           // Enter - start / confirm selection in menu
	ActionBack              // B, Escape - back to menu
	ActionRestart           // R - restart after game over
	ActionQuit              // Q, Ctrl+C - exit
	ActionPause             // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteerLeft:
		return "SteerLeft"
	case ActionSteerRight:
		return "SteerRight"
	case ActionBoost:
		return "Boost"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick: discrete actions
// plus the current tilt-sensor reading.
type InputFrame struct {
	Actions map[Action]bool
	Tilt    Tilt
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame. The tilt reading is kept;
// it is owned by whoever samples the sensor.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Tilt = f.Tilt
	return clone
}
