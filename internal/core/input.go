package core

// Action represents a semantic playground action, abstracted from physical key presses.
// This allows scenarios to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionSpawn               // F, Enter - spawn immediately, ignoring capacity
	ActionTrySpawn            // Space - spawn if under capacity
	ActionRemoveOldest        // X, Backspace - destroy the oldest tracked entity
	ActionClear               // C - destroy every tracked entity
	ActionUp                  // W, Up arrow - menu navigation
	ActionDown                // S, Down arrow - menu navigation
	ActionConfirm             // Enter - confirm selection in menu
	ActionBack                // B, Escape - go back to menu
	ActionRestart             // R key - reset the scenario
	ActionQuit                // Q, Ctrl+C - exit playground/session
	ActionPause               // P - pause/unpause simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSpawn:
		return "Spawn"
	case ActionTrySpawn:
		return "TrySpawn"
	case ActionRemoveOldest:
		return "RemoveOldest"
	case ActionClear:
		return "Clear"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
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

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame. Frames handed out earlier
// keep their own map and are not affected.
func (f *InputFrame) Clear() {
	f.Actions = make(map[Action]bool)
}
