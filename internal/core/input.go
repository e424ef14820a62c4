package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with these intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionTick               // Gravity step from the platform clock
	ActionLeft               // A, Left arrow - move piece left
	ActionRight              // D, Right arrow - move piece right
	ActionSoftDrop           // S, Down arrow - one row down (throttled)
	ActionHardDrop           // Space - drop to the resting row
	ActionRotateLeft         // Z - rotate counter-clockwise
	ActionRotateRight        // X, W, Up arrow - rotate clockwise
	ActionRestart            // R - start a new game
	ActionPause              // P, Escape - pause/unpause
	ActionQuit               // Q, Ctrl+C - exit session
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionTick:        "Tick",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionSoftDrop:    "SoftDrop",
	ActionHardDrop:    "HardDrop",
	ActionRotateLeft:  "RotateLeft",
	ActionRotateRight: "RotateRight",
	ActionRestart:     "Restart",
	ActionPause:       "Pause",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions triggered between two simulation steps.
// Order is preserved: games apply actions in the order they were pushed.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf builds a frame from a list of actions.
func FrameOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Push(a)
	}
	return f
}

// Push appends an action. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the queued actions in push order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.actions {
		if x == a {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next step, keeping its capacity.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates an independent copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{actions: append([]Action(nil), f.actions...)}
}
