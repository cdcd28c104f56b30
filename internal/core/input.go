package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // cursor up
	ActionDown               // cursor down
	ActionLeft               // cursor left
	ActionRight              // cursor right
	ActionPlace              // Space - place the selected element at the cursor
	ActionErase              // X, Backspace - erase under the cursor
	ActionNextElement        // Tab, ] - select next element
	ActionPrevElement        // Shift+Tab, [ - select previous element
	ActionBrushUp            // + - grow brush
	ActionBrushDown          // - - shrink brush
	ActionToggleTop          // T - toggle top wall
	ActionToggleBottom       // B - toggle bottom wall
	ActionToggleLeft         // L - toggle left wall
	ActionToggleRight        // R - toggle right wall
	ActionPin                // N - toggle pinned placement
	ActionClear              // C - remove every particle
	ActionPause              // P - pause/unpause
	ActionStep               // . - single tick while paused
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // Esc - go back to menu
	ActionQuit               // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionPlace:        "Place",
	ActionErase:        "Erase",
	ActionNextElement:  "NextElement",
	ActionPrevElement:  "PrevElement",
	ActionBrushUp:      "BrushUp",
	ActionBrushDown:    "BrushDown",
	ActionToggleTop:    "ToggleTop",
	ActionToggleBottom: "ToggleBottom",
	ActionToggleLeft:   "ToggleLeft",
	ActionToggleRight:  "ToggleRight",
	ActionPin:          "Pin",
	ActionClear:        "Clear",
	ActionPause:        "Pause",
	ActionStep:         "Step",
	ActionConfirm:      "Confirm",
	ActionBack:         "Back",
	ActionQuit:         "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// PointerEvent is a mouse press or drag on a screen cell.
type PointerEvent struct {
	Cell  Point
	Erase bool // right button
}

// InputFrame is the input collected for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Select is a 1-based palette slot chosen this frame, 0 for none.
	Select int
	// Pointer holds mouse events in arrival order.
	Pointer []PointerEvent
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

// Has returns true if the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Select == 0 && len(f.Pointer) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Select = 0
	f.Pointer = f.Pointer[:0]
}
