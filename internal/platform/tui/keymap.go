package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/element"
)

// KeyMapper translates Bubble Tea key and mouse messages to sandbox actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

var sandboxKeys = map[string]core.Action{
	"up":        core.ActionUp,
	"w":         core.ActionUp,
	"down":      core.ActionDown,
	"s":         core.ActionDown,
	"left":      core.ActionLeft,
	"a":         core.ActionLeft,
	"right":     core.ActionRight,
	"d":         core.ActionRight,
	" ":         core.ActionPlace,
	"x":         core.ActionErase,
	"backspace": core.ActionErase,
	"tab":       core.ActionNextElement,
	"]":         core.ActionNextElement,
	"shift+tab": core.ActionPrevElement,
	"[":         core.ActionPrevElement,
	"+":         core.ActionBrushUp,
	"=":         core.ActionBrushUp,
	"-":         core.ActionBrushDown,
	"t":         core.ActionToggleTop,
	"b":         core.ActionToggleBottom,
	"l":         core.ActionToggleLeft,
	"r":         core.ActionToggleRight,
	"n":         core.ActionPin,
	"c":         core.ActionClear,
	"p":         core.ActionPause,
	".":         core.ActionStep,
	"enter":     core.ActionConfirm,
	"esc":       core.ActionBack,
}

// MapKey translates a key message to a sandbox action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if a, ok := sandboxKeys[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// paletteSlot returns the 1-based palette slot for a digit key, or 0.
func paletteSlot(msg tea.KeyMsg) int {
	key := msg.String()
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0
	}
	slot := int(key[0] - '0')
	if slot > int(element.KindCount) {
		return 0
	}
	return slot
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if slot := paletteSlot(msg); slot > 0 {
		frame.Select = slot
		return false
	}
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records left presses and drags as placement and right
// ones as erasure. Other mouse events are ignored.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return false
	}
	var erase bool
	switch msg.Button {
	case tea.MouseButtonLeft:
	case tea.MouseButtonRight:
		erase = true
	default:
		return false
	}
	frame.Pointer = append(frame.Pointer, core.PointerEvent{
		Cell:  core.Point{X: msg.X, Y: msg.Y},
		Erase: erase,
	})
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionHistory
	}

	return MenuActionNone
}
