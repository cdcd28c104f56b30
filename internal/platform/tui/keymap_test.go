package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPlace, false},
		{"x", runeKey('x'), core.ActionErase, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextElement, false},
		{"t", runeKey('t'), core.ActionToggleTop, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected || quit != tt.quit {
				t.Errorf("MapKey() = %v, %v, expected %v, %v", action, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestMapKeyToFramePaletteSlot(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('3'), &frame)
	if frame.Select != 3 {
		t.Errorf("Select = %d, expected 3", frame.Select)
	}

	frame.Clear()
	km.MapKeyToFrame(runeKey('9'), &frame)
	if frame.Select != 0 {
		t.Errorf("Select = %d for slot past the palette, expected 0", frame.Select)
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonRight}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 6, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 7, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, &frame)

	if len(frame.Pointer) != 2 {
		t.Fatalf("len(Pointer) = %d, expected 2", len(frame.Pointer))
	}
	if frame.Pointer[0].Erase || frame.Pointer[0].Cell != (core.Point{X: 4, Y: 2}) {
		t.Errorf("Pointer[0] = %+v", frame.Pointer[0])
	}
	if !frame.Pointer[1].Erase {
		t.Errorf("Pointer[1] = %+v, expected erase", frame.Pointer[1])
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
