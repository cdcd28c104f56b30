package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	got := RenderScreen(s, nil)
	if got != "abc\nde " {
		t.Errorf("RenderScreen() = %q, expected %q", got, "abc\nde ")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetCell(0, 0, core.Cell{Rune: 'x', Fg: core.ColorRed})
	s.SetCell(1, 0, core.Cell{Rune: 'y', Fg: core.ColorRed})
	s.SetCell(2, 0, core.Cell{Rune: 'z', Fg: "#4169e1", Bg: core.ColorDim})

	got := RenderScreen(s, NewStyleCache())
	for _, r := range []string{"x", "y", "z"} {
		if !strings.Contains(got, r) {
			t.Errorf("RenderScreen() = %q, missing %q", got, r)
		}
	}
}

func TestStyleCache(t *testing.T) {
	c := NewStyleCache()
	c.Style(core.ColorRed, core.ColorDefault)
	c.Style(core.ColorRed, core.ColorDefault)
	c.Style(core.ColorRed, core.ColorDim)

	if c.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", c.Len())
	}
}
