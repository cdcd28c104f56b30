package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// StyleCache builds lipgloss styles for color pairs on first use.
type StyleCache struct {
	styles map[styleKey]lipgloss.Style
}

// NewStyleCache creates an empty style cache.
func NewStyleCache() *StyleCache {
	return &StyleCache{styles: make(map[styleKey]lipgloss.Style)}
}

// Style returns the style for a foreground and background pair.
func (c *StyleCache) Style(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if s, ok := c.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(bg))
	}
	c.styles[k] = s
	return s
}

// Len returns the number of cached styles.
func (c *StyleCache) Len() int {
	return len(c.styles)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles *StyleCache) string {
	if styles == nil {
		styles = NewStyleCache()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.Style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
