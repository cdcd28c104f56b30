package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sandbox/internal/config"
	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
)

// MenuItem represents a selectable scene in the menu.
type MenuItem struct {
	SceneID     string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the scene picker.
type MenuModel struct {
	items       []MenuItem
	presets     []config.BoundaryPreset
	cursor      int
	preset      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects a scene
	openHistory bool      // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model. The preset starts at initial when
// it is one of the known presets.
func NewMenuModel(cfg core.RuntimeConfig, initial config.BoundaryPreset) MenuModel {
	scenes := registry.List()
	items := make([]MenuItem, 0, len(scenes))
	for _, s := range scenes {
		items = append(items, MenuItem{
			SceneID:     s.ID,
			Title:       s.Title,
			Description: s.Description,
		})
	}

	presets := config.BoundaryPresets()
	preset := 0
	for i, p := range presets {
		if p == initial {
			preset = i
		}
	}

	return MenuModel{
		items:     items,
		presets:   presets,
		preset:    preset,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.preset = (m.preset + len(m.presets) - 1) % len(m.presets)

	case MenuActionRight:
		m.preset = (m.preset + 1) % len(m.presets)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the sandbox
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "  S A N D B O X  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a scene", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		line := item.Title
		if i == m.cursor {
			cursor = "> "
			b.WriteString(centerStyled(activeStyle, cursor+line, m.width))
		} else {
			b.WriteString(centerText(cursor+line, m.width))
		}
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerStyled(dimStyle, m.items[m.cursor].Description, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	walls := fmt.Sprintf("Walls: < %s >", m.Preset())
	b.WriteString(centerText(walls, m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Scene  |  Left/Right: Walls  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle, controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Preset returns the boundary preset currently shown.
func (m MenuModel) Preset() config.BoundaryPreset {
	if len(m.presets) == 0 {
		return config.BoundaryDefault
	}
	return m.presets[m.preset]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the session history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

func centerStyled(style lipgloss.Style, text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-w)/2) + style.Render(text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SceneID      string
	Preset       config.BoundaryPreset
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// Result summarizes the menu's final state.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config(), Preset: m.Preset()}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.SceneID = m.Selected().SceneID
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, initial config.BoundaryPreset) (MenuResult, error) {
	model := NewMenuModel(cfg, initial)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.Result(), nil
}
