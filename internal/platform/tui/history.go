package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

// History layout constants
const (
	minWidthForDetail = 100 // Minimum width to show the detail pane
	detailWidth       = 44  // Width of the detail pane
	maxSessions       = 100 // Max sessions to load
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "x"),
			key.WithHelp("x", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing saved sessions.
type HistoryModel struct {
	store      *storage.Store
	sessions   []storage.SessionRecord
	tallies    []storage.ReactionTally
	samples    []storage.PopulationSample
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	width      int
	height     int
	err        error
	quitting   bool
	goingBack  bool
	showDetail bool
	detailFor  string // session id the detail pane was loaded for
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:      store,
		keys:       DefaultHistoryKeyMap(),
		help:       h,
		width:      width,
		height:     height,
		showDetail: width >= minWidthForDetail,
	}
	m.table = m.createTable()
	m.loadSessions()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Scene", Width: 10},
		{Title: "Ticks", Width: 8},
		{Title: "Peak", Width: 7},
		{Title: "React", Width: 7},
		{Title: "Walls", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions reloads the session list from the store.
func (m *HistoryModel) loadSessions() {
	m.sessions = nil
	if m.store != nil {
		sessions, err := m.store.RecentSessions(maxSessions)
		m.err = err
		if err == nil {
			m.sessions = sessions
		}
	}
	m.updateTableRows()
	m.loadDetail()
}

// updateTableRows updates the table with current sessions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			humanize.Time(s.StartedAt),
			s.Scene,
			humanize.Comma(int64(s.Ticks)),
			humanize.Comma(int64(s.Peak)),
			humanize.Comma(int64(s.Reactions)),
			s.Boundary,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// loadDetail loads tallies and samples for the selected session.
func (m *HistoryModel) loadDetail() {
	sel := m.selected()
	if sel == nil || m.store == nil {
		m.tallies, m.samples, m.detailFor = nil, nil, ""
		return
	}
	if sel.ID == m.detailFor {
		return
	}
	m.detailFor = sel.ID
	m.tallies, _ = m.store.ReactionTallies(sel.ID)
	m.samples, _ = m.store.PopulationSamples(sel.ID)
}

func (m HistoryModel) selected() *storage.SessionRecord {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sessions) {
		return nil
	}
	return &m.sessions[i]
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Delete):
			if sel := m.selected(); sel != nil && m.store != nil {
				m.err = m.store.DeleteSession(sel.ID)
				m.detailFor = ""
				m.loadSessions()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.loadDetail()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetail = m.width >= minWidthForDetail
		m.table = m.createTable()
		m.updateTableRows()
		m.loadDetail()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SESSION HISTORY", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	list := boxStyle.Render(m.renderTableContent())
	if m.showDetail {
		detail := boxStyle.Width(detailWidth).Render(m.renderDetail())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	} else {
		b.WriteString(list)
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nPlay a scene and quit to save one!")
	}
	return m.table.View()
}

// renderDetail renders the reactions and population chart of the selection.
func (m HistoryModel) renderDetail() string {
	sel := m.selected()
	if sel == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  seed %d\n", sel.Scene, sel.Seed)
	fmt.Fprintf(&b, "ran %s, spawned %s\n\n", sel.Duration().Round(time.Second), humanize.Comma(int64(sel.Spawned)))

	if len(m.tallies) == 0 {
		b.WriteString("no reactions\n")
	}
	for _, t := range m.tallies {
		fmt.Fprintf(&b, "%-6s + %-6s -> %-6s %6s\n", t.A, t.B, t.Product, humanize.Comma(int64(t.Count)))
	}

	if plot := PopulationPlot(m.samples, detailWidth-12, 6); plot != "" {
		b.WriteString("\n")
		b.WriteString(plot)
	}
	return b.String()
}

// PopulationPlot charts the total population of samples. It returns an
// empty string when there are fewer than two samples.
func PopulationPlot(samples []storage.PopulationSample, width, height int) string {
	if len(samples) < 2 {
		return ""
	}
	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = float64(s.Total())
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption("population"),
	)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
