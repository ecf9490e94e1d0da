package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fighter/internal/registry"
	"github.com/vovakirdan/tui-fighter/internal/storage"
)

const maxHistory = 100

// HistoryView selects the table shown by the history screen.
type HistoryView int

const (
	ViewMatches HistoryView = iota
	ViewCharacters
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Switch, k.Quit},
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
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "matches/characters"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing past matches.
type HistoryModel struct {
	matches  []storage.MatchRecord
	records  []storage.CharacterRecord
	loadErr  error
	view     HistoryView
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel loads match history from the store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	if store != nil {
		m.matches, m.loadErr = store.RecentMatches(maxHistory)
		if m.loadErr == nil {
			m.records, m.loadErr = store.CharacterRecords()
		}
	}

	m.table = m.createTable()
	return m
}

func (m *HistoryModel) columns() []table.Column {
	if m.view == ViewCharacters {
		return []table.Column{
			{Title: "Character", Width: 12},
			{Title: "Played", Width: 8},
			{Title: "Wins", Width: 6},
			{Title: "Losses", Width: 8},
			{Title: "Win %", Width: 7},
		}
	}
	return []table.Column{
		{Title: "Date", Width: 14},
		{Title: "P1", Width: 7},
		{Title: "P2", Width: 7},
		{Title: "Score", Width: 7},
		{Title: "Winner", Width: 8},
		{Title: "Secs", Width: 6},
		{Title: "Via", Width: 6},
	}
}

func (m *HistoryModel) rows() []table.Row {
	if m.view == ViewCharacters {
		rows := make([]table.Row, len(m.records))
		for i, r := range m.records {
			pct := 0.0
			if r.Played > 0 {
				pct = float64(r.Wins) * 100 / float64(r.Played)
			}
			rows[i] = table.Row{
				registry.Name(r.CharID),
				fmt.Sprintf("%d", r.Played),
				fmt.Sprintf("%d", r.Wins),
				fmt.Sprintf("%d", r.Losses()),
				fmt.Sprintf("%.0f", pct),
			}
		}
		return rows
	}

	rows := make([]table.Row, len(m.matches))
	for i, r := range m.matches {
		winner := "P1"
		if r.Winner == 1 {
			winner = "P2"
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			registry.Name(r.P1Char),
			registry.Name(r.P2Char),
			fmt.Sprintf("%d-%d", r.P1Rounds, r.P2Rounds),
			winner,
			fmt.Sprintf("%d", r.Ticks/60),
			r.Source,
		}
	}
	return rows
}

// createTable creates a new table for the current view.
func (m *HistoryModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// CurrentView returns the selected table.
func (m HistoryModel) CurrentView() HistoryView {
	return m.view
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

		case key.Matches(msg, m.keys.Switch):
			if m.view == ViewMatches {
				m.view = ViewCharacters
			} else {
				m.view = ViewMatches
			}
			m.table = m.createTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "MATCH HISTORY"
	if m.view == ViewCharacters {
		title = "CHARACTER RECORDS"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.tableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.matches) == 0:
		return emptyStyle.Render("No matches recorded yet.\nFinish a fight to start the history!")
	}
	return m.table.View()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunHistory runs the history screen.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
