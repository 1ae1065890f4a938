package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pixil98/go-errors"

	"github.com/vovakirdan/highscore/internal/core"
	"github.com/vovakirdan/highscore/internal/registry"
	"github.com/vovakirdan/highscore/internal/storage"
)

// Scoreboard layout
const (
	statsPanelWidth  = 24
	minWidthForStats = 76 // Below this the stats panel is hidden
	maxScores        = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Slots    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Slots, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Slots, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Slots: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "save slots"),
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

// ScoreboardModel shows the recorded scores of each mode and, on request,
// the save slots cached in the database.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	cursor    int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	boards    []storage.BoardInfo
	showSlots bool
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	loadErr   error
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// reload queries the store for the current view and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.boards = nil, nil, nil
	m.loadErr = nil

	if m.store != nil {
		el := errors.NewErrorList()
		if m.showSlots {
			boards, err := m.store.Boards()
			el.Add(err)
			m.boards = boards
		} else if len(m.modes) > 0 {
			id := m.modes[m.cursor].ID
			scores, err := m.store.TopScores(id, maxScores)
			el.Add(err)
			m.scores = scores
			stats, err := m.store.GetGameStats(id)
			el.Add(err)
			m.stats = stats
		}
		m.loadErr = el.Err()
	}

	m.table = m.buildTable()
}

// buildTable creates the table for the current view. Columns and rows are
// set together so a row never has fewer cells than there are columns.
func (m *ScoreboardModel) buildTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	if m.showSlots {
		columns = []table.Column{
			{Title: "Slot", Width: 28},
			{Title: "Updated", Width: 16},
		}
		for _, b := range m.boards {
			rows = append(rows, table.Row{b.Slot, b.UpdatedAt.Format("Jan 02 15:04")})
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: core.MaxNameLength + 2},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 14},
		}
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				s.PlayerName,
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
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

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.showSlots {
				m.showSlots = false
				m.reload()
				return m, nil
			}
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Slots):
			m.showSlots = !m.showSlots
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.NextMode):
			m.step(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the mode cursor by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.showSlots = false
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := "HIGH SCORES"
	if m.showSlots {
		title = "SAVE SLOTS"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	body := boxStyle.Render(m.renderTableContent())
	if !m.showSlots && m.width >= minWidthForStats {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", boxStyle.Render(m.renderStats()))
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// renderTabs renders one tab per mode, highlighting the open one.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, len(m.modes)+1)
	for i, mode := range m.modes {
		if i == m.cursor && !m.showSlots {
			tabs = append(tabs, activeStyle.Render(mode.Title))
		} else {
			tabs = append(tabs, tabStyle.Render(mode.Title))
		}
	}
	if m.showSlots {
		tabs = append(tabs, activeStyle.Render("Slots"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStats renders the summary panel for the open mode.
func (m ScoreboardModel) renderStats() string {
	style := lipgloss.NewStyle().Width(statsPanelWidth)
	if m.stats == nil || m.stats.GamesCount == 0 {
		return style.Foreground(lipgloss.Color("241")).Render("No rounds yet")
	}

	lines := []string{
		fmt.Sprintf("Best     %d", m.stats.HighScore),
		fmt.Sprintf("Rounds   %d", m.stats.GamesCount),
		fmt.Sprintf("Average  %.1f", m.stats.AvgScore),
		fmt.Sprintf("Total    %d", m.stats.TotalScore),
	}
	if !m.stats.LastPlayed.IsZero() {
		lines = append(lines, "Last     "+m.stats.LastPlayed.Format("Jan 02 15:04"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderTableContent renders the table, or a note when it has no rows.
func (m ScoreboardModel) renderTableContent() string {
	if m.loadErr != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Padding(1, 2).
			Render(fmt.Sprintf("Could not load:\n%v", m.loadErr))
	}

	empty := ""
	switch {
	case m.store == nil:
		empty = "No scores database."
	case m.showSlots && len(m.boards) == 0:
		empty = "No boards saved yet."
	case !m.showSlots && len(m.scores) == 0:
		empty = "No scores recorded yet.\nFinish a round to set a high score!"
	}
	if empty != "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render(empty)
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
