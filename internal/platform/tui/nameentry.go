package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/highscore/internal/core"
)

// NameEntry is the prompt shown when a round ends. It collects the name the
// score is recorded under.
type NameEntry struct {
	input     textinput.Model
	score     int
	submitted bool
	skipped   bool
}

// NewNameEntry creates a focused prompt prefilled with defaultName.
func NewNameEntry(defaultName string, score int) NameEntry {
	ti := textinput.New()
	ti.Prompt = "Name: "
	ti.Placeholder = "anon"
	ti.CharLimit = core.MaxNameLength
	ti.Width = core.MaxNameLength + 1
	ti.SetValue(strings.TrimSpace(defaultName))
	ti.Focus()

	return NameEntry{input: ti, score: score}
}

// Init starts the cursor blinking.
func (n NameEntry) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message while the prompt is open. Enter submits, Esc
// skips and records the score anonymously.
func (n NameEntry) Update(msg tea.Msg) (NameEntry, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			n.submitted = true
			n.input.Blur()
			return n, nil
		case tea.KeyEsc:
			n.skipped = true
			n.input.Blur()
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// Done reports whether the prompt was submitted or skipped.
func (n NameEntry) Done() bool {
	return n.submitted || n.skipped
}

// Name returns the normalized name to record.
func (n NameEntry) Name() string {
	if n.skipped {
		return core.NormalizeName("")
	}
	return core.NormalizeName(n.input.Value())
}

// View renders the prompt box.
func (n NameEntry) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("57")).
		Padding(0, 2)

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Time's up! Score: %d", n.score)),
		n.input.View(),
		helpStyle.Render("enter: save  esc: skip"),
	)
	return boxStyle.Render(body)
}
