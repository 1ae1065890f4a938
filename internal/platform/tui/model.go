package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/highscore/internal/core"
	"github.com/vovakirdan/highscore/internal/registry"
	"github.com/vovakirdan/highscore/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game: it drives the tick
// loop, maps keys to actions and, when a round ends, asks for a name and
// records the result.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	player     string     // Name offered at the prompt
	nameEntry  *NameEntry // Open while the round's result is unrecorded
	recorded   bool       // Whether the current round has been recorded
	standalone bool       // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		player:     player,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.nameEntry != nil {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.nameEntry != nil {
		ne, cmd := m.nameEntry.Update(msg)
		m.nameEntry = &ne
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input during play.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back pauses a running round and leaves a paused or finished one
	if m.inputFrame.Has(core.ActionBack) {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	}

	return m, nil
}

// handleNameKey forwards keys to the name prompt and records the round once
// it closes.
func (m GameModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	ne, cmd := m.nameEntry.Update(msg)
	m.nameEntry = &ne
	if ne.Done() {
		m.record(ne.Name())
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restarts the round so the game can re-check its layout
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.nameEntry != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.gameState.GameOver && !m.recorded {
		if _, ok := m.game.(registry.Finisher); ok {
			ne := NewNameEntry(m.player, m.gameState.Score)
			m.nameEntry = &ne
			cmds = append(cmds, ne.Init())
		} else {
			m.record(m.player)
		}
	}

	return m, tea.Batch(cmds...)
}

// record saves the round's score and lets the game persist its own state.
// Failures are logged; play continues regardless.
func (m *GameModel) record(name string) {
	m.recorded = true
	m.nameEntry = nil

	score := m.gameState.Score
	if m.store != nil && score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), name, score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "err", err)
		}
	}

	if f, ok := m.game.(registry.Finisher); ok {
		if err := f.Finish(name); err != nil {
			m.logger.Warn("could not save round", "game", m.game.ID(), "err", err)
		}
	}
	m.logger.Info("round recorded", "game", m.game.ID(), "name", core.NormalizeName(name), "score", score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".highscore", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.nameEntry != nil {
		out = overlayBottom(out, m.nameEntry.View(), m.screen.Width())
	}
	return out
}

// overlayBottom replaces the last lines of base with panel, centered.
func overlayBottom(base, panel string, width int) string {
	lines := strings.Split(base, "\n")
	panelLines := strings.Split(lipgloss.PlaceHorizontal(width, lipgloss.Center, panel), "\n")

	start := max(0, len(lines)-len(panelLines))
	for i, l := range panelLines {
		if start+i >= len(lines) {
			break
		}
		lines[start+i] = l
	}
	return strings.Join(lines, "\n")
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Recorded reports whether the current round's result has been saved.
func (m GameModel) Recorded() bool {
	return m.recorded
}

// NamePrompt reports whether the name prompt is open.
func (m GameModel) NamePrompt() bool {
	return m.nameEntry != nil
}

// Run starts a single game in its own Bubble Tea program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, player, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse (for future use)
	)

	_, err := p.Run()
	return err
}
