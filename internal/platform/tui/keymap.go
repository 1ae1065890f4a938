package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/highscore/internal/core"
)

// binding pairs a key binding with the game action it triggers.
type binding struct {
	key    key.Binding
	action core.Action
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	quit key.Binding
	game []binding
	menu map[MenuAction]key.Binding
}

// NewKeyMapper creates a key mapper with the default bindings: arrows or
// WASD to move, Space or X to drill.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		game: []binding{
			{key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("↑/w", "north")), core.ActionUp},
			{key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("↓/s", "south")), core.ActionDown},
			{key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("←/a", "west")), core.ActionLeft},
			{key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("→/d", "east")), core.ActionRight},
			{key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "drill")), core.ActionDrill},
			{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")), core.ActionConfirm},
			{key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")), core.ActionBack},
			{key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")), core.ActionPause},
			{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")), core.ActionRestart},
		},
		menu: map[MenuAction]key.Binding{
			MenuActionUp:         key.NewBinding(key.WithKeys("w", "up", "k")),
			MenuActionDown:       key.NewBinding(key.WithKeys("s", "down", "j")),
			MenuActionSelect:     key.NewBinding(key.WithKeys("enter", " ")),
			MenuActionBack:       key.NewBinding(key.WithKeys("b", "esc")),
			MenuActionScoreboard: key.NewBinding(key.WithKeys("tab")),
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.key) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// ShortHelp lists the in-game bindings for a help line.
func (km *KeyMapper) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(km.game)+1)
	for _, b := range km.game {
		switch b.action {
		case core.ActionConfirm, core.ActionRestart:
			continue
		}
		out = append(out, b.key)
	}
	return append(out, km.quit)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// menuOrder fixes the matching order of menu bindings.
var menuOrder = []MenuAction{
	MenuActionUp, MenuActionDown, MenuActionSelect, MenuActionBack, MenuActionScoreboard,
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, a := range menuOrder {
		if key.Matches(msg, km.menu[a]) {
			return a
		}
	}
	return MenuActionNone
}
