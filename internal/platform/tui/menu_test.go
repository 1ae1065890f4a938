package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pixil98/go-testutil"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuSelectsGame(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("stub", "ann", 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, testCfg)
	view := m.View()
	if !strings.Contains(view, "Stub") || !strings.Contains(view, "(best 12)") {
		t.Errorf("menu missing game line:\n%s", view)
	}

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil {
		t.Fatal("enter selected nothing")
	}
	testutil.AssertEqual(t, "selected", m.Selected().GameID, "stub")
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := updateMenu(t, NewMenuModel(nil, testCfg), tea.KeyMsg{Type: tea.KeyTab})
	testutil.AssertEqual(t, "scoreboard", m.WantsScoreboard(), true)

	m = updateMenu(t, NewMenuModel(nil, testCfg), tea.KeyMsg{Type: tea.KeyEsc})
	testutil.AssertEqual(t, "quit", m.IsQuitting(), true)
	testutil.AssertEqual(t, "empty view", m.View(), "")
}

func TestMenuResize(t *testing.T) {
	m := updateMenu(t, NewMenuModel(nil, testCfg), tea.WindowSizeMsg{Width: 120, Height: 40})

	testutil.AssertEqual(t, "width", m.Config().ScreenW, 120)
	testutil.AssertEqual(t, "height", m.Config().ScreenH, 40)
}
