package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pixil98/go-errors"

	"github.com/vovakirdan/highscore/internal/games/highscore/level"
)

// BoardStore is the session cache a game reads boards from and writes
// them back to.
type BoardStore interface {
	level.BoardCache
	SaveBoard(slot, board string) error
	DeleteBoard(slot string) error
}

// SlotPath returns the save file for a slot inside dir. Characters outside
// [A-Za-z0-9._-] are replaced so any SSH user name maps to a plain file.
func SlotPath(dir, slot string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return '_'
	}, slot)
	clean = strings.TrimLeft(clean, ".")
	if clean == "" {
		clean = "slot"
	}
	return filepath.Join(dir, clean+".txt")
}

// writeSaveFile writes text to path through a temporary file so a crash
// never leaves a truncated save behind.
func writeSaveFile(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("highscore: creating save directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".save-*")
	if err != nil {
		return fmt.Errorf("highscore: creating temp save: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: writing save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: writing save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("highscore: replacing save %s: %w", path, err)
	}
	return nil
}

// ClearSave deletes the slot's save file and cached board. The next resumed
// round starts from the built-in map with an empty leaderboard.
func (g *Game) ClearSave() error {
	el := errors.NewErrorList()
	if err := os.Remove(g.SavePath()); err != nil && !os.IsNotExist(err) {
		el.Add(fmt.Errorf("highscore: removing save: %w", err))
	}
	if boardStore != nil {
		if err := boardStore.DeleteBoard(g.Slot()); err != nil {
			el.Add(err)
		}
	}
	return el.Err()
}
