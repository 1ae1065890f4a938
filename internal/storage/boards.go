package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoBoard is returned by LoadBoard when a slot has no cached board.
var ErrNoBoard = errors.New("storage: no board cached for slot")

// BoardInfo describes a cached board without its contents.
type BoardInfo struct {
	Slot      string
	UpdatedAt time.Time
}

// SaveBoard stores the board text for a slot, replacing any previous one.
// The text uses the save-file layout.
func (s *Store) SaveBoard(slot, board string) error {
	_, err := s.db.Exec(
		`INSERT INTO boards (slot, board, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET board = excluded.board, updated_at = excluded.updated_at`,
		slot, board,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save board %q: %w", slot, err)
	}
	return nil
}

// LoadBoard returns the board text cached for a slot, or ErrNoBoard.
func (s *Store) LoadBoard(slot string) (string, error) {
	var board string
	err := s.db.QueryRow("SELECT board FROM boards WHERE slot = ?", slot).Scan(&board)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoBoard
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot load board %q: %w", slot, err)
	}
	return board, nil
}

// DeleteBoard removes the cached board for a slot. Deleting a missing slot
// is not an error.
func (s *Store) DeleteBoard(slot string) error {
	if _, err := s.db.Exec("DELETE FROM boards WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete board %q: %w", slot, err)
	}
	return nil
}

// Boards lists every cached slot, most recently updated first.
func (s *Store) Boards() ([]BoardInfo, error) {
	rows, err := s.db.Query("SELECT slot, updated_at FROM boards ORDER BY updated_at DESC, slot ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list boards: %w", err)
	}
	defer rows.Close()

	var out []BoardInfo
	for rows.Next() {
		var info BoardInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan board row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		out = append(out, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}
