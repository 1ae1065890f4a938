package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HeaderLines is the number of lines at the top of a save file reserved
// for the leaderboard. The board decoder ignores them.
const HeaderLines = 10

// Entries returns the persisted form of every tile in row-major order.
func (l *Level) Entries() []Entry {
	out := make([]Entry, 0, TileCount)
	l.Each(func(_, _ int, _ TileRef, t Tile) {
		out = append(out, Entry{Kind: int(t.Kind), Freshness: t.Freshness})
	})
	return out
}

// Encode writes one "<kind>,<freshness>" line per tile, row-major, without
// a trailing newline.
func (l *Level) Encode() string {
	return EncodeEntries(l.Entries())
}

// EncodeEntries formats entries the way Encode does.
func EncodeEntries(entries []Entry) string {
	var sb strings.Builder
	sb.Grow(len(entries) * 6)
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(e.Kind))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(float64(e.Freshness), 'g', -1, 32))
	}
	return sb.String()
}

// Decode parses the board section of a save file. The first HeaderLines
// lines are skipped; every remaining line is parsed as "<int>,<float>".
// Lines that do not parse are dropped rather than reported.
func Decode(text string) []Entry {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) <= HeaderLines {
		return nil
	}

	entries := make([]Entry, 0, TileCount)
	for _, line := range lines[HeaderLines:] {
		e, ok := parseEntry(line)
		if !ok {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// parseEntry parses one "<kind>,<freshness>" line.
func parseEntry(line string) (Entry, bool) {
	kindStr, freshStr, found := strings.Cut(strings.TrimSpace(line), ",")
	if !found {
		return Entry{}, false
	}

	kind, err := strconv.Atoi(strings.TrimSpace(kindStr))
	if err != nil {
		return Entry{}, false
	}

	fresh, err := strconv.ParseFloat(strings.TrimSpace(freshStr), 32)
	if err != nil {
		return Entry{}, false
	}

	return Entry{Kind: kind, Freshness: float32(fresh)}, true
}

// ErrBoardSize is returned when a decoded board does not hold TileCount entries.
var ErrBoardSize = errors.New("level: wrong number of board entries")

// Validate checks that entries describe a complete board of known kinds
// with in-range freshness.
func Validate(entries []Entry) error {
	if len(entries) != TileCount {
		return fmt.Errorf("%w: got %d, want %d", ErrBoardSize, len(entries), TileCount)
	}
	for i, e := range entries {
		if !e.Valid() {
			return fmt.Errorf("level: invalid entry %d (kind %d, freshness %g)", i, e.Kind, e.Freshness)
		}
	}
	return nil
}

// FormatSave assembles a save file from header lines and an encoded board.
// The header is truncated or padded with empty lines to HeaderLines.
func FormatSave(header []string, board string) string {
	var sb strings.Builder
	for i := range HeaderLines {
		if i < len(header) {
			sb.WriteString(strings.ReplaceAll(header[i], "\n", " "))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(board)
	return sb.String()
}

// Header returns the header lines of a save file, up to HeaderLines.
func Header(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) > HeaderLines {
		lines = lines[:HeaderLines]
	}
	return lines
}
