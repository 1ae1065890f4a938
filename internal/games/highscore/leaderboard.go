package highscore

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/highscore/internal/games/highscore/level"
)

// LeaderboardSize is the number of entries kept in a save file header.
const LeaderboardSize = level.HeaderLines

// LeaderboardEntry is one named score in a save file header.
type LeaderboardEntry struct {
	Name  string
	Score int
}

// DecodeLeaderboard reads the "<name>,<score>" lines of a save file
// header. Empty or malformed lines are skipped. The result is sorted by
// score, highest first.
func DecodeLeaderboard(text string) []LeaderboardEntry {
	var out []LeaderboardEntry
	for _, line := range level.Header(text) {
		line = strings.TrimSpace(line)
		i := strings.LastIndexByte(line, ',')
		if i <= 0 {
			continue
		}
		score, err := strconv.Atoi(strings.TrimSpace(line[i+1:]))
		if err != nil {
			continue
		}
		out = append(out, LeaderboardEntry{Name: strings.TrimSpace(line[:i]), Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	return out
}

// InsertScore places e into a sorted leaderboard below any equal scores
// and trims it to LeaderboardSize. rank is e's zero-based position, or -1
// if it did not make the board.
func InsertScore(lb []LeaderboardEntry, e LeaderboardEntry) ([]LeaderboardEntry, int) {
	pos := sort.Search(len(lb), func(i int) bool {
		return lb[i].Score < e.Score
	})

	out := make([]LeaderboardEntry, 0, len(lb)+1)
	out = append(out, lb[:pos]...)
	out = append(out, e)
	out = append(out, lb[pos:]...)

	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	if pos >= LeaderboardSize {
		return out, -1
	}
	return out, pos
}

// EncodeSave builds a complete save file: the leaderboard as header lines
// followed by the encoded board.
func EncodeSave(board *level.Level, lb []LeaderboardEntry) string {
	header := make([]string, 0, LeaderboardSize)
	for i, e := range lb {
		if i == LeaderboardSize {
			break
		}
		header = append(header, fmt.Sprintf("%s,%d", e.Name, e.Score))
	}
	return level.FormatSave(header, board.Encode())
}
