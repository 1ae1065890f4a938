package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/highscore/internal/core"
	"github.com/vovakirdan/highscore/internal/games/highscore"
	"github.com/vovakirdan/highscore/internal/games/highscore/level"
	"github.com/vovakirdan/highscore/internal/storage"
)

var (
	flagBoardSlot  string
	flagBoardFresh bool
	flagBoardList  bool
	flagBoardClear bool
	flagBoardRaw   bool
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Inspect or clear a save slot",
	Long: `Show the board a round in the given slot would start from: where it
was loaded from, the terrain left on it and the slot leaderboard.

Map legend: g grass, w water, t tree, r rock, _ flattened rock.
Upper case marks tiles that are still fresh.

Examples:
  highscore board
  highscore board --slot ssh-ann
  highscore board --list
  highscore board --raw > backup.txt
  highscore board --slot work --clear`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().StringVar(&flagBoardSlot, "slot", "", "Save slot (default from config)")
	boardCmd.Flags().BoolVar(&flagBoardFresh, "fresh", false, "Use the fresh-mode slot")
	boardCmd.Flags().BoolVar(&flagBoardList, "list", false, "List slots cached in the database")
	boardCmd.Flags().BoolVar(&flagBoardClear, "clear", false, "Delete the slot's save file and cached board")
	boardCmd.Flags().BoolVar(&flagBoardRaw, "raw", false, "Print the slot in save-file format")
}

func runBoard(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if flagBoardList {
		listBoards(store)
		return
	}

	logger := newLogger(os.Stderr, "highscore")
	configureGame(store, logger)

	game := highscore.New()
	if flagBoardFresh {
		game = highscore.NewFresh()
	}
	if flagBoardSlot != "" {
		game.SetSlot(flagBoardSlot)
	}
	game.Reset(core.DefaultConfig())

	if flagBoardClear {
		if err := game.ClearSave(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing slot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared slot %q\n", game.Slot())
		return
	}

	if flagBoardRaw {
		fmt.Print(highscore.EncodeSave(game.Board(), game.Leaderboard()))
		return
	}

	printBoard(game)
}

func listBoards(store *storage.Store) {
	if store == nil {
		os.Exit(1)
	}
	boards, err := store.Boards()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing slots: %v\n", err)
		os.Exit(1)
	}
	if len(boards) == 0 {
		fmt.Println("No boards cached yet.")
		return
	}

	fmt.Printf("  %-24s  %s\n", "Slot", "Updated")
	fmt.Printf("  %-24s  %s\n", "----", "-------")
	for _, b := range boards {
		fmt.Printf("  %-24s  %s\n", b.Slot, b.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func printBoard(game *highscore.Game) {
	board := game.Board()
	snap := game.Snapshot()

	fmt.Printf("Slot:   %s (%s)\n", snap.Slot, snap.Mode)
	fmt.Printf("Source: %s\n", snap.Source)
	fmt.Printf("File:   %s\n", game.SavePath())
	fmt.Printf("Centre: %s, facing %s at %.0f%%\n", snap.CenterKind, snap.FacingKind, 100*snap.FacingFresh)
	fmt.Println()

	for row := range level.Size {
		var sb strings.Builder
		sb.WriteString("  ")
		for col := range level.Size {
			sb.WriteRune(tileLetter(board.Tile(board.At(row, col))))
		}
		fmt.Println(sb.String())
	}
	fmt.Println()

	type kindStats struct {
		count int
		fresh float64
	}
	stats := map[level.Kind]*kindStats{}
	for _, t := range board.Tiles() {
		s, ok := stats[t.Kind]
		if !ok {
			s = &kindStats{}
			stats[t.Kind] = s
		}
		s.count++
		s.fresh += float64(t.Freshness)
	}
	for _, kind := range []level.Kind{level.KindGrass, level.KindWater, level.KindTree, level.KindRock} {
		s, ok := stats[kind]
		if !ok {
			continue
		}
		fmt.Printf("  %-6s %4d tiles, %3.0f%% fresh\n", kind, s.count, 100*s.fresh/float64(s.count))
	}

	lb := game.Leaderboard()
	fmt.Println()
	if len(lb) == 0 {
		fmt.Println("No scores in this slot yet.")
		return
	}
	fmt.Println("Slot leaderboard:")
	for i, e := range lb {
		fmt.Printf("  %2d. %-12s %d\n", i+1, e.Name, e.Score)
	}
}

// tileLetter returns the map letter for a tile.
func tileLetter(t level.Tile) rune {
	var r rune
	switch t.Kind {
	case level.KindGrass:
		r = 'g'
	case level.KindWater:
		r = 'w'
	case level.KindTree:
		r = 't'
	case level.KindRock:
		if t.CanWalk {
			return '_'
		}
		r = 'r'
	default:
		return ' '
	}
	if t.Freshness >= 0.5 {
		r = unicode.ToUpper(r)
	}
	return r
}
