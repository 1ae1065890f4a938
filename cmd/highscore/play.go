package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/highscore/internal/games/highscore"
	"github.com/vovakirdan/highscore/internal/platform/tui"
	"github.com/vovakirdan/highscore/internal/registry"
)

var (
	flagName string
	flagSlot string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start a round of High Score. The mode defaults to "highscore", which
continues the field stored in the save slot; "highscore_fresh" starts
from the untouched map.

Controls:
  Arrows/WASD  - Turn and step
  Space/X      - Drill the tile you face
  P/Esc        - Pause
  R            - Restart (after the round ends)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Drills start slow and speed up
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - No progression

Examples:
  highscore play
  highscore play highscore_fresh
  highscore play --slot work --name ann
  highscore play --difficulty hard
  highscore play --config ./my-highscore.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Name offered when the round ends (default $USER)")
	playCmd.Flags().StringVar(&flagSlot, "slot", "", "Save slot (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := highscore.IDResume
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'highscore list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog := localLogger()
	store := openStore()
	configureGame(store, logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if sg, ok := game.(registry.Slotted); ok && flagSlot != "" {
		sg.SetSlot(flagSlot)
	}

	runErr := tui.Run(game, store, terminalConfig(), playerName(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
