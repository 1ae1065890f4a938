package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/highscore/internal/platform/tui"
	"github.com/vovakirdan/highscore/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start High Score in interactive menu mode.

Use arrow keys or WASD to navigate, Enter to select a mode, Tab for the
scoreboard. After a round you return to the menu.

Controls:
  Up/Down      - Navigate menu
  Enter        - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  highscore menu
  highscore menu --fps 30
  highscore menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagName, "name", "", "Name offered when a round ends (default $USER)")
	menuCmd.Flags().StringVar(&flagSlot, "slot", "", "Save slot (default from config)")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := localLogger()
	defer closeLog()

	store := openStore()
	configureGame(store, logger)

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if sg, ok := game.(registry.Slotted); ok && flagSlot != "" {
			sg.SetSlot(flagSlot)
		}

		if err := tui.Run(game, store, cfg, playerName(), logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
