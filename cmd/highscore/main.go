// highscore is a terminal game: drill the terrain of a small wrapping field
// for points before the timer runs out.
//
// Usage:
//
//	highscore list              - List game modes
//	highscore play [mode]       - Play a round
//	highscore menu              - Start menu to pick a mode interactively
//	highscore serve             - Start SSH server for remote play
//	highscore scores [mode]     - Show high scores
//	highscore board             - Inspect a save slot
//	highscore config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.highscore/scores.db)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/highscore/internal/config"
	"github.com/vovakirdan/highscore/internal/core"
	"github.com/vovakirdan/highscore/internal/games/highscore"
	"github.com/vovakirdan/highscore/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSaveDir    string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "highscore",
	Short: "High Score - drill your way to the top of the leaderboard",
	Long: `High Score puts a drill robot on a wrapping 20x20 field of grass,
water, trees and rock. Drill the tile in front of you for points until
the round timer runs out. The field keeps its wear between rounds.

Available commands:
  list     - Show the game modes
  play     - Play a round directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  board    - Inspect or clear a save slot
  config   - Print the default config

Examples:
  highscore play
  highscore play highscore_fresh
  highscore menu
  highscore serve --ssh :2222
  highscore scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.highscore/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagSaveDir, "save-dir", "", "Directory for save slots (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file during local play")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// localLogger returns the logger for terminal play. The terminal belongs to
// the game, so logs only go to --log-file when one is given. The returned
// closer must be called on exit.
func localLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(config.ExpandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	return newLogger(f, "highscore"), func() { f.Close() }
}

// openStore opens the scores database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// configureGame applies the global flags to the game package. It must run
// before any game is created.
func configureGame(store *storage.Store, logger *log.Logger) {
	highscore.SetConfigPath(flagConfig)
	highscore.SetDifficultyPreset(flagDifficulty)
	highscore.SetSaveDir(flagSaveDir)
	if store != nil {
		highscore.SetBoardStore(store)
	}
	highscore.SetLogger(logger)
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// playerName is the name offered at the end-of-round prompt.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	return os.Getenv("USER")
}
