// Package highscore implements the High Score game: a robot stands on the
// centre of a wrapping 20x20 field and drills the terrain around it for
// points before the round timer runs out. The board keeps its wear between
// rounds through a save slot.
package highscore

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pixil98/go-errors"

	"github.com/vovakirdan/highscore/internal/config"
	"github.com/vovakirdan/highscore/internal/core"
	"github.com/vovakirdan/highscore/internal/games/highscore/level"
	"github.com/vovakirdan/highscore/internal/registry"
)

// Mode selects where a round's board comes from.
type Mode string

const (
	ModeResume Mode = "resume" // Continue the board stored in the save slot
	ModeFresh  Mode = "fresh"  // Always start from the built-in map
)

// Game IDs registered with the platform.
const (
	IDResume = "highscore"
	IDFresh  = "highscore_fresh"
)

// freshSlotSuffix keeps fresh-mode saves apart from the resumable board.
const freshSlotSuffix = ".fresh"

// Package-level settings, configured once by the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	saveDirOverride  string
	boardStore       BoardStore
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetSaveDir overrides the save directory from the config.
func SetSaveDir(dir string) {
	saveDirOverride = dir
}

// SetBoardStore sets the session cache used to resume and persist boards.
func SetBoardStore(s BoardStore) {
	boardStore = s
}

// SetLogger sets the logger for load and save diagnostics.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the High Score game logic.
type Game struct {
	mode Mode
	slot string // Save slot; empty means the configured default

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.HighScoreConfig
	difficulty *config.DifficultyManager

	// Board
	board  *level.Level
	source string // Provider the board was loaded from

	// Player
	facing   level.Vec
	moving   bool
	drilling bool
	steps    int
	drills   int

	// Round
	sched      Scheduler
	tick       uint64
	score      int
	ticksLeft  int
	roundTicks int
	lastEvent  string

	// Persistence
	leaderboard []LeaderboardEntry
	rank        int
	finished    bool

	// State flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game that resumes the board from its save slot.
func New() *Game {
	return &Game{mode: ModeResume, rank: -1}
}

// NewFresh creates a game that always starts from the built-in map.
func NewFresh() *Game {
	return &Game{mode: ModeFresh, rank: -1}
}

func init() {
	registry.Register(IDResume, func() registry.Game {
		return New()
	})
	registry.Register(IDFresh, func() registry.Game {
		return NewFresh()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFresh {
		return IDFresh
	}
	return IDResume
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFresh {
		return "High Score (Fresh Field)"
	}
	return "High Score"
}

// Blurb describes the mode for menus.
func (g *Game) Blurb() string {
	if g.mode == ModeFresh {
		return "Start over on an untouched field."
	}
	return "Continue your field where the last round left it."
}

// SetSlot selects the save slot for this game. It takes effect on the next
// Reset.
func (g *Game) SetSlot(slot string) {
	g.slot = slot
}

// Slot returns the save slot in use, including the fresh-mode suffix.
func (g *Game) Slot() string {
	slot := g.slot
	if slot == "" {
		slot = g.cfg.Save.Slot
	}
	if slot == "" {
		slot = config.DefaultHighScoreConfig().Save.Slot
	}
	if g.mode == ModeFresh {
		slot += freshSlotSuffix
	}
	return slot
}

// SavePath returns the save file of the current slot.
func (g *Game) SavePath() string {
	dir := saveDirOverride
	if dir == "" {
		dir = g.cfg.Save.Dir
	}
	return SlotPath(config.ExpandHome(dir), g.Slot())
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadHighScore(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultHighScoreConfig()
	}
	config.ApplyHighScorePreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.loadBoard()

	g.facing = level.South
	g.moving = false
	g.drilling = false
	g.steps = 0
	g.drills = 0

	g.sched.Reset()
	g.tick = 0
	g.score = 0
	g.roundTicks = max(1, runtime.Ticks(cfg.Round.Seconds))
	g.ticksLeft = g.roundTicks
	g.lastEvent = ""

	g.rank = -1
	g.finished = false

	g.gameOver = false
	g.paused = false
	g.tooSmall = runtime.ScreenW < minScreenW(cfg.Board.CellWidth) || runtime.ScreenH < minScreenH
}

// loadBoard picks the board for the round and reads the slot leaderboard.
func (g *Game) loadBoard() {
	path := g.SavePath()
	slot := g.Slot()

	saved := g.savedText(path, slot)
	g.leaderboard = DecodeLeaderboard(saved)

	if g.mode == ModeFresh {
		g.board = level.Default()
		g.source = level.BuiltinProvider{}.Name()
		return
	}

	providers := []level.Provider{level.FileProvider{Path: path}}
	if boardStore != nil {
		providers = append(providers, level.SessionProvider{Cache: boardStore, Slot: slot})
	}
	providers = append(providers, level.BuiltinProvider{})

	res := level.Load(providers...)
	for _, err := range res.Rejected {
		logger.Debug("board source rejected", "slot", slot, "err", err)
	}
	if len(res.Rejected) > 0 && res.Source == (level.BuiltinProvider{}).Name() {
		logger.Info("no saved board, starting from the built-in map", "slot", slot)
	}
	g.board = res.Level
	g.source = res.Source
}

// savedText returns the save file text for the leaderboard, preferring the
// file and falling back to the session cache.
func (g *Game) savedText(path, slot string) string {
	if data, err := os.ReadFile(path); err == nil {
		return string(data)
	}
	if boardStore != nil {
		if text, err := boardStore.LoadBoard(slot); err == nil {
			return text
		}
	}
	return ""
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.sched.Advance()

	g.ticksLeft--
	if g.ticksLeft <= 0 {
		g.ticksLeft = 0
		g.endRound()
		return core.StepResult{State: g.State()}
	}

	if !g.moving && !g.drilling {
		g.processInput(input)
	}

	return core.StepResult{State: g.State()}
}

// processInput handles one action per tick. Drilling wins over moving.
func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionDrill) {
		g.drill()
		return
	}

	switch {
	case input.Has(core.ActionUp):
		g.move(level.North)
	case input.Has(core.ActionDown):
		g.move(level.South)
	case input.Has(core.ActionLeft):
		g.move(level.West)
	case input.Has(core.ActionRight):
		g.move(level.East)
	}
}

// move turns the player toward dir and, if the tile there is walkable,
// starts a step. The board scrolls when the step completes.
func (g *Game) move(dir level.Vec) {
	g.facing = dir
	if !g.board.CanMove(dir) {
		return
	}

	g.moving = true
	g.later(g.runtime.Ticks(g.cfg.Move.Seconds), func() {
		g.board.Scroll(dir.Neg())
		g.moving = false
		g.steps++
	})
}

// drill wears down the faced tile and scores it if freshness remains.
// The player stays locked until the drill finishes.
func (g *Game) drill() {
	g.drilling = true
	g.drills++

	ref := g.board.ResolveTile(g.facing)
	kind := g.board.Tile(ref).Kind
	amount := g.difficulty.DrillAmount(g.cfg.Drill.Amount, g.score, int(g.tick))

	if kind == level.KindWater {
		g.board.BroadcastWater(-g.cfg.Drill.WaterAmount)
	} else {
		g.board.ApplyFreshness(ref, -amount)
	}

	if g.board.Tile(ref).Freshness > 0 {
		pts := g.cfg.Scoring.PointsFor(kind.String())
		g.score += pts
		g.lastEvent = fmt.Sprintf("%s +%d", kind, pts)
	} else {
		g.lastEvent = fmt.Sprintf("%s is spent", kind)
	}

	base := g.runtime.Ticks(g.cfg.Drill.Seconds)
	g.later(g.difficulty.DrillTicks(base, g.score, int(g.tick)), func() {
		g.drilling = false
	})
}

// later runs fn after ticks, or immediately when ticks is not positive.
func (g *Game) later(ticks int, fn func()) {
	if ticks <= 0 {
		fn()
		return
	}
	g.sched.After(ticks, fn)
}

// endRound stops play. Pending steps and drills are dropped.
func (g *Game) endRound() {
	g.gameOver = true
	g.sched.Reset()
	g.moving = false
	g.drilling = false
	g.lastEvent = "time's up"
}

// Finish records the player's name once the round is over: it updates the
// slot leaderboard and writes the board back to the save file and the
// session cache. Calling it again for the same round does nothing.
func (g *Game) Finish(name string) error {
	if !g.gameOver {
		return fmt.Errorf("highscore: round still running")
	}
	if g.finished {
		return nil
	}
	g.finished = true

	lb, rank := InsertScore(g.leaderboard, LeaderboardEntry{Name: core.NormalizeName(name), Score: g.score})
	g.leaderboard = lb
	g.rank = rank

	text := EncodeSave(g.board, lb)

	el := errors.NewErrorList()
	path := g.SavePath()
	if err := writeSaveFile(path, text); err != nil {
		el.Add(err)
	} else {
		logger.Debug("board saved", "path", path)
	}
	if boardStore != nil {
		if err := boardStore.SaveBoard(g.Slot(), text); err != nil {
			el.Add(fmt.Errorf("highscore: caching board: %w", err))
		}
	}

	return el.Err()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board returns the level being played.
func (g *Game) Board() *level.Level {
	return g.board
}

// Source returns the name of the provider the board was loaded from.
func (g *Game) Source() string {
	return g.source
}

// Leaderboard returns a copy of the slot leaderboard.
func (g *Game) Leaderboard() []LeaderboardEntry {
	return append([]LeaderboardEntry(nil), g.leaderboard...)
}
