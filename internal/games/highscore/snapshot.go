package highscore

import "github.com/vovakirdan/highscore/internal/games/highscore/level"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateMoving      GameStateType = "moving"
	StateDrilling    GameStateType = "drilling"
	StatePaused      GameStateType = "paused"
	StateTimeUp      GameStateType = "time_up"
	StateFinished    GameStateType = "finished"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string // "resume" or "fresh"
	Slot        string
	Source      string
	Score       int
	TicksLeft   int
	Steps       int
	Drills      int
	Facing      level.Vec
	CenterKind  level.Kind
	FacingKind  level.Kind
	FacingFresh float32
	Rank        int // -1 until a finished round makes the leaderboard
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.finished:
		state = StateFinished
	case g.gameOver:
		state = StateTimeUp
	case g.paused:
		state = StatePaused
	case g.drilling:
		state = StateDrilling
	case g.moving:
		state = StateMoving
	}

	s := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Slot:      g.Slot(),
		Source:    g.source,
		Score:     g.score,
		TicksLeft: g.ticksLeft,
		Steps:     g.steps,
		Drills:    g.drills,
		Facing:    g.facing,
		Rank:      g.rank,
		State:     state,
	}
	if g.board != nil {
		s.CenterKind = g.board.Tile(g.board.CenterRef()).Kind
		facing := g.board.Tile(g.board.ResolveTile(g.facing))
		s.FacingKind = facing.Kind
		s.FacingFresh = facing.Freshness
	}
	return s
}
