// Package config provides YAML-based configuration loading, validation and
// difficulty management for High Score.
package config

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// HighScoreConfig contains all configuration for the High Score game.
type HighScoreConfig struct {
	Scoring    ScoringConfig    `yaml:"scoring"`
	Drill      DrillConfig      `yaml:"drill"`
	Move       MoveConfig       `yaml:"move"`
	Round      RoundConfig      `yaml:"round"`
	Board      BoardConfig      `yaml:"board"`
	Save       SaveConfig       `yaml:"save"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScoringConfig defines the points awarded per drilled tile kind.
type ScoringConfig struct {
	Grass int `yaml:"grass"`
	Water int `yaml:"water"`
	Tree  int `yaml:"tree"`
	Rock  int `yaml:"rock"`
}

// DrillConfig defines the drill action.
type DrillConfig struct {
	Amount      float64 `yaml:"amount"`       // Freshness removed from the faced tile
	WaterAmount float64 `yaml:"water_amount"` // Freshness removed from every water tile when drilling water
	Seconds     float64 `yaml:"seconds"`      // Time the player is locked while drilling
}

// MoveConfig defines player stepping.
type MoveConfig struct {
	Seconds float64 `yaml:"seconds"` // Duration of one step before the board scrolls
}

// RoundConfig defines the length of a round.
type RoundConfig struct {
	Seconds float64 `yaml:"seconds"`
}

// BoardConfig defines how the board is shown.
type BoardConfig struct {
	SpotlightRadius float64 `yaml:"spotlight_radius"` // In cells; 0 shows the whole board
	CellWidth       int     `yaml:"cell_width"`       // Terminal columns per tile
}

// SaveConfig defines where boards and leaderboards are persisted.
type SaveConfig struct {
	Dir  string `yaml:"dir"`  // Directory for slot files; "~" expands to home
	Slot string `yaml:"slot"` // Default slot for local play
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DrillSlowdown  float64 `yaml:"drill_slowdown"`  // Fraction added to drill time at max difficulty
	DrillWeakening float64 `yaml:"drill_weakening"` // Fraction removed from drill amount at max difficulty
}

// PointsFor returns the score value of a tile kind name. Unknown kinds,
// including air, are worth nothing.
func (s ScoringConfig) PointsFor(kind string) int {
	switch kind {
	case "grass":
		return s.Grass
	case "water":
		return s.Water
	case "tree":
		return s.Tree
	case "rock":
		return s.Rock
	default:
		return 0
	}
}

// Validate reports every problem with the configuration at once.
func (c HighScoreConfig) Validate() error {
	el := errors.NewErrorList()

	for name, pts := range map[string]int{
		"grass": c.Scoring.Grass,
		"water": c.Scoring.Water,
		"tree":  c.Scoring.Tree,
		"rock":  c.Scoring.Rock,
	} {
		if pts < 0 {
			el.Add(fmt.Errorf("scoring.%s must not be negative", name))
		}
	}

	if c.Drill.Amount <= 0 || c.Drill.Amount > 1 {
		el.Add(fmt.Errorf("drill.amount must be in (0, 1], got %g", c.Drill.Amount))
	}
	if c.Drill.WaterAmount < 0 || c.Drill.WaterAmount > 1 {
		el.Add(fmt.Errorf("drill.water_amount must be in [0, 1], got %g", c.Drill.WaterAmount))
	}
	if c.Drill.Seconds < 0 {
		el.Add(fmt.Errorf("drill.seconds must not be negative"))
	}
	if c.Move.Seconds < 0 {
		el.Add(fmt.Errorf("move.seconds must not be negative"))
	}
	if c.Round.Seconds <= 0 {
		el.Add(fmt.Errorf("round.seconds must be positive"))
	}
	if c.Board.SpotlightRadius < 0 {
		el.Add(fmt.Errorf("board.spotlight_radius must not be negative"))
	}
	if c.Board.CellWidth < 1 || c.Board.CellWidth > 4 {
		el.Add(fmt.Errorf("board.cell_width must be between 1 and 4, got %d", c.Board.CellWidth))
	}
	if c.Save.Slot == "" {
		el.Add(fmt.Errorf("save.slot is required"))
	}

	el.Add(c.Difficulty.validate())

	return el.Err()
}

func (d DifficultyConfig) validate() error {
	el := errors.NewErrorList()

	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		el.Add(fmt.Errorf("difficulty.initial_level must be in [0, 1], got %g", d.InitialLevel))
	}
	switch d.Progression.Type {
	case "score", "time", "none", "":
	default:
		el.Add(fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", d.Progression.Type))
	}
	if d.Scaling.DrillWeakening < 0 || d.Scaling.DrillWeakening >= 1 {
		el.Add(fmt.Errorf("difficulty.scaling.drill_weakening must be in [0, 1)"))
	}
	if d.Scaling.DrillSlowdown < 0 {
		el.Add(fmt.Errorf("difficulty.scaling.drill_slowdown must not be negative"))
	}

	return el.Err()
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a flag value to a preset. The empty string means
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
