package config

import (
	_ "embed"
)

//go:embed defaults/highscore.yaml
var defaultHighScoreYAML []byte

// DefaultHighScoreConfig returns the default High Score configuration.
func DefaultHighScoreConfig() HighScoreConfig {
	return HighScoreConfig{
		Scoring: ScoringConfig{
			Grass: 1,
			Water: 2,
			Tree:  3,
			Rock:  5,
		},
		Drill: DrillConfig{
			Amount:      0.1,
			WaterAmount: 0.02,
			Seconds:     0.5,
		},
		Move: MoveConfig{
			Seconds: 0.15,
		},
		Round: RoundConfig{
			Seconds: 120,
		},
		Board: BoardConfig{
			SpotlightRadius: 5,
			CellWidth:       2,
		},
		Save: SaveConfig{
			Dir:  "~/.highscore/saves",
			Slot: "local",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				DrillSlowdown:  1.0,
				DrillWeakening: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "highscore", "highscore_fresh":
		return defaultHighScoreYAML
	default:
		return nil
	}
}
