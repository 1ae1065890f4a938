package config

import (
	"math"

	"github.com/vovakirdan/highscore/internal/core"
)

// DifficultyManager scales the drill as a round goes on. Level rises from
// the initial level to 1.0 with score or elapsed ticks, and the drill gets
// slower and weaker with it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// DrillTicks returns how long a drill locks the player. It grows from
// base to base * (1 + drill_slowdown) as difficulty rises. A positive base
// never drops below one tick.
func (d *DifficultyManager) DrillTicks(base int, score int, ticks int) int {
	if base <= 0 {
		return 0
	}
	level := d.Level(score, ticks)
	return max(1, int(math.Round(float64(base)*(1.0+level*d.cfg.Scaling.DrillSlowdown))))
}

// DrillAmount returns the freshness a drill removes. It shrinks from base
// to base * (1 - drill_weakening) as difficulty rises.
func (d *DifficultyManager) DrillAmount(base float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return base * (1.0 - level*core.ClampF(d.cfg.Scaling.DrillWeakening, 0.0, 1.0))
}
