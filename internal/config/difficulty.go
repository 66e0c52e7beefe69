package config

import "math"

// DifficultyManager derives enemy parameters from the progress of a run.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for the given configuration.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the starting level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0, 1)
}

// IsEnabled reports whether the level changes during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Level returns the current level in [0, 1] after the given number of
// player moves and ticks.
func (d *DifficultyManager) Level(moves, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "time":
		progress = float64(ticks) / maxAt
	case "moves":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0, 1)
	return d.initialLevel + progress*(1-d.initialLevel)
}

// MoveInterval returns the ticks between enemy steps. It shrinks from base
// to base/(1+SpeedMultiplier) as the level rises, never below one tick.
func (d *DifficultyManager) MoveInterval(base, moves, ticks int) int {
	speed := 1 + d.Level(moves, ticks)*d.cfg.Scaling.SpeedMultiplier
	if speed <= 0 {
		speed = 1
	}
	return max(int(math.Round(float64(base)/speed)), 1)
}

// FollowDistance returns how close the player must be, in path steps, for
// an enemy to start chasing.
func (d *DifficultyManager) FollowDistance(base, moves, ticks int) int {
	bonus := int(math.Round(d.Level(moves, ticks) * float64(d.cfg.Scaling.FollowBonus)))
	return base + bonus
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
