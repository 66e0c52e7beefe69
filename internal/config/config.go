// Package config loads the YAML configuration of the maze game and turns
// difficulty and size presets into concrete parameters.
package config

import (
	"fmt"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/maze"
)

// MazeConfig is the full configuration of a maze run.
type MazeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig sets the maze size in cells and the cell the walk starts from.
// The player also starts there.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// EnemyConfig controls the chasing enemies.
type EnemyConfig struct {
	Count            int `yaml:"count"`
	FollowDistance   int `yaml:"follow_distance"`    // path steps
	MoveEvery        int `yaml:"move_every"`         // ticks between steps
	MinSpawnDistance int `yaml:"min_spawn_distance"` // path steps from the start
}

// ScoringConfig defines the score awarded on reaching the exit:
// CellPoints*W*H - MovePenalty*moves - TimePenalty*seconds, at least 1.
type ScoringConfig struct {
	CellPoints  int `yaml:"cell_points"`
	MovePenalty int `yaml:"move_penalty"`
	TimePenalty int `yaml:"time_penalty"`
}

// DifficultyConfig defines how enemies get faster and keener during a run.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the difficulty level up.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time", "moves" or "none"
	MaxAt int    `yaml:"max_at"` // ticks or moves at which the level reaches 1.0
}

// ScalingConfig defines the effect of the difficulty level at 1.0.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // enemy speed grows to base*(1+m)
	FollowBonus     int     `yaml:"follow_bonus"`     // extra follow distance
}

// Validate checks that a maze can be built from the configuration.
// Grid errors wrap the maze package sentinels.
func (c MazeConfig) Validate() error {
	g := c.Grid
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("config: grid %dx%d: %w", g.Width, g.Height, maze.ErrInvalidDimension)
	}
	if g.StartX < 0 || g.StartX >= g.Width || g.StartY < 0 || g.StartY >= g.Height {
		return fmt.Errorf("config: start (%d,%d) outside %dx%d grid: %w",
			g.StartX, g.StartY, g.Width, g.Height, maze.ErrOutOfBounds)
	}

	e := c.Enemies
	switch {
	case e.Count < 0:
		return fmt.Errorf("config: enemies.count must not be negative, got %d", e.Count)
	case e.MoveEvery <= 0:
		return fmt.Errorf("config: enemies.move_every must be positive, got %d", e.MoveEvery)
	case e.FollowDistance < 0 || e.MinSpawnDistance < 0:
		return fmt.Errorf("config: enemy distances must not be negative")
	}

	switch c.Difficulty.Progression.Type {
	case "time", "moves", "none", "":
	default:
		return fmt.Errorf("config: unknown difficulty progression %q", c.Difficulty.Progression.Type)
	}
	return nil
}
