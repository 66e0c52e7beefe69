package config

import _ "embed"

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in configuration used when no YAML
// source can be read.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 12,
		},
		Enemies: EnemyConfig{
			Count:            3,
			FollowDistance:   6,
			MoveEvery:        12,
			MinSpawnDistance: 8,
		},
		Scoring: ScoringConfig{
			CellPoints:  10,
			MovePenalty: 1,
			TimePenalty: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 5400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
				FollowBonus:     4,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
