package config

import (
	"fmt"
	"strings"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/maze"
)

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // no progression
)

// DifficultyPresets lists the presets in menu order.
var DifficultyPresets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficultyPreset validates a preset name. An empty name means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(s))
	for _, known := range DifficultyPresets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the starting difficulty level of a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyDifficultyPreset adjusts progression and enemy pressure for a preset.
func ApplyDifficultyPreset(cfg *MazeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Count = max(cfg.Enemies.Count-1, 1)
		cfg.Enemies.MoveEvery += cfg.Enemies.MoveEvery / 2
	case DifficultyHard:
		cfg.Enemies.Count++
		cfg.Enemies.FollowDistance += 2
	}
}

// SizePreset is a named maze size.
type SizePreset string

const (
	SizeSmall  SizePreset = "small"
	SizeMedium SizePreset = "medium"
	SizeLarge  SizePreset = "large"
	SizeFit    SizePreset = "fit" // as large as the terminal allows without scrolling
)

// SizePresets lists the presets in menu order.
var SizePresets = []SizePreset{SizeSmall, SizeMedium, SizeLarge, SizeFit}

// ParseSizePreset validates a size name. An empty name keeps the configured size.
func ParseSizePreset(s string) (SizePreset, error) {
	if s == "" {
		return "", nil
	}
	p := SizePreset(strings.ToLower(s))
	for _, known := range SizePresets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown size %q (use small, medium, large or fit)", s)
}

// hudRows is the number of screen rows reserved for the status line.
const hudRows = 1

// FitSize returns the largest maze whose rendering fits a screen of the given size.
func FitSize(screenW, screenH int) (w, h int) {
	w = (screenW - 1) / maze.CellCols
	h = (screenH - hudRows - 1) / maze.CellRows
	return max(w, 2), max(h, 2)
}

// ApplySizePreset sets the grid size for a preset and pulls the start cell
// back inside the new bounds.
func ApplySizePreset(cfg *MazeConfig, preset SizePreset, screenW, screenH int) {
	switch preset {
	case SizeSmall:
		cfg.Grid.Width, cfg.Grid.Height = 10, 6
	case SizeMedium:
		cfg.Grid.Width, cfg.Grid.Height = 20, 12
	case SizeLarge:
		cfg.Grid.Width, cfg.Grid.Height = 40, 24
	case SizeFit:
		cfg.Grid.Width, cfg.Grid.Height = FitSize(screenW, screenH)
	default:
		return
	}
	cfg.Grid.StartX = min(cfg.Grid.StartX, cfg.Grid.Width-1)
	cfg.Grid.StartY = min(cfg.Grid.StartY, cfg.Grid.Height-1)
}
