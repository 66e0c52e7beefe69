package mazerun

import (
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/config"
)

// Settings are the selections made by the CLI or the menus before a game is
// created. The zero value uses the configuration file as is.
type Settings struct {
	ConfigPath string // YAML file used instead of the search path
	Difficulty string // easy, normal, hard or fixed
	Size       string // small, medium, large or fit
	Width      int    // zero keeps the configured width
	Height     int    // zero keeps the configured height
	StartX     int
	StartY     int
	StartSet   bool
}

// Resolve loads the configuration and applies s for a screen of the given
// size. The result is validated.
func (s Settings) Resolve(screenW, screenH int) (config.MazeConfig, error) {
	cfg, _, err := config.Load(s.ConfigPath)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficultyPreset(s.Difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyDifficultyPreset(&cfg, preset)

	size, err := config.ParseSizePreset(s.Size)
	if err != nil {
		return cfg, err
	}
	config.ApplySizePreset(&cfg, size, screenW, screenH)

	if s.Width != 0 {
		cfg.Grid.Width = s.Width
	}
	if s.Height != 0 {
		cfg.Grid.Height = s.Height
	}
	if s.StartSet {
		cfg.Grid.StartX, cfg.Grid.StartY = s.StartX, s.StartY
	}

	return cfg, cfg.Validate()
}

// current holds the process-wide selections used by games created through
// the registry.
var current Settings

// CurrentSettings returns a copy of the process-wide selections.
func CurrentSettings() Settings {
	return current
}

// SetConfigPath sets a YAML file that must be used instead of the search path.
func SetConfigPath(path string) {
	current.ConfigPath = path
}

// SetDifficultyPreset selects easy, normal, hard or fixed.
func SetDifficultyPreset(preset string) {
	current.Difficulty = preset
}

// DifficultyPreset returns the selected difficulty preset.
func DifficultyPreset() string {
	return current.Difficulty
}

// SetSizePreset selects small, medium, large or fit.
func SetSizePreset(preset string) {
	current.Size = preset
}

// SizePreset returns the selected size preset.
func SizePreset() string {
	return current.Size
}

// SetGridSize overrides the maze size. Zero keeps the configured value.
func SetGridSize(width, height int) {
	current.Width, current.Height = width, height
}

// SetStart overrides the start cell.
func SetStart(x, y int) {
	current.StartX, current.StartY, current.StartSet = x, y, true
}

// ResetSettings clears every selection.
func ResetSettings() {
	current = Settings{}
}

// ResolveConfig resolves the process-wide selections for a screen of the
// given size.
func ResolveConfig(screenW, screenH int) (config.MazeConfig, error) {
	return current.Resolve(screenW, screenH)
}
