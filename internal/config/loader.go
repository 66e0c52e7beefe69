package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file in every search location.
const FileName = "maze.yaml"

// Source names where a configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load reads the maze configuration.
// Search order: customPath -> ~/.escape-maze/configs/maze.yaml ->
// ./configs/maze.yaml -> embedded default -> DefaultMazeConfig.
//
// A custom path must exist and be valid. Other locations are skipped when
// missing or invalid. Files may be partial; unset keys keep their defaults.
func Load(customPath string) (MazeConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultMazeConfig(), SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if p := UserConfigPath(); p != "" {
		if cfg, err := loadFile(p); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, SourceLocal, nil
	}

	if cfg, err := Parse(defaultMazeYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultMazeConfig(), SourceBuiltin, nil
}

// Parse decodes YAML on top of DefaultMazeConfig and validates the result.
func Parse(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (MazeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MazeConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns ~/.escape-maze/configs/maze.yaml, or "" when the
// home directory is unknown.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".escape-maze", "configs", FileName)
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg MazeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
