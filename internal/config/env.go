package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvDBPath     = "MAZE_DB"
	EnvConfigPath = "MAZE_CONFIG"
	EnvSSHAddr    = "MAZE_SSH_ADDR"
	EnvHostKey    = "MAZE_HOST_KEY"
)

// Env holds process-level settings that flags fall back to.
type Env struct {
	DBPath      string
	ConfigPath  string
	SSHAddr     string
	HostKeyPath string
}

// LoadEnv loads the given dotenv files (".env" when none are given) into the
// process environment and reads the MAZE_* variables. Missing files are
// ignored; variables already set in the environment win over file values.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return DefaultEnv(), fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	env := DefaultEnv()
	if v := os.Getenv(EnvDBPath); v != "" {
		env.DBPath = v
	}
	if v := os.Getenv(EnvConfigPath); v != "" {
		env.ConfigPath = v
	}
	if v := os.Getenv(EnvSSHAddr); v != "" {
		env.SSHAddr = v
	}
	if v := os.Getenv(EnvHostKey); v != "" {
		env.HostKeyPath = v
	}
	return env, nil
}

// DefaultEnv returns the settings used when no variable is set.
func DefaultEnv() Env {
	return Env{
		DBPath:      DefaultDBPath(),
		SSHAddr:     ":2222",
		HostKeyPath: ".ssh/maze_host_ed25519",
	}
}

// DefaultDBPath returns ~/.escape-maze/scores.db, or a local file when the
// home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "maze_scores.db"
	}
	return filepath.Join(home, ".escape-maze", "scores.db")
}
