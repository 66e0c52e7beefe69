package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvMissingFile(t *testing.T) {
	for _, k := range []string{EnvDBPath, EnvConfigPath, EnvSSHAddr, EnvHostKey} {
		t.Setenv(k, "")
	}

	env, err := LoadEnv(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultEnv(), env)
}

func TestLoadEnvFromFile(t *testing.T) {
	// Registered with t.Setenv so the values loaded below are restored.
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvSSHAddr, ":4000")
	t.Setenv(EnvHostKey, "")
	os.Unsetenv(EnvDBPath)
	os.Unsetenv(EnvConfigPath)
	os.Unsetenv(EnvHostKey)

	path := filepath.Join(t.TempDir(), "test.env")
	content := "MAZE_DB=/tmp/maze.db\nMAZE_CONFIG=/etc/maze.yaml\nMAZE_SSH_ADDR=:9999\nMAZE_HOST_KEY=/tmp/key\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	env, err := LoadEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/maze.db", env.DBPath)
	assert.Equal(t, "/etc/maze.yaml", env.ConfigPath)
	assert.Equal(t, ":4000", env.SSHAddr, "process environment wins over the file")
	assert.Equal(t, "/tmp/key", env.HostKeyPath)
}
