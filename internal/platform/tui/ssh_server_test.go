package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func testServerConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	dir := t.TempDir()
	return SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "keys", "host_ed25519"),
		DBPath:      filepath.Join(dir, "scores.db"),
		IdleTimeout: time.Minute,
		TickRate:    30,
	}
}

func TestSSHServerShutdownClosesStore(t *testing.T) {
	srv, err := NewSSHServer(testServerConfig(t), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.store == nil {
		t.Fatal("store should be open after creation")
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if srv.store != nil {
		t.Error("store should be closed after shutdown")
	}
}

func TestSSHServerNeedsHostKey(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.HostKeyPath = ""
	if _, err := NewSSHServer(cfg, log.New(io.Discard)); err == nil {
		t.Error("expected an error for an empty host key path")
	}
}
