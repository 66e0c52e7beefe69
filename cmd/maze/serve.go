package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the mode picker menu. Runs are
recorded under the SSH user name and all users share the same leaderboard.

Host key handling:
  - --host-key, else $MAZE_HOST_KEY, else .ssh/maze_host_ed25519
  - The key is generated on first start if the file does not exist

Examples:
  maze serve                           # Listen on $MAZE_SSH_ADDR or :2222
  maze serve --ssh :2323               # Listen on port 2323
  maze serve --host-key ./my_host_key  # Use specific host key
  maze serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	RunE: runServe,
}

func init() {
	addMazeFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default $MAZE_SSH_ADDR or :2222)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	applyMazeFlags(cmd)

	cfg := tui.DefaultSSHServerConfig(env)
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting maze SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
