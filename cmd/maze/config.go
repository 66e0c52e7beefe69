package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/config"
)

var (
	flagInit  bool
	flagForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
	Long: `Print the configuration in effect and where it was loaded from.

Search order: --config, $MAZE_CONFIG, ~/.escape-maze/configs/maze.yaml,
./configs/maze.yaml, built-in defaults.

With --init the default configuration is written to
~/.escape-maze/configs/maze.yaml for editing.

Examples:
  maze config
  maze config --config ./my-maze.yaml
  maze config --init`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to maze config YAML")
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the default configuration to the user config path")
	configCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file with --init")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagInit {
		return initConfig()
	}

	path := flagConfig
	if path == "" {
		path = env.ConfigPath
	}
	cfg, src, err := config.Load(path)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", src)
	fmt.Print(string(data))
	return nil
}

func initConfig() error {
	path := config.UserConfigPath()
	if path == "" {
		return errors.New("config: home directory unknown")
	}

	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("config: %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
