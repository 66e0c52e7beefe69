// maze carves random mazes and lets you escape them in the terminal.
//
// Usage:
//
//	maze list              - List available modes
//	maze play [mode]       - Play a mode
//	maze menu              - Start menu to pick modes interactively
//	maze generate          - Print a maze as text
//	maze serve             - Start SSH server for remote play
//	maze scores [mode]     - Show high scores
//	maze runs [mode]       - Show recent runs
//	maze config            - Show or create the configuration file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.escape-maze/scores.db)
//	--verbose       - Log debug output
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/config"

	// Import games to register them
	_ "github.com/TheSakyo/Ynov-EscapeTheMaze/internal/games/mazerun"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	env    = config.DefaultEnv()
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "maze"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Escape The Maze - find your friend in a random maze",
	Long: `Escape The Maze carves a new maze every run. Walk to your friend
before the enemies reach you.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  generate  - Print a maze without playing
  serve     - Start SSH server for remote play
  scores    - View high scores
  runs      - View recent runs
  config    - Show or create the configuration file

Settings are read from flags, then MAZE_* variables (a .env file in the
working directory is loaded first), then defaults.

Examples:
  maze play
  maze play maze_zen --size large
  maze generate --width 12 --height 6 --seed 7
  maze serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default $MAZE_DB or ~/.escape-maze/scores.db)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnv reads .env and MAZE_* variables and fills flags left unset.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	e, err := config.LoadEnv()
	if err != nil {
		logger.Warn("ignoring environment file", "error", err)
	}
	env = e

	if flagDBPath == "" {
		flagDBPath = env.DBPath
	}
	logger.Debug("environment loaded", "db", flagDBPath, "config", env.ConfigPath)
	return nil
}
