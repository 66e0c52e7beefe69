package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/games/mazerun"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/platform/tui"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/registry"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       string
	flagWidth      int
	flagHeight     int
	flagStartX     int
	flagStartY     int
	flagNoOptions  bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default "maze").

An options screen picks the size and difficulty first, unless one of
--size, --difficulty, --width, --height or --no-options is given.

Controls:
  Arrows/WASD/hjkl - Move
  P/Space          - Pause
  R                - New maze (after the run ends)
  Esc/B            - Back (when paused or after the run ends)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - One enemy fewer, slower enemies
  normal - Enemies speed up as you play
  hard   - One more enemy, starting faster and following from further away
  fixed  - No progression, as configured

Size options:
  small (10x6), medium (20x12), large (40x24), fit (fills the terminal)

Examples:
  maze play
  maze play maze_zen
  maze play --difficulty hard --size fit
  maze play --width 30 --height 15 --start-x 15 --start-y 7
  maze play --config ./my-maze.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addMazeFlags(playCmd)
	playCmd.Flags().BoolVar(&flagNoOptions, "no-options", false, "Skip the options screen")
}

// addMazeFlags registers the flags that shape the maze.
func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to maze config YAML (default $MAZE_CONFIG or search path)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagSize, "size", "", "Size preset: small, medium, large, fit")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Maze width in cells (overrides --size)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Maze height in cells (overrides --size)")
	cmd.Flags().IntVar(&flagStartX, "start-x", 0, "Start cell column")
	cmd.Flags().IntVar(&flagStartY, "start-y", 0, "Start cell row")
}

// applyMazeFlags hands the maze flags to the game package before any game
// is created.
func applyMazeFlags(cmd *cobra.Command) {
	path := flagConfig
	if path == "" {
		path = env.ConfigPath
	}
	mazerun.SetConfigPath(path)
	mazerun.SetDifficultyPreset(flagDifficulty)
	mazerun.SetSizePreset(flagSize)
	mazerun.SetGridSize(flagWidth, flagHeight)
	if cmd.Flags().Changed("start-x") || cmd.Flags().Changed("start-y") {
		mazerun.SetStart(flagStartX, flagStartY)
	}
}

// mazeFlagsChosen reports whether the command line already fixes the options.
func mazeFlagsChosen(cmd *cobra.Command) bool {
	for _, name := range []string{"size", "difficulty", "width", "height"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := string(mazerun.ModeChase)
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'maze list' to see available modes", gameID)
	}

	applyMazeFlags(cmd)
	cfg := runtimeConfig()

	// Report configuration mistakes before the terminal switches screens.
	if _, err := mazerun.ResolveConfig(cfg.ScreenW, cfg.ScreenH); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if !flagNoOptions && !mazeFlagsChosen(cmd) {
		opts, _, err := tui.RunOptionsMenu(game.Title(), tui.CurrentOptions(), cfg)
		if err != nil {
			return err
		}
		if opts == nil {
			return nil
		}
		tui.ApplyOptions(game, *opts)
	}

	store := openStore()
	defer closeStore(store)

	rec := tui.NewRunRecorder(store, "", logger)
	if _, err := tui.Run(game, rec, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
