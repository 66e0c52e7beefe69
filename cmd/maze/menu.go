package main

import (
	"github.com/spf13/cobra"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/platform/tui"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Pick a mode, choose the size and difficulty, and play. Going back from a
finished or paused run returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change an option
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  maze menu
  maze menu --fps 60
  maze menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addMazeFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	applyMazeFlags(cmd)

	store := openStore()
	defer closeStore(store)

	rec := tui.NewRunRecorder(store, "", logger)
	cfg := runtimeConfig()
	opts := tui.CurrentOptions()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "mode", menuResult.GameID, "error", err)
			continue
		}

		selected, quit, err := tui.RunOptionsMenu(game.Title(), opts, cfg)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if selected == nil {
			continue
		}
		opts = *selected
		tui.ApplyOptions(game, opts)

		// A fixed seed only applies to the first maze.
		backToMenu, err := tui.Run(game, rec, cfg)
		cfg.Seed = 0
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
