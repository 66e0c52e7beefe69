package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/games/mazerun"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/registry"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a mode (default "maze").

Examples:
  maze scores
  maze scores maze_zen
  maze scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score of the mode")
}

// modeArg returns the mode named by args, checking that it exists.
func modeArg(args []string) (string, error) {
	gameID := string(mazerun.ModeChase)
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown mode %q, run 'maze list' to see available modes", gameID)
	}
	return gameID, nil
}

// openStoreStrict opens the score database for commands that need it.
func openStoreStrict() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening scores database: %w", err)
	}
	return store, nil
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := modeArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := openStoreStrict()
	if err != nil {
		return err
	}
	defer closeStore(store)

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Scores of %s cleared.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'maze play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Average: %.0f  Games: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
	return nil
}
