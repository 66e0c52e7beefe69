package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
)

var (
	flagRunID string
	flagLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs [mode]",
	Short: "Show recent runs",
	Long: `List recent runs of a mode (default "maze"), or show one run by ID.

A run's seed and size are enough to carve the same maze again with
'maze generate --seed <seed> --width <w> --height <h>'.

Examples:
  maze runs
  maze runs maze_zen --limit 5
  maze runs --id 3f1c8a52-5d0e-4a8e-9d0b-4a3c1f2e7b61`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunID, "id", "", "Show a single run")
	runsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "Number of runs to list")
}

func runRuns(_ *cobra.Command, args []string) error {
	store, err := openStoreStrict()
	if err != nil {
		return err
	}
	defer closeStore(store)

	if flagRunID != "" {
		r, err := store.RunByID(flagRunID)
		if err != nil {
			return err
		}
		fmt.Printf("Run      %s\n", r.ID)
		fmt.Printf("Mode     %s\n", r.GameID)
		fmt.Printf("Date     %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Maze     %dx%d seed %d\n", r.Width, r.Height, r.Seed)
		fmt.Printf("Outcome  %s\n", r.Outcome)
		fmt.Printf("Score    %d\n", r.Score)
		fmt.Printf("Moves    %d\n", r.Moves)
		fmt.Printf("Ticks    %d\n", r.Ticks)
		if r.Player != "" {
			fmt.Printf("Player   %s\n", r.Player)
		}
		return nil
	}

	gameID, err := modeArg(args)
	if err != nil {
		return err
	}

	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %6s  %5s  %-5s  %-36s\n", "Date", "Outcome", "Score", "Moves", "Size", "ID")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %6d  %5d  %-5s  %-36s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome, r.Score, r.Moves,
			fmt.Sprintf("%dx%d", r.Width, r.Height), r.ID)
	}

	counts, err := store.OutcomeCounts(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Finished: %d  Caught: %d  Quit: %d\n",
		counts[core.OutcomeFinished], counts[core.OutcomeCaught], counts[core.OutcomeQuit])
	return nil
}
