package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/games/mazerun"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/maze"
)

var (
	flagSegments bool
	flagMark     bool
	flagSolve    bool
	flagOutput   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a maze without playing",
	Long: `Carve a maze and print it as text.

The size and start cell come from the same configuration and flags as
'maze play'. With --seed the output is reproducible.

Examples:
  maze generate --size small --seed 7
  maze generate --width 12 --height 6 --mark --solve
  maze generate --width 3 --height 3 --segments
  maze generate --size large -o maze.txt`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addMazeFlags(generateCmd)
	generateCmd.Flags().BoolVar(&flagSegments, "segments", false, "List wall segments instead of drawing")
	generateCmd.Flags().BoolVar(&flagMark, "mark", false, "Mark the start (S) and the farthest cell (E)")
	generateCmd.Flags().BoolVar(&flagSolve, "solve", false, "Draw the path from the start to the farthest cell")
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to a file instead of stdout")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	applyMazeFlags(cmd)
	rc := runtimeConfig()

	cfg, err := mazerun.ResolveConfig(rc.ScreenW, rc.ScreenH)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := maze.New(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.StartX, cfg.Grid.StartY, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	logger.Debug("maze generated", "width", g.Width(), "height", g.Height(), "seed", seed)

	start := maze.P(cfg.Grid.StartX, cfg.Grid.StartY)
	if flagOutput == "" {
		return writeMaze(cmd.OutOrStdout(), g, start)
	}
	return writeMazeFile(flagOutput, g, start)
}

// writeMaze prints the maze in the format chosen by the flags.
func writeMaze(out io.Writer, g *maze.Grid, start maze.Point) error {
	if flagSegments {
		return writeSegments(out, g)
	}
	_, err := fmt.Fprintln(out, drawMaze(g, start, flagMark, flagSolve))
	return err
}

// writeMazeFile writes the maze to path and reports close errors.
func writeMazeFile(path string, g *maze.Grid, start maze.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := writeMaze(f, g, start); err != nil {
		f.Close()
		return fmt.Errorf("generate: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("generate: close %s: %w", path, err)
	}
	return nil
}

// writeSegments prints one wall per line as "x y side".
func writeSegments(w io.Writer, g *maze.Grid) error {
	var err error
	n := maze.Emit(g, maze.EmitterFunc(func(s maze.Segment) {
		if err == nil {
			_, err = fmt.Fprintf(w, "%d %d %s\n", s.X, s.Y, s.Side)
		}
	}))
	if err != nil {
		return err
	}
	logger.Debug("segments written", "count", n)
	return nil
}

// drawMaze renders g with optional start, exit and solution marks.
func drawMaze(g *maze.Grid, start maze.Point, mark, solve bool) string {
	c := maze.NewTextCanvas(g.Width(), g.Height())
	maze.Emit(g, c)

	exit, _ := maze.Farthest(g, start)
	if solve {
		for _, p := range maze.Path(g, start, exit) {
			c.MarkCell(p.X, p.Y, '.')
		}
	}
	if mark || solve {
		c.MarkCell(start.X, start.Y, 'S')
		c.MarkCell(exit.X, exit.Y, 'E')
	}
	return c.String()
}
