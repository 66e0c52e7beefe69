package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/maze"
)

func TestDrawMazeMarks(t *testing.T) {
	g, err := maze.NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := maze.Generate(g, 0, 0, 9); err != nil {
		t.Fatal(err)
	}

	plain := drawMaze(g, maze.P(0, 0), false, false)
	if plain != maze.Render(g) {
		t.Error("unmarked drawing should match Render")
	}

	marked := drawMaze(g, maze.P(0, 0), true, false)
	if strings.Count(marked, "S") != 1 || strings.Count(marked, "E") != 1 {
		t.Errorf("expected one S and one E:\n%s", marked)
	}

	_, dist := maze.Farthest(g, maze.P(0, 0))
	solved := drawMaze(g, maze.P(0, 0), false, true)
	// Every path cell but the two ends shows a dot.
	if n := strings.Count(solved, "."); n != dist-1 {
		t.Errorf("path dots = %d, expected %d", n, dist-1)
	}
}

func TestWriteSegments(t *testing.T) {
	g, err := maze.NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := maze.Generate(g, 1, 1, 5); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeSegments(&buf, g); err != nil {
		t.Fatalf("writeSegments() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(maze.Segments(g)) {
		t.Errorf("wrote %d lines, expected %d", len(lines), len(maze.Segments(g)))
	}
	if !strings.HasSuffix(lines[0], "North") {
		t.Errorf("first segment %q should be the north wall of (0,0)", lines[0])
	}
}

func TestWriteMazeFile(t *testing.T) {
	g, err := maze.NewGrid(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := maze.Generate(g, 0, 0, 3); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := writeMazeFile(path, g, maze.P(0, 0)); err != nil {
		t.Fatalf("writeMazeFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != maze.Render(g)+"\n" {
		t.Errorf("file content does not match the drawing:\n%s", data)
	}

	missing := filepath.Join(t.TempDir(), "no-such-dir", "maze.txt")
	if err := writeMazeFile(missing, g, maze.P(0, 0)); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
