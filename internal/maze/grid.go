package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a grid width or height is not positive.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Cell is a single maze unit. A wall flag is true while the wall stands.
type Cell struct {
	Visited bool
	Walls   [4]bool // Indexed by Direction
}

// newCell returns an unvisited cell with all four walls present.
func newCell() Cell {
	return Cell{Walls: [4]bool{true, true, true, true}}
}

// HasWall reports whether the wall on side d is present.
func (c Cell) HasWall(d Direction) bool {
	if int(d) >= len(c.Walls) {
		return true
	}
	return c.Walls[d]
}

// Grid is a fixed-size rectangle of cells stored in row-major order:
// index = y*Width + x.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a width x height grid of unvisited cells with every wall up.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("maze: new grid %dx%d: %w", width, height, ErrInvalidDimension)
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = newCell()
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Cell returns a copy of the cell at (x, y).
// Out-of-bounds coordinates yield a fresh walled cell.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return newCell()
	}
	return g.cells[g.index(x, y)]
}

// Visited reports whether the cell at (x, y) was reached by generation.
func (g *Grid) Visited(x, y int) bool {
	return g.Cell(x, y).Visited
}

// HasWall reports whether the wall on side d of (x, y) is present.
func (g *Grid) HasWall(x, y int, d Direction) bool {
	return g.Cell(x, y).HasWall(d)
}

// CanMove reports whether a walker at p may step in direction d.
func (g *Grid) CanMove(p Point, d Direction) bool {
	next := p.Step(d)
	return g.InBounds(p.X, p.Y) && g.InBounds(next.X, next.Y) && !g.HasWall(p.X, p.Y, d)
}

// VisitedCount returns the number of visited cells.
func (g *Grid) VisitedCount() int {
	count := 0
	for _, c := range g.cells {
		if c.Visited {
			count++
		}
	}
	return count
}

// markVisited flags (x, y) as visited. Caller checks bounds.
func (g *Grid) markVisited(x, y int) {
	g.cells[g.index(x, y)].Visited = true
}

// carve removes the wall between (x, y) and its neighbor in direction d
// on both cells. Caller checks that both are in bounds.
func (g *Grid) carve(x, y int, d Direction) {
	dx, dy := d.Delta()
	g.cells[g.index(x, y)].Walls[d] = false
	g.cells[g.index(x+dx, y+dy)].Walls[d.Opposite()] = false
}
