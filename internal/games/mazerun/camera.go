package mazerun

import (
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/maze"
)

// camera maps maze text coordinates to the screen. The maze is drawn at
// maze.CellCols x maze.CellRows characters per cell.
type camera struct {
	view core.Rect // screen area the maze is drawn into
	offX int       // maze column shown at view.X
	offY int       // maze row shown at view.Y
}

// mazeSize returns the text size of a rendered grid.
func mazeSize(g *maze.Grid) (w, h int) {
	return g.Width()*maze.CellCols + 1, g.Height()*maze.CellRows + 1
}

// follow centers the view on cell p, clamped to the maze edges.
func (c *camera) follow(g *maze.Grid, p maze.Point) {
	w, h := mazeSize(g)
	fx := p.X*maze.CellCols + maze.CellCols/2
	fy := p.Y*maze.CellRows + maze.CellRows/2
	c.offX = core.Follow(fx, c.view.W, w)
	c.offY = core.Follow(fy, c.view.H, h)
}

// toScreen converts a maze text position to a screen position.
func (c *camera) toScreen(x, y int) (int, int) {
	return c.view.X + x - c.offX, c.view.Y + y - c.offY
}

// cellCenter returns the screen position of the middle of cell p.
func (c *camera) cellCenter(p maze.Point) (int, int) {
	return c.toScreen(p.X*maze.CellCols+maze.CellCols/2, p.Y*maze.CellRows+maze.CellRows/2)
}

// visible reports whether a screen position lies inside the view.
func (c *camera) visible(x, y int) bool {
	return c.view.Contains(x, y)
}
