package maze

import "strings"

// Text layout of a cell: a wall column plus three interior columns, and a
// wall row plus one interior row.
const (
	CellCols = 4
	CellRows = 2
)

// TextCanvas is a WallEmitter that draws walls as ASCII art.
// Corners become '+', horizontal walls "---" and vertical walls '|'.
type TextCanvas struct {
	w, h  int
	runes [][]rune
}

// NewTextCanvas allocates a blank canvas sized for a width x height maze.
func NewTextCanvas(width, height int) *TextCanvas {
	w := width*CellCols + 1
	h := height*CellRows + 1
	runes := make([][]rune, h)
	for y := range runes {
		runes[y] = []rune(strings.Repeat(" ", w))
	}
	return &TextCanvas{w: w, h: h, runes: runes}
}

// EmitWall draws one wall segment.
func (c *TextCanvas) EmitWall(seg Segment) {
	x0, y0 := seg.X*CellCols, seg.Y*CellRows
	switch seg.Side {
	case North:
		c.hline(x0, y0)
	case South:
		c.hline(x0, y0+CellRows)
	case West:
		c.vline(x0, y0)
	case East:
		c.vline(x0+CellCols, y0)
	}
}

// Set places r at canvas column x, row y. Out-of-range writes are ignored.
func (c *TextCanvas) Set(x, y int, r rune) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.runes[y][x] = r
}

func (c *TextCanvas) hline(x, y int) {
	c.Set(x, y, '+')
	for i := 1; i < CellCols; i++ {
		c.Set(x+i, y, '-')
	}
	c.Set(x+CellCols, y, '+')
}

func (c *TextCanvas) vline(x, y int) {
	c.Set(x, y, '+')
	for i := 1; i < CellRows; i++ {
		c.Set(x, y+i, '|')
	}
	c.Set(x, y+CellRows, '+')
}

// MarkCell writes r in the middle of cell (x, y).
func (c *TextCanvas) MarkCell(x, y int, r rune) {
	c.Set(x*CellCols+CellCols/2, y*CellRows+CellRows/2, r)
}

// String returns the canvas rows joined with newlines, trailing spaces trimmed.
func (c *TextCanvas) String() string {
	var sb strings.Builder
	for y, row := range c.runes {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
	}
	return sb.String()
}

// Render draws a generated grid as ASCII art.
func Render(g *Grid) string {
	c := NewTextCanvas(g.width, g.height)
	Emit(g, c)
	return c.String()
}
