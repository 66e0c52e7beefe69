package maze

// Segment is one standing wall: the side Side of cell (X, Y).
type Segment struct {
	X    int
	Y    int
	Side Direction
}

// Orientation returns the axis the segment lies along.
func (s Segment) Orientation() Orientation {
	return s.Side.Orientation()
}

// WallEmitter receives the walls of a finished maze, one call per wall.
// Renderers and collision builders implement it.
type WallEmitter interface {
	EmitWall(seg Segment)
}

// EmitterFunc adapts a plain function to WallEmitter.
type EmitterFunc func(seg Segment)

// EmitWall calls f(seg).
func (f EmitterFunc) EmitWall(seg Segment) {
	f(seg)
}

// Emit walks a generated grid and hands every standing wall to e exactly once.
// A wall shared by two cells is reported from its north or west cell only;
// South and East sides are reported only on the bottom row and right column.
// Returns the number of segments emitted.
//
// Emit only reads the grid. Call it after Generate has returned.
func Emit(g *Grid, e WallEmitter) int {
	n := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[g.index(x, y)]
			for _, d := range Directions {
				if !c.Walls[d] || !owns(g, x, y, d) {
					continue
				}
				e.EmitWall(Segment{X: x, Y: y, Side: d})
				n++
			}
		}
	}
	return n
}

// owns reports whether cell (x, y) is responsible for emitting its side d.
func owns(g *Grid, x, y int, d Direction) bool {
	switch d {
	case South:
		return y == g.height-1
	case East:
		return x == g.width-1
	default:
		return true
	}
}

// Segments collects the emitted walls of g in emission order.
func Segments(g *Grid) []Segment {
	segs := make([]Segment, 0, 2*g.Size()+g.width+g.height)
	Emit(g, EmitterFunc(func(seg Segment) {
		segs = append(segs, seg)
	}))
	return segs
}

// CountWallSides counts wall flags cell by cell, so an interior wall counts
// twice (once from each side). For a perfect maze this is
// 4*W*H - 2*(W*H-1).
func CountWallSides(g *Grid) int {
	n := 0
	for _, c := range g.cells {
		for _, w := range c.Walls {
			if w {
				n++
			}
		}
	}
	return n
}
