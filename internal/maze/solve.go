package maze

// Edge is an opening between two adjacent cells.
// A is always the north or west cell of the pair.
type Edge struct {
	A Point
	B Point
}

// OpenEdges returns every carved passage once, scanning row by row.
func OpenEdges(g *Grid) []Edge {
	var edges []Edge
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[g.index(x, y)]
			if x+1 < g.width && !c.Walls[East] {
				edges = append(edges, Edge{A: P(x, y), B: P(x+1, y)})
			}
			if y+1 < g.height && !c.Walls[South] {
				edges = append(edges, Edge{A: P(x, y), B: P(x, y+1)})
			}
		}
	}
	return edges
}

// Distances returns the number of steps from "from" to every cell through
// open passages, indexed row-major. Unreachable cells hold -1.
func Distances(g *Grid, from Point) []int {
	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = -1
	}
	if !g.InBounds(from.X, from.Y) {
		return dist
	}

	queue := make([]Point, 0, g.Size())
	queue = append(queue, from)
	dist[g.index(from.X, from.Y)] = 0

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		base := dist[g.index(p.X, p.Y)]
		for _, d := range Directions {
			if !g.CanMove(p, d) {
				continue
			}
			n := p.Step(d)
			i := g.index(n.X, n.Y)
			if dist[i] >= 0 {
				continue
			}
			dist[i] = base + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// Distance returns the path length between a and b, or -1 if b is unreachable.
func Distance(g *Grid, a, b Point) int {
	if !g.InBounds(b.X, b.Y) {
		return -1
	}
	return Distances(g, a)[g.index(b.X, b.Y)]
}

// Farthest returns the reachable cell with the greatest path distance from
// "from" and that distance. Ties resolve to the first cell in row-major order.
func Farthest(g *Grid, from Point) (Point, int) {
	dist := Distances(g, from)
	best, bestDist := from, 0
	for i, d := range dist {
		if d > bestDist {
			best = P(i%g.width, i/g.width)
			bestDist = d
		}
	}
	return best, bestDist
}

// Descend returns the move from "from" to a neighbor one step closer to the
// origin of dist, a table produced by Distances. ok is false at the origin
// and on cells the origin cannot reach.
func Descend(g *Grid, dist []int, from Point) (dir Direction, ok bool) {
	if !g.InBounds(from.X, from.Y) {
		return North, false
	}
	here := dist[g.index(from.X, from.Y)]
	if here <= 0 {
		return North, false
	}
	for _, d := range Directions {
		if !g.CanMove(from, d) {
			continue
		}
		n := from.Step(d)
		if dist[g.index(n.X, n.Y)] == here-1 {
			return d, true
		}
	}
	return North, false
}

// NextStep returns the first move on a shortest path from "from" to "to".
// ok is false when the two points coincide or no path exists.
func NextStep(g *Grid, from, to Point) (dir Direction, ok bool) {
	if !g.InBounds(to.X, to.Y) {
		return North, false
	}
	return Descend(g, Distances(g, to), from)
}

// Path returns the cells of a shortest path from "from" to "to", both ends
// included. It returns nil when no path exists.
func Path(g *Grid, from, to Point) []Point {
	if !g.InBounds(from.X, from.Y) || !g.InBounds(to.X, to.Y) {
		return nil
	}
	dist := Distances(g, to)
	if dist[g.index(from.X, from.Y)] < 0 {
		return nil
	}

	path := []Point{from}
	for cur := from; cur != to; {
		d, _ := Descend(g, dist, cur)
		cur = cur.Step(d)
		path = append(path, cur)
	}
	return path
}
