package maze

import (
	"fmt"
	"math/rand"
)

// Rand is the random source consumed by the builder.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a non-negative pseudo-random int in [0, n).
	Intn(n int) int
}

// Builder carves a spanning-tree maze into a grid using randomized
// depth-first backtracking.
type Builder struct {
	rng Rand
}

// NewBuilder creates a builder drawing permutations from rng.
func NewBuilder(rng Rand) *Builder {
	return &Builder{rng: rng}
}

// frame is one level of the backtracking walk: the cell being explored,
// its shuffled exits and the next exit to try.
type frame struct {
	x, y int
	dirs [4]Direction
	next int
}

// Generate carves passages starting from (startX, startY) until every cell is
// visited. On return the open edges form a spanning tree over the grid.
//
// The walk uses an explicit stack, so grids of any size are safe. Visiting
// order and random draws match the recursive formulation exactly: a cell's
// directions are shuffled once, when the cell is entered.
func (b *Builder) Generate(g *Grid, startX, startY int) error {
	if !g.InBounds(startX, startY) {
		return fmt.Errorf("maze: generate from (%d,%d) on %dx%d grid: %w",
			startX, startY, g.width, g.height, ErrOutOfBounds)
	}

	stack := make([]frame, 0, 64)
	stack = append(stack, b.enter(g, startX, startY))

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		d := top.dirs[top.next]
		top.next++

		dx, dy := d.Delta()
		nx, ny := top.x+dx, top.y+dy
		if !g.InBounds(nx, ny) || g.Visited(nx, ny) {
			continue
		}

		g.carve(top.x, top.y, d)
		stack = append(stack, b.enter(g, nx, ny))
	}

	return nil
}

// enter marks (x, y) visited and returns its frame with shuffled exits.
func (b *Builder) enter(g *Grid, x, y int) frame {
	g.markVisited(x, y)
	f := frame{x: x, y: y, dirs: Directions}
	Shuffle(b.rng, f.dirs[:])
	return f
}

// Shuffle permutes dirs in place with a Fisher-Yates shuffle so that every
// ordering is equally likely.
func Shuffle(rng Rand, dirs []Direction) {
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}

// Generate builds a maze in g from (startX, startY) with a seeded source.
func Generate(g *Grid, startX, startY int, seed int64) error {
	return NewBuilder(rand.New(rand.NewSource(seed))).Generate(g, startX, startY)
}

// New allocates a width x height grid and carves it from (startX, startY).
func New(width, height, startX, startY int, rng Rand) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if err := NewBuilder(rng).Generate(g, startX, startY); err != nil {
		return nil, err
	}
	return g, nil
}
