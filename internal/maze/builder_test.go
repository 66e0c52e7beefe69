package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of draws, each reduced modulo n.
type scriptedRand struct {
	vals []int
	pos  int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.pos%len(r.vals)]
	r.pos++
	return v % n
}

// keepOrder never swaps, so directions are tried North, East, South, West.
type keepOrder struct{}

func (keepOrder) Intn(n int) int { return n - 1 }

func generated(t *testing.T, w, h, sx, sy int, rng Rand) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	require.NoError(t, err)
	require.NoError(t, NewBuilder(rng).Generate(g, sx, sy))
	return g
}

// connected reports whether every cell is reachable from (0,0).
func connected(g *Grid) bool {
	for _, d := range Distances(g, P(0, 0)) {
		if d < 0 {
			return false
		}
	}
	return true
}

func TestGenerateVisitsEveryCell(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 3}, {16, 9}, {31, 17}}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			g := generated(t, sz.w, sz.h, sz.w/2, sz.h/2, rand.New(rand.NewSource(seed)))
			assert.Equal(t, sz.w*sz.h, g.VisitedCount(), "%dx%d seed %d", sz.w, sz.h, seed)
		}
	}
}

func TestGenerateProducesSpanningTree(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {2, 3}, {4, 4}, {10, 6}, {25, 12}}

	for _, sz := range sizes {
		for seed := int64(0); seed < 8; seed++ {
			g := generated(t, sz.w, sz.h, 0, 0, rand.New(rand.NewSource(seed)))

			edges := OpenEdges(g)
			assert.Len(t, edges, sz.w*sz.h-1, "%dx%d seed %d", sz.w, sz.h, seed)
			assert.True(t, connected(g), "%dx%d seed %d not connected", sz.w, sz.h, seed)
		}
	}
}

func TestGenerateWallSymmetry(t *testing.T) {
	g := generated(t, 12, 8, 3, 5, rand.New(rand.NewSource(99)))

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x+1 < g.Width() {
				assert.Equal(t, g.HasWall(x, y, East), g.HasWall(x+1, y, West), "east/west at (%d,%d)", x, y)
			}
			if y+1 < g.Height() {
				assert.Equal(t, g.HasWall(x, y, South), g.HasWall(x, y+1, North), "south/north at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateKeepsBorder(t *testing.T) {
	g := generated(t, 9, 5, 4, 2, rand.New(rand.NewSource(7)))

	for x := 0; x < g.Width(); x++ {
		assert.True(t, g.HasWall(x, 0, North))
		assert.True(t, g.HasWall(x, g.Height()-1, South))
	}
	for y := 0; y < g.Height(); y++ {
		assert.True(t, g.HasWall(0, y, West))
		assert.True(t, g.HasWall(g.Width()-1, y, East))
	}
}

func TestGenerateOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		sx, sy int
	}{
		{"negative x", -1, 0},
		{"x equals width", 4, 0},
		{"negative y", 0, -1},
		{"y equals height", 0, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(4, 3)
			require.NoError(t, err)

			err = NewBuilder(keepOrder{}).Generate(g, tc.sx, tc.sy)
			require.ErrorIs(t, err, ErrOutOfBounds)

			// Nothing was touched.
			assert.Zero(t, g.VisitedCount())
			assert.Equal(t, 4*g.Size(), CountWallSides(g))
		})
	}
}

func TestGenerateDeterministicWithSameSequence(t *testing.T) {
	seq := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 4}

	a := generated(t, 8, 6, 2, 2, &scriptedRand{vals: seq})
	b := generated(t, 8, 6, 2, 2, &scriptedRand{vals: seq})
	assert.Equal(t, OpenEdges(a), OpenEdges(b))

	c := generated(t, 8, 6, 2, 2, rand.New(rand.NewSource(2024)))
	d := generated(t, 8, 6, 2, 2, rand.New(rand.NewSource(2024)))
	assert.Equal(t, OpenEdges(c), OpenEdges(d))
	assert.Equal(t, Render(c), Render(d))
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a := generated(t, 20, 10, 0, 0, rand.New(rand.NewSource(1)))
	b := generated(t, 20, 10, 0, 0, rand.New(rand.NewSource(2)))
	assert.NotEqual(t, OpenEdges(a), OpenEdges(b))
}

func TestGenerateFixedOrderCorridor(t *testing.T) {
	// With no shuffling the walk snakes through a 3x3 grid.
	g := generated(t, 3, 3, 0, 0, keepOrder{})

	want := "" +
		"+---+---+---+\n" +
		"|           |\n" +
		"+---+---+   +\n" +
		"|       |   |\n" +
		"+   +   +   +\n" +
		"|   |       |\n" +
		"+---+---+---+"
	assert.Equal(t, want, Render(g))
	assert.Equal(t, []Point{
		P(0, 0), P(1, 0), P(2, 0), P(2, 1), P(2, 2), P(1, 2), P(1, 1), P(0, 1), P(0, 2),
	}, Path(g, P(0, 0), P(0, 2)))
}

func TestGenerateLargeGridNoRecursionLimit(t *testing.T) {
	// A fixed order on a wide grid gives a single long corridor.
	g := generated(t, 400, 250, 0, 0, keepOrder{})
	assert.Equal(t, g.Size(), g.VisitedCount())
	assert.Len(t, OpenEdges(g), g.Size()-1)
}

func TestShuffleFixedDraws(t *testing.T) {
	dirs := Directions
	Shuffle(&scriptedRand{vals: []int{0}}, dirs[:])
	assert.Equal(t, [4]Direction{East, South, West, North}, dirs)

	dirs = Directions
	Shuffle(keepOrder{}, dirs[:])
	assert.Equal(t, Directions, dirs)
}

func TestShuffleUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	counts := make(map[[4]Direction]int)

	const rounds = 24000
	for i := 0; i < rounds; i++ {
		dirs := Directions
		Shuffle(rng, dirs[:])
		counts[dirs]++
	}

	require.Len(t, counts, 24, "every permutation should appear")
	for perm, n := range counts {
		assert.InDelta(t, rounds/24, n, 200, "permutation %v", perm)
	}
}

func TestGenerateSeedHelper(t *testing.T) {
	g, err := NewGrid(6, 4)
	require.NoError(t, err)
	require.NoError(t, Generate(g, 5, 3, 77))
	assert.Equal(t, g.Size(), g.VisitedCount())

	g2, err := New(6, 4, 5, 3, rand.New(rand.NewSource(77)))
	require.NoError(t, err)
	assert.Equal(t, OpenEdges(g), OpenEdges(g2))

	_, err = New(0, 4, 0, 0, keepOrder{})
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = New(6, 4, 6, 0, keepOrder{})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
