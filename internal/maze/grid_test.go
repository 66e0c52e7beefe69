package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(5, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 15, g.Size())

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			c := g.Cell(x, y)
			assert.False(t, c.Visited)
			for _, d := range Directions {
				assert.True(t, c.HasWall(d), "(%d,%d) %s", x, y, d)
			}
		}
	}
}

func TestNewGridInvalidDimension(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -2, 3},
		{"negative height", 3, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.w, tc.h)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestGridInBounds(t *testing.T) {
	g, err := NewGrid(4, 2)
	require.NoError(t, err)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{3, 1, true},
		{4, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, g.InBounds(tc.x, tc.y), "InBounds(%d, %d)", tc.x, tc.y)
	}
}

func TestGridOutOfBoundsReads(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)

	assert.False(t, g.Visited(-1, 0))
	assert.True(t, g.HasWall(5, 5, North))
	assert.False(t, g.CanMove(P(0, 0), North))
	assert.False(t, g.CanMove(P(9, 9), South))
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())

		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
	}
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, "West", West.String())
}
