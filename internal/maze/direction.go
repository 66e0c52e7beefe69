// Package maze generates perfect mazes on a rectangular grid using randomized
// depth-first backtracking. This package is UI-agnostic and deterministic for
// a given random source.
package maze

// Direction is one of the four compass sides of a cell.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four directions in a fixed order.
// Builders copy it before shuffling.
var Directions = [4]Direction{North, East, South, West}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset of the neighbor in this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Orientation is the axis a wall segment lies along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Orientation returns the axis of the wall on side d of a cell.
func (d Direction) Orientation() Orientation {
	if d == East || d == West {
		return Vertical
	}
	return Horizontal
}

// Point is a zero-based cell coordinate.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Step returns the neighboring point in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}
