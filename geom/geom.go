package geom

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// halfStep is the offset from a cell centre to the midpoint of one of its sides.
const halfStep = 0.5

// Direction is one of the four cardinal directions on the grid.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in N, E, S, W order.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the unit grid offset of d.
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
	}
	panic(fmt.Sprintf("geom: unknown direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Node is a point on the graph. Equal coordinates mean equal nodes.
type Node struct {
	X, Y float64
}

// Compare orders nodes lexicographically by (X, Y).
func (n Node) Compare(o Node) int {
	if c := cmp.Compare(n.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(n.Y, o.Y)
}

// Less reports whether n sorts before o.
func (n Node) Less(o Node) bool { return n.Compare(o) < 0 }

// IsEdgeNode reports whether exactly one of the coordinates is a half-integer,
// i.e. n sits on the midpoint of a cell side.
func (n Node) IsEdgeNode() bool {
	return IsInteger(n.X) != IsInteger(n.Y) && isHalfStep(n.X) && isHalfStep(n.Y)
}

func (n Node) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(n.X), formatFloat(n.Y))
}

// IsInteger reports whether v has no fractional part.
func IsInteger(v float64) bool {
	return v == math.Trunc(v)
}

// isHalfStep reports whether v is a multiple of one half.
func isHalfStep(v float64) bool {
	return IsInteger(v * 2)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Coordinate is a cell on the world grid.
type Coordinate struct {
	X, Y int
}

// Compare orders coordinates lexicographically by (X, Y).
func (c Coordinate) Compare(o Coordinate) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// Less reports whether c sorts before o.
func (c Coordinate) Less(o Coordinate) bool { return c.Compare(o) < 0 }

// Node returns the centre of the cell.
func (c Coordinate) Node() Node {
	return Node{X: float64(c.X), Y: float64(c.Y)}
}

// EdgeNode returns the midpoint of the side of c facing d.
func (c Coordinate) EdgeNode(d Direction) Node {
	dx, dy := d.Delta()
	return Node{
		X: float64(c.X) + float64(dx)*halfStep,
		Y: float64(c.Y) + float64(dy)*halfStep,
	}
}

func (c Coordinate) North() Node { return c.EdgeNode(North) }
func (c Coordinate) East() Node  { return c.EdgeNode(East) }
func (c Coordinate) South() Node { return c.EdgeNode(South) }
func (c Coordinate) West() Node  { return c.EdgeNode(West) }

// EdgeNodes returns the four side midpoints of c in Node order: west, north,
// south, east.
func (c Coordinate) EdgeNodes() [4]Node {
	return [4]Node{c.West(), c.North(), c.South(), c.East()}
}

// Neighbor returns the adjacent cell in direction d.
func (c Coordinate) Neighbor(d Direction) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors returns the four orthogonally adjacent cells in N, E, S, W order.
// Cells outside any particular grid are included; bounds are the caller's concern.
func (c Coordinate) Neighbors() [4]Coordinate {
	var out [4]Coordinate
	for i, d := range Directions {
		out[i] = c.Neighbor(d)
	}
	return out
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
