package track

import (
	"fmt"
	"math"

	"github.com/ekohilas/train-conductor-world-tools/geom"
)

// Edge connects two edge-nodes of the same cell. From always sorts before To.
type Edge struct {
	From, To geom.Node
}

// NewEdge returns the canonical Edge between a and b, whichever order they come in.
// It fails with ErrInvalidEdge unless a and b are two distinct sides of one cell:
// opposite sides (a straight track) or adjacent sides (an elbow).
func NewEdge(a, b geom.Node) (Edge, error) {
	if a == b || !a.IsEdgeNode() || !b.IsEdgeNode() {
		return Edge{}, fmt.Errorf("%w: %v, %v", ErrInvalidEdge, a, b)
	}
	dx, dy := math.Abs(a.X-b.X), math.Abs(a.Y-b.Y)
	switch {
	case dy == 0 && dx == 1 && !geom.IsInteger(a.X): // west ↔ east
	case dx == 0 && dy == 1 && !geom.IsInteger(a.Y): // north ↔ south
	case dx == 0.5 && dy == 0.5: // elbow
	default:
		return Edge{}, fmt.Errorf("%w: %v, %v", ErrInvalidEdge, a, b)
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{From: a, To: b}, nil
}

// MustEdge is NewEdge for nodes known to be valid; it panics otherwise.
func MustEdge(a, b geom.Node) Edge {
	e, err := NewEdge(a, b)
	if err != nil {
		panic(err)
	}
	return e
}

// EdgeFor returns the Edge that the single shape pc draws inside cell c.
func EdgeFor(c geom.Coordinate, pc PathComponent) (Edge, error) {
	var a, b geom.Node
	switch pc {
	case Vertical:
		a, b = c.North(), c.South()
	case Horizontal:
		a, b = c.West(), c.East()
	case UpRight:
		a, b = c.North(), c.East()
	case DownLeft:
		a, b = c.South(), c.West()
	case DownRight:
		a, b = c.South(), c.East()
	case UpLeft:
		a, b = c.North(), c.West()
	default:
		return Edge{}, fmt.Errorf("%w: got %s at %v", ErrNotSingle, pc, c)
	}
	return NewEdge(a, b)
}

// Coordinate returns the cell the edge passes through.
//
// A straight edge sits on the midpoint of its two nodes. For an elbow each axis
// takes whichever endpoint value is an integer: the horizontal-side node gives y,
// the vertical-side node gives x.
func (e Edge) Coordinate() geom.Coordinate {
	from, to := e.From, e.To
	var x, y float64
	switch {
	case from.Y == to.Y:
		x, y = (from.X+to.X)/2, from.Y
	case from.X == to.X:
		x, y = from.X, (from.Y+to.Y)/2
	default:
		x, y = to.X, to.Y
		if geom.IsInteger(from.X) {
			x = from.X
		}
		if geom.IsInteger(from.Y) {
			y = from.Y
		}
	}
	return geom.Coordinate{X: int(x), Y: int(y)}
}

// PathComponent returns the single shape the edge draws in its cell.
func (e Edge) PathComponent() PathComponent {
	from, to := e.From, e.To

	// ┌─┐
	// f t
	// └─┘
	if from.Y == to.Y {
		return Horizontal
	}
	// ┌f┐
	// │ │
	// └t┘
	if from.X == to.X {
		return Vertical
	}

	c := e.Coordinate()
	cx, cy := float64(c.X), float64(c.Y)
	if from.X < cx {
		// ┌t┐
		// fc│
		// └─┘
		if to.Y < cy {
			return UpLeft
		}
		// ┌─┐
		// fc│
		// └t┘
		return DownLeft
	}
	// ┌f┐
	// │ct
	// └─┘
	if from.Y < cy {
		return UpRight
	}
	// ┌─┐
	// │ct
	// └f┘
	return DownRight
}

// Compare orders edges by From, then To.
func (e Edge) Compare(o Edge) int {
	if c := e.From.Compare(o.From); c != 0 {
		return c
	}
	return e.To.Compare(o.To)
}

func (e Edge) String() string {
	return e.From.String() + "->" + e.To.String()
}

// EdgesFromNodes turns a node path into the edges between consecutive nodes.
func EdgesFromNodes(nodes []geom.Node) ([]Edge, error) {
	if len(nodes) < 2 {
		return nil, nil
	}
	out := make([]Edge, 0, len(nodes)-1)
	for i := 0; i+1 < len(nodes); i++ {
		e, err := NewEdge(nodes[i], nodes[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
