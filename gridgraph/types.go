package gridgraph

import (
	"errors"

	"github.com/ekohilas/train-conductor-world-tools/core"
	"github.com/ekohilas/train-conductor-world-tools/geom"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid without rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")

	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions{Conn: Conn4}, the movement track can make.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Sized is anything with grid dimensions. *world.TileMap satisfies it.
type Sized interface {
	Width() int
	Height() int
}

// GridGraph is the cell adjacency of a Width×Height grid. It is immutable once built.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	neighborOffsets [][2]int
	g               *core.Graph[geom.Coordinate]
}
