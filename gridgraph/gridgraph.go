package gridgraph

import (
	"fmt"

	"github.com/ekohilas/train-conductor-world-tools/bfs"
	"github.com/ekohilas/train-conductor-world-tools/core"
	"github.com/ekohilas/train-conductor-world-tools/geom"
)

// NewGridGraph builds the graph of a width×height grid.
// Returns ErrEmptyGrid if either dimension is below 1.
// Complexity: O(W×H×d) time and memory.
func NewGridGraph(width, height int, opts GridOptions) (*GridGraph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	// Precompute neighbour offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           width,
		Height:          height,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}
	gg.g = gg.build()
	return gg, nil
}

// FromTileMap builds the graph of a map's dimensions.
func FromTileMap(m Sized, opts GridOptions) (*GridGraph, error) {
	return NewGridGraph(m.Width(), m.Height(), opts)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c geom.Coordinate) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// NeighborOffsets returns the neighbour offsets for the grid's connectivity,
// clockwise from north.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	out := make([][2]int, len(gg.neighborOffsets))
	copy(out, gg.neighborOffsets)
	return out
}

// Neighbors returns the in-bounds neighbours of c, clockwise from north.
func (gg *GridGraph) Neighbors(c geom.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := geom.Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if gg.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// ToCoreGraph returns a copy of the grid as an undirected *core.Graph, one vertex
// per cell and one edge per neighbouring pair.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToCoreGraph() *core.Graph[geom.Coordinate] {
	return gg.g.Clone()
}

func (gg *GridGraph) build() *core.Graph[geom.Coordinate] {
	g := core.NewGraph[geom.Coordinate]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			g.AddVertex(geom.Coordinate{X: x, Y: y})
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := geom.Coordinate{X: x, Y: y}
			for _, v := range gg.Neighbors(u) {
				// distinct in-bounds cells, cannot fail
				_ = g.AddEdge(u, v)
			}
		}
	}
	return g
}

// AllPaths returns every shortest path of cells from one cell to another,
// endpoints included, sorted lexicographically.
func (gg *GridGraph) AllPaths(from, to geom.Coordinate) ([][]geom.Coordinate, error) {
	if err := gg.check(from, to); err != nil {
		return nil, err
	}
	return bfs.AllShortestPaths[geom.Coordinate](gg.g, from, to)
}

// Area returns, sorted, every cell lying on some shortest path between from and
// to, with from and to themselves removed. A cell c qualifies when
// dist(from, c) + dist(c, to) = dist(from, to).
func (gg *GridGraph) Area(from, to geom.Coordinate) ([]geom.Coordinate, error) {
	if err := gg.check(from, to); err != nil {
		return nil, err
	}
	fromRes, err := bfs.BFS[geom.Coordinate](gg.g, from)
	if err != nil {
		return nil, err
	}
	total, ok := fromRes.Depth[to]
	if !ok {
		return nil, fmt.Errorf("gridgraph: %v -> %v: %w", from, to, bfs.ErrNoPath)
	}
	toRes, err := bfs.BFS[geom.Coordinate](gg.g, to, bfs.WithMaxDepth[geom.Coordinate](total))
	if err != nil {
		return nil, err
	}

	var out []geom.Coordinate
	for _, c := range gg.g.Vertices() {
		if c == from || c == to {
			continue
		}
		df, okF := fromRes.Depth[c]
		dt, okT := toRes.Depth[c]
		if okF && okT && df+dt == total {
			out = append(out, c)
		}
	}
	return out, nil
}

func (gg *GridGraph) check(cells ...geom.Coordinate) error {
	for _, c := range cells {
		if !gg.InBounds(c) {
			return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, gg.Width, gg.Height)
		}
	}
	return nil
}
