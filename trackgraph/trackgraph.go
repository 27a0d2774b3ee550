package trackgraph

import (
	"context"
	"fmt"

	"github.com/ekohilas/train-conductor-world-tools/bfs"
	"github.com/ekohilas/train-conductor-world-tools/core"
	"github.com/ekohilas/train-conductor-world-tools/geom"
	"github.com/ekohilas/train-conductor-world-tools/logging"
	"github.com/ekohilas/train-conductor-world-tools/track"
)

// Graph is the undirected graph of edge-nodes joined by track.
type Graph struct {
	g             *core.Graph[geom.Node]
	width, height int
}

// New builds the track graph of grid.
// Complexity: O(W·H + T) for T track tiles.
func New(grid Grid, opts ...Option) (*Graph, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	tg := &Graph{
		g:      core.NewGraph[geom.Node](),
		width:  grid.Width(),
		height: grid.Height(),
	}
	for x := 0; x < tg.width; x++ {
		for y := 0; y < tg.height; y++ {
			c := geom.Coordinate{X: x, Y: y}
			for _, n := range c.EdgeNodes() {
				tg.g.AddVertex(n)
			}
			if o.trackless {
				if err := tg.addShape(c, track.All); err != nil {
					return nil, err
				}
			}
		}
	}
	if o.trackless {
		return tg, nil
	}

	for _, t := range grid.Tiles() {
		if !t.IsTrack() {
			continue
		}
		if t.PathComponent == track.None {
			logging.Debugf("Track %s has no shape.", t)
			continue
		}
		if err := tg.addShape(t.Coordinate, t.PathComponent); err != nil {
			return nil, fmt.Errorf("trackgraph: %v: %w", t, err)
		}
	}
	return tg, nil
}

// addShape adds one edge per single shape of pc inside cell c.
func (tg *Graph) addShape(c geom.Coordinate, pc track.PathComponent) error {
	if rest := pc &^ track.All; rest != 0 {
		return fmt.Errorf("%w: %s", ErrUnknownShape, pc)
	}
	for _, single := range pc.Components() {
		e, err := track.EdgeFor(c, single)
		if err != nil {
			return err
		}
		if err = tg.g.AddEdge(e.From, e.To); err != nil {
			return err
		}
	}
	return nil
}

// AllShortestPaths returns every shortest node path from src to dst, sorted
// lexicographically. It returns bfs.ErrNoPath when dst cannot be reached and
// ctx.Err() once ctx is done.
func (tg *Graph) AllShortestPaths(ctx context.Context, src, dst geom.Node) ([][]geom.Node, error) {
	return bfs.AllShortestPaths[geom.Node](tg.g, src, dst, bfs.WithContext[geom.Node](ctx))
}

// Edges returns every track edge, sorted.
func (tg *Graph) Edges() []track.Edge {
	raw := tg.g.Edges()
	out := make([]track.Edge, 0, len(raw))
	for _, e := range raw {
		out = append(out, track.MustEdge(e.From, e.To))
	}
	return out
}

// HasEdge reports whether e is part of the graph.
func (tg *Graph) HasEdge(e track.Edge) bool { return tg.g.HasEdge(e.From, e.To) }

// HasVertex reports whether n is an edge-node of some cell.
func (tg *Graph) HasVertex(n geom.Node) bool { return tg.g.HasVertex(n) }

func (tg *Graph) VertexCount() int { return tg.g.VertexCount() }
func (tg *Graph) EdgeCount() int   { return tg.g.EdgeCount() }
func (tg *Graph) Width() int       { return tg.width }
func (tg *Graph) Height() int      { return tg.height }
