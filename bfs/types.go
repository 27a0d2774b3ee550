package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned when the destination was not reached from the start.
	ErrNoPath = errors.New("bfs: no path")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Vertex is the constraint on vertex values: comparable and totally ordered.
type Vertex[V any] interface {
	comparable
	Compare(V) int
}

// Graph is what BFS needs from a graph. *core.Graph satisfies it.
type Graph[V Vertex[V]] interface {
	HasVertex(v V) bool
	Neighbors(v V) ([]V, error)
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[V Vertex[V]] func(*Options[V])

// Options holds parameters and callbacks to customize BFS execution.
type Options[V Vertex[V]] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no depth limit.
func DefaultOptions[V Vertex[V]]() Options[V] {
	return Options[V]{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext[V Vertex[V]](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V Vertex[V]](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start.
//   - Preds: map from vertex to every predecessor at Depth-1, in discovery order.
type Result[V Vertex[V]] struct {
	Start V
	Order []V
	Depth map[V]int
	Preds map[V][]V
}

// PathsTo returns every shortest path from the start to dest, each beginning
// with the start and ending with dest, sorted lexicographically by vertex order.
// Returns ErrNoPath if dest was not reached.
func (r *Result[V]) PathsTo(dest V) ([][]V, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: to %v", ErrNoPath, dest)
	}
	var out [][]V
	path := make([]V, d+1)
	var walk func(v V, i int)
	walk = func(v V, i int) {
		path[i] = v
		if i == 0 {
			out = append(out, slices.Clone(path))
			return
		}
		for _, p := range r.Preds[v] {
			walk(p, i-1)
		}
	}
	walk(dest, d)
	slices.SortFunc(out, comparePaths[V])
	return out, nil
}

// comparePaths orders two vertex sequences lexicographically.
func comparePaths[V Vertex[V]](a, b []V) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}
