package bfs

import (
	"context"
	"fmt"
	"reflect"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V Vertex[V]] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V Vertex[V]] struct {
	graph Graph[V]
	opts  Options[V]
	ctx   context.Context
	queue []queueItem[V]
	res   *Result[V]

	// target, when set, stops the walk once its level is settled.
	target    V
	hasTarget bool
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or the context's error once it is done.
func BFS[V Vertex[V]](g Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	return w.res, w.loop()
}

// AllShortestPaths returns every shortest path from src to dst, sorted
// lexicographically by vertex order. The search stops as soon as no vertex
// left in the queue can lie on a shortest path to dst.
// Returns ErrNoPath when dst is unreachable (or absent), plus the BFS errors.
func AllShortestPaths[V Vertex[V]](g Graph[V], src, dst V, opts ...Option[V]) ([][]V, error) {
	w, err := newWalker(g, src, opts)
	if err != nil {
		return nil, err
	}
	w.target, w.hasTarget = dst, true
	if err = w.loop(); err != nil {
		return nil, err
	}
	return w.res.PathsTo(dst)
}

func newWalker[V Vertex[V]](g Graph[V], start V, opts []Option[V]) (*walker[V], error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &walker[V]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &Result[V]{
			Start: start,
			Depth: make(map[V]int),
			Preds: make(map[V][]V),
		},
	}
	w.enqueue(start, 0)
	return w, nil
}

// isNil catches both a nil interface and a typed nil pointer inside one.
func isNil(g any) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// enqueue records v at depth d and adds it to the queue.
func (w *walker[V]) enqueue(v V, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, error, cancellation or, with a target,
// until the target's level is complete.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if w.hasTarget {
			if d, ok := w.res.Depth[w.target]; ok && item.depth >= d {
				return nil
			}
		}
		w.res.Order = append(w.res.Order, item.v)
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// expand enqueues every unseen neighbor and records item as a
// predecessor of every neighbor one level deeper.
func (w *walker[V]) expand(item queueItem[V]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.v, err)
	}
	for _, nbr := range neighbors {
		d, seen := w.res.Depth[nbr]
		switch {
		case !seen:
			w.enqueue(nbr, next)
			w.res.Preds[nbr] = append(w.res.Preds[nbr], item.v)
		case d == next:
			w.res.Preds[nbr] = append(w.res.Preds[nbr], item.v)
		}
	}
	return nil
}
