package core

import (
	"fmt"
	"slices"
)

// AddVertex inserts v. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(v)
}

// ensureVertex must be called with the write lock held.
func (g *Graph[V]) ensureVertex(v V) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[V]struct{})
	}
}

// HasVertex reports whether v is in the graph.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]
	return ok
}

// AddEdge connects u and v, adding either vertex if missing.
// Adding an edge that already exists (in either orientation) is a no-op.
// Returns ErrLoopNotAllowed for u == v.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(u, v V) error {
	if u == v {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, u)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)
	if _, ok := g.adjacency[u][v]; ok {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++
	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph[V]) HasEdge(u, v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]
	return ok
}

// Neighbors returns the vertices adjacent to v in ascending order.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(d·log d).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]V, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	slices.SortFunc(out, compare[V])
	return out, nil
}

// Degree returns the number of neighbors of v.
// Returns ErrVertexNotFound if v is absent.
func (g *Graph[V]) Degree(v V) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.adjacency[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	return len(set), nil
}

// Vertices returns every vertex in ascending order.
// Complexity: O(V·log V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	slices.SortFunc(out, compare[V])
	return out
}

// Edges returns every edge once, with From <= To, sorted by From then To.
// Complexity: O(E·log E).
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge[V], 0, g.edgeCount)
	for u, set := range g.adjacency {
		for v := range set {
			if u.Compare(v) <= 0 {
				out = append(out, Edge[V]{From: u, To: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge[V]) int {
		if c := a.From.Compare(b.From); c != 0 {
			return c
		}
		return a.To.Compare(b.To)
	})
	return out
}

// VertexCount returns |V|.
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adjacency)
}

// EdgeCount returns |E|.
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeCount
}

// Clone returns an independent copy of g.
// Complexity: O(V+E).
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph[V]{
		adjacency: make(map[V]map[V]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for v, set := range g.adjacency {
		cs := make(map[V]struct{}, len(set))
		for n := range set {
			cs[n] = struct{}{}
		}
		c.adjacency[v] = cs
	}
	return c
}

func compare[V Vertex[V]](a, b V) int { return a.Compare(b) }
