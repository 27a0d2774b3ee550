package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is the constraint on vertex values: comparable, so they can key maps,
// and totally ordered through Compare, so results can be sorted.
type Vertex[V any] interface {
	comparable
	Compare(V) int
}

// Edge is an unordered pair of vertices, stored with From <= To.
type Edge[V Vertex[V]] struct {
	From, To V
}

// Graph is an undirected, unweighted, simple graph.
//
// adjacency[v] is the neighbor set of v; every vertex has an entry, possibly empty.
// An edge {u, v} is present in both adjacency[u] and adjacency[v].
type Graph[V Vertex[V]] struct {
	mu sync.RWMutex

	adjacency map[V]map[V]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[V Vertex[V]]() *Graph[V] {
	return &Graph[V]{adjacency: make(map[V]map[V]struct{})}
}
