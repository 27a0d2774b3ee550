// Package core provides a thread-safe, in-memory undirected Graph over ordered
// vertex values with a minimal API surface.
//
// What:
//
//   - Graph[V] stores an undirected, unweighted, simple graph G = (V, E).
//     Vertices are plain comparable values that also know how to order
//     themselves (Vertex[V]), so geometry types such as geom.Node and
//     geom.Coordinate are used directly instead of string IDs.
//   - Edges are unordered pairs. AddEdge(u, v) and AddEdge(v, u) name the same
//     edge and adding it twice is a no-op.
//   - Self-loops are rejected: a track edge always joins two distinct sides.
//
// Determinism:
//
//   - Vertices(), Neighbors() and Edges() all return sorted results, so every
//     algorithm driven by them enumerates in the same order on every run.
//
// Concurrency:
//
//   - A single sync.RWMutex guards the vertex set and the adjacency. Readers run
//     in parallel; writers are exclusive.
//
// Complexity:
//
//	AddVertex, HasVertex, AddEdge, HasEdge   O(1) amortized
//	Neighbors(v)                             O(d·log d)
//	Vertices()                               O(V·log V)
//	Edges()                                  O(E·log E)
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop.
package core
