// Package bfs provides breadth-first search over any undirected graph exposing
// sorted neighbor lists, returning unweighted distances, predecessor sets and
// every shortest path between two vertices.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a start
//     vertex and returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Preds: map from vertex → every neighbor one step closer to the start,
//     in discovery order
//   - Result.PathsTo backtracks through Preds to list all shortest paths, sorted
//     lexicographically by vertex sequence.
//   - AllShortestPaths runs BFS, stops once the destination's level has been
//     settled and returns Result.PathsTo(dst).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0) and
//     cancellation via WithContext.
//
// Determinism
//
//	Neighbors are enqueued in the order the graph returns them (core.Graph sorts
//	them), so Order and every Preds list are reproducible, and PathsTo sorts its
//	output regardless.
//
// Complexity (V = |Vertices|, E = |Edges|, P = number of shortest paths, L = their length)
//
//   - BFS:      O(V + E) time, O(V + E) memory for the predecessor sets
//   - PathsTo:  O(P·L·log P) time
//
// Usage
//
//	paths, err := bfs.AllShortestPaths(g, src, dst)
//	if errors.Is(err, bfs.ErrNoPath) {
//	    // src and dst are disconnected
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNoPath               if the destination was not reached.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if the graph fails to list neighbors.
//   - ctx.Err()               once the WithContext context is done.
package bfs
