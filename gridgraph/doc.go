// Package gridgraph treats the cells of a rectangular map as a graph, for
// reasoning about where track could go rather than where it is.
//
// What:
//
//   - GridGraph joins every in-bounds cell to its 4 (Conn4) or 8 (Conn8) neighbours.
//   - AllPaths lists every shortest cell path between two cells.
//   - Area returns the cells lying on at least one of those paths, endpoints
//     excluded: the region a port-to-city connection of minimum length may use.
//   - ConnectedComponents groups the cells matching a predicate into contiguous
//     clusters, e.g. the separate networks of laid track.
//   - ToCoreGraph exposes the same adjacency as a *core.Graph[geom.Coordinate].
//
// Complexity:
//
//   - NewGridGraph, ToCoreGraph: O(W×H×d), Memory: O(W×H×d) (d = 4 or 8).
//   - Area:                      O(W×H×d), two breadth-first searches.
//   - AllPaths:                  O(W×H×d + P×L) for P paths of length L. P grows
//     combinatorially with the distance between the endpoints; prefer Area when
//     only the covered cells matter.
//   - ConnectedComponents:       O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:   width or height below 1.
//   - ErrOutOfBounds: a query cell lies outside the grid.
//   - bfs.ErrNoPath:  never for a full grid, but wrapped through when the
//     endpoints are disconnected.
package gridgraph
