// Package trackgraph builds the graph that shortest track paths are searched on.
//
// What:
//
//   - Every cell of the track layer contributes its four edge-nodes as vertices,
//     whether or not it holds track, so trackless cells still exist in the graph.
//   - Every Track tile contributes one edge per shape it carries, e.g. a junction
//     with VERTICAL|UP_RIGHT joins north↔south and north↔east of its cell.
//   - Two tracks meet when neighbouring cells share an edge-node on their common
//     side.
//
//	┌─N─┐   N = (x,     y-0.5)
//	│   │   E = (x+0.5, y    )
//	W c E   S = (x,     y+0.5)
//	│   │   W = (x-0.5, y    )
//	└─S─┘
//
// The graph is immutable once built.
//
// Errors:
//
//   - ErrUnknownShape: a track tile carries bits outside the six shapes.
package trackgraph
