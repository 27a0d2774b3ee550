// Package geom holds the value types that place things on the world grid.
//
// What:
//
//   - Coordinate is an integer grid cell (x, y), x growing east and y growing south.
//   - Node is a real-valued point. The track graph uses the four side midpoints of
//     every cell ("edge-nodes") as its vertices:
//
//     ┌─N─┐   N = (x,     y-0.5)
//     │   │   E = (x+0.5, y    )
//     W c E   S = (x,     y+0.5)
//     │   │   W = (x-0.5, y    )
//     └─S─┘
//
//     Neighbouring cells share the edge-node on their common side, which is how a
//     track leaving one cell enters the next.
//
// Determinism:
//
//   - Both types are totally ordered, lexicographically by (x, y). Every slice this
//     package returns is in a fixed order so searches built on top are reproducible.
package geom
