// Package paths resolves, for every port and every city it must reach, the
// shortest valid track path between the two locations.
//
// What:
//
//   - A location offers four edge-nodes. For a (port, city) pair every port
//     edge-node is tried against every city edge-node (16 searches), collecting
//     all shortest node paths of each search.
//   - Node paths become edge paths. A path whose two consecutive edges cross the
//     same cell is invalid: it turns around inside a junction.
//   - Among the valid paths only those of globally minimum length are kept. The
//     first of them wins; more than one is a tie, logged and reported.
//   - No valid path leaves the pair disconnected: distance 0, empty path.
//   - Locations sharing a side have a zero-edge minimum path: distance 0 too.
//
// Enumeration order:
//
//	port edge-nodes in Node order (west, north, south, east)
//	  × city edge-nodes in Node order
//	    × shortest node paths of that search, sorted lexicographically
//
// so the winner of a tie is the same on every run.
//
// Resolution is lazy: the first query resolves every pair of the Connections
// and memoizes the result for the lifetime of the Paths value. A Paths value
// serves one immutable map snapshot; build a new one after the map changes.
//
// Errors:
//
//   - ErrUnknownLocation: a port or city name has no location on the map (fatal).
//   - ErrUnknownPair:     a query names a pair the Connections never declared.
package paths
