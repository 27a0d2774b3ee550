// Package track describes the shape a piece of track traces through one grid cell
// and the graph edge that shape corresponds to.
//
// What:
//
//   - PathComponent is a bit set over six shapes. A tile stores the union of every
//     shape drawn on it (a junction carries several), while an Edge always has
//     exactly one.
//
//     VERTICAL  HORIZONTAL  UP_RIGHT  DOWN_LEFT  DOWN_RIGHT  UP_LEFT
//     ┌─N─┐     ┌───┐       ┌─N─┐     ┌───┐      ┌───┐       ┌─N─┐
//     │ │ │     W───E       │ └─E     W─┐ │      │ ┌─E       W─┘ │
//     └─S─┘     └───┘       └───┘     └─S─┘      └─S─┘       └───┘
//
//   - Edge is an unordered pair of edge-nodes of one cell, stored smaller node first.
//     Its Coordinate is the cell it crosses and its PathComponent the shape it draws.
//   - EdgeFor is the inverse: the Edge a single shape produces in a given cell.
//
// Errors:
//
//   - ErrInvalidEdge: the two nodes are not two distinct sides of one cell.
//   - ErrNotSingle:   a single shape was required but zero or several bits are set.
package track
