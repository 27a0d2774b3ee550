package trackgraph

import (
	"errors"

	"github.com/ekohilas/train-conductor-world-tools/world"
)

// ErrUnknownShape indicates a track tile whose shape has no edge mapping.
var ErrUnknownShape = errors.New("trackgraph: track shape has no edge mapping")

// Grid is the track layer the graph is built from. *world.TileMap satisfies it.
type Grid interface {
	Width() int
	Height() int
	Tiles() []*world.Tile
}

// Option configures graph construction.
type Option func(*options)

type options struct {
	trackless bool
}

// WithTrackless ignores the tiles and joins every pair of edge-nodes of every
// cell, as if each cell held all six shapes. Useful to inspect the free grid.
func WithTrackless() Option {
	return func(o *options) { o.trackless = true }
}
