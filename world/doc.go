// Package world turns the raw tile-id layers of a map into typed tiles.
//
// A World is two aligned TileMaps: the terrain and location layer ("map") and
// the track layer ("tracks"). Tile id 0 is an empty cell. Every other id must be
// known to the reference data.
package world
