package world

import "fmt"

// World is the terrain layer and the track layer of one map snapshot.
type World struct {
	TileMap  *TileMap
	TrackMap *TileMap
}

// FromMatrices builds both layers. They must have the same size.
func FromMatrices(mapMatrix, trackMatrix [][]int, lookup TileLookup) (*World, error) {
	tiles, err := FromMatrix(mapMatrix, lookup)
	if err != nil {
		return nil, fmt.Errorf("world: map layer: %w", err)
	}
	tracks, err := FromMatrix(trackMatrix, lookup)
	if err != nil {
		return nil, fmt.Errorf("world: track layer: %w", err)
	}
	if tiles.Width() != tracks.Width() || tiles.Height() != tracks.Height() {
		return nil, fmt.Errorf("%w: map %dx%d, tracks %dx%d", ErrSizeMismatch,
			tiles.Width(), tiles.Height(), tracks.Width(), tracks.Height())
	}
	return &World{TileMap: tiles, TrackMap: tracks}, nil
}

// Overlay pairs a track tile with the terrain tile beneath it (nil if none).
type Overlay struct {
	Track, Under *Tile
}

// OverlayingTiles returns every track-layer tile with the map tile under it, in
// row-major order.
func (w *World) OverlayingTiles() []Overlay {
	tracks := w.TrackMap.Tiles()
	out := make([]Overlay, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, Overlay{Track: t, Under: w.TileMap.At(t.Coordinate)})
	}
	return out
}
