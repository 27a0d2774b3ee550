package world

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ekohilas/train-conductor-world-tools/geom"
	"github.com/ekohilas/train-conductor-world-tools/refdata"
	"github.com/ekohilas/train-conductor-world-tools/track"
)

// Sentinel errors for tile maps.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("world: all rows must have the same length")

	// ErrUnknownLocation indicates a location name with no tile on the map.
	ErrUnknownLocation = errors.New("world: unknown location")

	// ErrNotTrack indicates a placement check on a tile that is not a track.
	ErrNotTrack = errors.New("world: tile is not a track")

	// ErrSizeMismatch indicates map and track layers of different sizes.
	ErrSizeMismatch = errors.New("world: layers differ in size")
)

// EmptyTileID marks a cell without a tile.
const EmptyTileID = 0

// Terrain names a track may never sit on, and the one a branching track may not.
const (
	transparentType = "Transparent"
	cloudName       = "Cloud"
	mountainName    = "Mountain"
	waterName       = "Water"
)

// Tile is one placed tile.
type Tile struct {
	ID            int
	Name          string
	Abbreviation  string
	Coordinate    geom.Coordinate
	Group         string
	Type          string
	Branching     bool
	Overlays      []string
	PathComponent track.PathComponent
}

// NewTile builds the tile placed at c from its tileset entry.
func NewTile(rec refdata.TileRecord, c geom.Coordinate) *Tile {
	return &Tile{
		ID:            rec.TmxID,
		Name:          rec.Name,
		Abbreviation:  rec.Abbreviation,
		Coordinate:    c,
		Group:         rec.Group,
		Type:          rec.Type,
		Branching:     rec.Branching,
		Overlays:      slices.Clone(rec.Overlays),
		PathComponent: rec.PathComponent,
	}
}

// IsTrack reports whether the tile belongs to the Track group.
func (t *Tile) IsTrack() bool { return t.Group == refdata.GroupTrack }

// IsLocation reports whether the tile is a named port or city.
func (t *Tile) IsLocation() bool { return t.Group == refdata.GroupLocation }

// PlaceableOn reports whether track tile t may sit on terrain tile under, which
// is nil for an empty cell. A non-transparent track must list the terrain in its
// overlays. Nothing sits on clouds or mountains. A branching track never sits on
// water.
func (t *Tile) PlaceableOn(under *Tile) (bool, error) {
	if !t.IsTrack() {
		return false, fmt.Errorf("%w: %v", ErrNotTrack, t)
	}
	name := ""
	if under != nil {
		name = under.Name
	}
	switch {
	case t.Type != transparentType && !slices.Contains(t.Overlays, name):
		return false, nil
	case name == cloudName || name == mountainName:
		return false, nil
	case t.Branching && name == waterName:
		return false, nil
	}
	return true, nil
}

func (t *Tile) String() string {
	return fmt.Sprintf("%s(%d) at %v", t.Name, t.ID, t.Coordinate)
}
