package annotate

import (
	"github.com/ekohilas/train-conductor-world-tools/geom"
	"github.com/ekohilas/train-conductor-world-tools/track"
)

// Tile ids written by the annotators.
const (
	EmptyTileID     = 0
	HighlightTileID = 1
)

// Group layer names.
const (
	AnnotationsGroup     = "Annotations"
	CityConnectionsGroup = "City Connections"
	PortConnectionsGroup = "Port Connections"
	AreasGroup           = "Areas"
)

// PathMap is a connection path per cell: the shapes of track it uses there.
type PathMap = map[geom.Coordinate]track.PathComponent

// TileIDs resolves the tile drawing a shape for a location. *refdata.Data satisfies it.
type TileIDs interface {
	TileIDFrom(name string, pc track.PathComponent) (int, error)
}

// Reference is the reference data the layer assembly walks.
// *refdata.Data satisfies it.
type Reference interface {
	TileIDs
	PortNames() []string
	CityNames() []string
	CityNamesFrom(port string) ([]string, error)
	PortNamesOf(city string) ([]string, error)
}

// PathSource provides resolved connection paths. *paths.Paths satisfies it.
type PathSource interface {
	ConnectionPath(port, city string) (map[geom.Coordinate]track.PathComponent, error)
}

// Locator finds a named location. *world.TileMap satisfies it.
type Locator interface {
	CoordinateOf(name string) (geom.Coordinate, error)
}

// AreaFinder returns the cells between two cells. *gridgraph.GridGraph satisfies it.
type AreaFinder interface {
	Area(from, to geom.Coordinate) ([]geom.Coordinate, error)
}
