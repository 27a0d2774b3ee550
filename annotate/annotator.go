package annotate

import (
	"fmt"

	"github.com/ekohilas/train-conductor-world-tools/logging"
	"github.com/ekohilas/train-conductor-world-tools/tmx"
)

// Annotator builds annotation layers for a width×height map.
type Annotator struct {
	width, height int
	ref           Reference
	paths         PathSource
}

// New returns an Annotator drawing the paths of p with the tiles of ref.
func New(width, height int, ref Reference, p PathSource) *Annotator {
	return &Annotator{width: width, height: height, ref: ref, paths: p}
}

// ConnectionsLayer builds the "Annotations" group.
func (a *Annotator) ConnectionsLayer() (*tmx.GroupLayer, error) {
	logging.Infof("Creating layers...")
	cities, err := a.cityConnections()
	if err != nil {
		return nil, err
	}
	ports, err := a.portConnections()
	if err != nil {
		return nil, err
	}
	return group(AnnotationsGroup, cities, ports), nil
}

func (a *Annotator) cityConnections() (*tmx.GroupLayer, error) {
	g := group(CityConnectionsGroup)
	for _, city := range a.ref.CityNames() {
		ports, err := a.ref.PortNamesOf(city)
		if err != nil {
			return nil, err
		}
		merged := make(PathMap)
		for _, port := range ports {
			cp, err := a.paths.ConnectionPath(port, city)
			if err != nil {
				return nil, err
			}
			merged = Merge(merged, cp)
		}
		l, err := a.tileLayer(city, merged, city)
		if err != nil {
			return nil, err
		}
		g.Layers = append(g.Layers, l)
	}
	return g, nil
}

func (a *Annotator) portConnections() (*tmx.GroupLayer, error) {
	g := group(PortConnectionsGroup)
	for _, port := range a.ref.PortNames() {
		cities, err := a.ref.CityNamesFrom(port)
		if err != nil {
			return nil, err
		}
		pg := group(port)
		for _, city := range cities {
			cp, err := a.paths.ConnectionPath(port, city)
			if err != nil {
				return nil, err
			}
			l, err := a.tileLayer(city, cp, city)
			if err != nil {
				return nil, fmt.Errorf("port %s: %w", port, err)
			}
			pg.Layers = append(pg.Layers, l)
		}
		g.Layers = append(g.Layers, pg)
	}
	return g, nil
}

// AreasLayer builds the "Areas" group: per port, per city, the cells of every
// minimum grid route between the two, ignoring track.
func (a *Annotator) AreasLayer(locs Locator, areas AreaFinder) (*tmx.GroupLayer, error) {
	g := group(AreasGroup)
	for _, port := range a.ref.PortNames() {
		from, err := locs.CoordinateOf(port)
		if err != nil {
			return nil, err
		}
		cities, err := a.ref.CityNamesFrom(port)
		if err != nil {
			return nil, err
		}
		pg := group(port)
		for _, city := range cities {
			to, err := locs.CoordinateOf(city)
			if err != nil {
				return nil, err
			}
			cells, err := areas.Area(from, to)
			if err != nil {
				return nil, fmt.Errorf("annotate: area %s -> %s: %w", port, city, err)
			}
			pg.Layers = append(pg.Layers, &tmx.TileLayer{
				Name:   city,
				Locked: true,
				Data:   Highlight(a.width, a.height, cells),
			})
		}
		g.Layers = append(g.Layers, pg)
	}
	return g, nil
}

func (a *Annotator) tileLayer(layerName string, cp PathMap, tileName string) (*tmx.TileLayer, error) {
	data, err := Encode(a.width, a.height, cp, tileName, a.ref)
	if err != nil {
		return nil, err
	}
	return &tmx.TileLayer{Name: layerName, Locked: true, Data: data}, nil
}

func group(name string, layers ...tmx.Layer) *tmx.GroupLayer {
	return &tmx.GroupLayer{Name: name, Locked: true, Layers: layers}
}
