package refdata

import (
	"bytes"
	"cmp"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ekohilas/train-conductor-world-tools/logging"
	"github.com/ekohilas/train-conductor-world-tools/track"
)

//go:embed schema/*.json
var schemaFS embed.FS

var (
	distancesSchema = mustCompile("schema/distances.json")
	tilesSchema     = mustCompile("schema/tiles.json")
)

func mustCompile(name string) *jsonschema.Schema {
	b, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return jsonschema.MustCompileString(name, string(b))
}

// Data holds the distance tables and the tileset, indexed for lookup.
type Data struct {
	distances    map[string]map[string]int
	citiesFrom   map[string][]string
	portsOf      map[string][]string
	portNames    []string
	cityNames    []string
	tiles        map[int]TileRecord
	connectionID map[connectionKey]int
}

// Load reads and validates the distances and tiles files. Ports and the cities
// of each port keep their file order, cities then sorted by distance.
func Load(distancesPath, tilesPath string, portLimit int) (*Data, error) {
	var distances map[string][]CityDistance
	b, err := readValidated(distancesPath, distancesSchema, &distances)
	if err != nil {
		return nil, err
	}
	ports, err := objectKeys(b)
	if err != nil {
		return nil, fmt.Errorf("refdata: reading port order of %s: %w", distancesPath, err)
	}
	var tiles []TileRecord
	if _, err = readValidated(tilesPath, tilesSchema, &tiles); err != nil {
		return nil, err
	}
	d := newData(ports, distances, tiles, portLimit)
	logging.Debugf("Loaded %d ports, %d cities and %d tiles.", len(d.portNames), len(d.cityNames), len(d.tiles))
	return d, nil
}

func readValidated(path string, sch *jsonschema.Schema, dst any) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("refdata: %w", err)
	}
	var v interface{}
	if err = json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("refdata: parsing %s: %w", path, err)
	}
	if err = sch.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSchema, path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err = dec.Decode(dst); err != nil {
		return nil, fmt.Errorf("refdata: decoding %s: %w", path, err)
	}
	return b, nil
}

// objectKeys returns the keys of the top-level JSON object in b, in document
// order, each once.
func objectKeys(b []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var keys []string
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		var skip json.RawMessage
		if err = dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// New indexes already decoded reference data. Ports are sorted by name since a
// map carries no order. A portLimit <= 0 keeps every entry.
func New(distances map[string][]CityDistance, tiles []TileRecord, portLimit int) *Data {
	ports := make([]string, 0, len(distances))
	for port := range distances {
		ports = append(ports, port)
	}
	sort.Strings(ports)
	return newData(ports, distances, tiles, portLimit)
}

func newData(ports []string, distances map[string][]CityDistance, tiles []TileRecord, portLimit int) *Data {
	d := &Data{
		distances:    make(map[string]map[string]int, len(distances)),
		citiesFrom:   make(map[string][]string, len(distances)),
		portsOf:      make(map[string][]string),
		tiles:        make(map[int]TileRecord, len(tiles)),
		connectionID: make(map[connectionKey]int),
	}

	for _, port := range ports {
		list, ok := distances[port]
		if !ok {
			continue
		}
		if portLimit > 0 && len(list) > portLimit {
			list = list[:portLimit]
		}
		table := make(map[string]int, len(list))
		cities := make([]string, 0, len(list))
		for _, cd := range list {
			if _, dup := table[cd.Name]; !dup {
				cities = append(cities, cd.Name)
			}
			table[cd.Name] = cd.Distance
		}
		// Equal distances keep their file order.
		slices.SortStableFunc(cities, func(a, b string) int {
			return cmp.Compare(table[a], table[b])
		})
		d.distances[port] = table
		d.citiesFrom[port] = cities
		d.portNames = append(d.portNames, port)
		for _, city := range cities {
			d.portsOf[city] = append(d.portsOf[city], port)
		}
	}
	for city := range d.portsOf {
		d.cityNames = append(d.cityNames, city)
	}
	sort.Strings(d.cityNames)

	for _, t := range tiles {
		d.tiles[t.TmxID] = t
		if t.Group == GroupConnection && t.Type != "" {
			d.connectionID[connectionKey{name: t.Type, shape: t.PathComponent}] = t.TmxID
		}
	}
	return d
}

// DistanceBetween returns the expected distance from port to city.
func (d *Data) DistanceBetween(port, city string) (int, error) {
	table, ok := d.distances[port]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPort, port)
	}
	dist, ok := table[city]
	if !ok {
		return 0, fmt.Errorf("%w: %q from %q", ErrUnknownCity, city, port)
	}
	return dist, nil
}

// CityNamesFrom returns the cities port must reach, nearest first. Cities at
// the same distance keep their distances-file order.
func (d *Data) CityNamesFrom(port string) ([]string, error) {
	cities, ok := d.citiesFrom[port]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPort, port)
	}
	return slices.Clone(cities), nil
}

// PortNamesOf returns the ports that must reach city, in port order.
func (d *Data) PortNamesOf(city string) ([]string, error) {
	ports, ok := d.portsOf[city]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	return slices.Clone(ports), nil
}

// PortNames returns every port in distances-file order.
func (d *Data) PortNames() []string { return slices.Clone(d.portNames) }

// CityNames returns every city reachable from some port, sorted.
func (d *Data) CityNames() []string { return slices.Clone(d.cityNames) }

// PortCityPairs lists every pair to connect: ports in order, cities nearest first.
func (d *Data) PortCityPairs() []PortCity {
	var out []PortCity
	for _, port := range d.portNames {
		for _, city := range d.citiesFrom[port] {
			out = append(out, PortCity{Port: port, City: city})
		}
	}
	return out
}

// DataOf returns the tileset entry of tileID.
func (d *Data) DataOf(tileID int) (TileRecord, error) {
	t, ok := d.tiles[tileID]
	if !ok {
		return TileRecord{}, fmt.Errorf("%w: %d", ErrUnknownTile, tileID)
	}
	return t, nil
}

// TileIDFrom returns the Connection tile drawing shape pc for location name.
func (d *Data) TileIDFrom(name string, pc track.PathComponent) (int, error) {
	id, ok := d.connectionID[connectionKey{name: name, shape: pc}]
	if !ok {
		return 0, fmt.Errorf("%w: %q %s", ErrUnknownConnection, name, pc)
	}
	return id, nil
}
