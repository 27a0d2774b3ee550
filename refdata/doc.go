// Package refdata loads the world reference data: the expected port-to-city
// distances and the tileset description.
//
// What:
//
//   - distances JSON maps each port name to an ordered list of
//     {"name": <city>, "distance": <edges>}; only the first portLimit entries per
//     port are kept.
//   - tiles JSON is an array of tileset entries ({"tmx_id", "name", "group", ...}
//     plus one boolean per track shape). Entries of group "Connection" register
//     the annotation tile for a (city, shape) pair, keyed by their "type".
//   - Both files are validated against embedded JSON schemas before decoding.
//
// All lookups are read-only after construction. Ordering is deterministic:
// PortNames follows the distances file (sorted by name when built with New),
// CityNamesFrom is ordered by distance with ties in file order, PortNamesOf
// follows PortNames and CityNames is sorted.
//
// Errors:
//
//   - ErrSchema:            a file does not match its schema.
//   - ErrUnknownPort:       no distances are declared for the port.
//   - ErrUnknownCity:       the city is not reachable from the port (or any port).
//   - ErrUnknownTile:       no tileset entry has the tile id.
//   - ErrUnknownConnection: no Connection tile is registered for (name, shape).
package refdata
