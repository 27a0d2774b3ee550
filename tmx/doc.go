// Package tmx reads and writes the tile layers of a Tiled (.tmx) map.
//
// Only the parts of the format the conductor tools touch are modelled: the map
// size, CSV-encoded tile layers and group layers. Everything else in the file
// (tilesets, object layers, properties) is preserved untouched on Save.
//
// Adding a layer whose name (or id) already exists under the same parent
// replaces its data in place; otherwise the layer is appended with the map's
// nextlayerid, which is then incremented. A group's children are added last to
// first so that Tiled lists them in their given order.
//
// Errors:
//
//   - ErrLayerNotFound:     no layer with the requested name.
//   - ErrDimensionMismatch: a tile layer whose size differs from the map's.
//   - ErrMalformed:         missing attributes or unparsable CSV data.
package tmx
