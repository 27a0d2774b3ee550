// Package annotate turns resolved connection paths into tile layers that draw
// them on the map.
//
// Encode is the core step: every cell of a connection path carries the union of
// shapes its track makes there, and the reference data registers one tile per
// (location name, shape) pair that renders it. Cells off the path become
// EmptyTileID. Merge unions several paths first, so a cell where two ports'
// routes into one city meet renders as the matching junction tile.
//
// Annotator assembles the layer tree saved into the map:
//
//	Annotations
//	├── City Connections
//	│   └── <city>             every port's path into the city, merged
//	└── Port Connections
//	    └── <port>
//	        └── <city>         the one port-to-city path
//	Areas
//	└── <port>
//	    └── <city>             HighlightTileID over the cells any minimum route may use
//
// Errors:
//
//   - A (name, shape) pair with no registered tile is returned as an error. It
//     means the tileset lacks a junction the map needs.
package annotate
