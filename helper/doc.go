// Package helper runs the conductor pipeline over one map file.
//
// New loads the reference data once. Each UpdateMap call then rebuilds
// everything else from the current file: the tile layers, the track graph, the
// path engine and the cell grid. It logs statistics and validation results and
// saves the annotation layers back into the map. Nothing carries over between
// calls, so a watcher can call UpdateMap after every save.
package helper
