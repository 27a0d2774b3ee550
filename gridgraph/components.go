package gridgraph

import (
	"slices"

	"github.com/ekohilas/train-conductor-world-tools/geom"
)

// ConnectedComponents finds every contiguous region of cells for which keep
// returns true, according to gg.Conn connectivity.
// Each component is sorted, and components are ordered by their smallest cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents(keep func(geom.Coordinate) bool) [][]geom.Coordinate {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]geom.Coordinate

	// x-major scan, so each component is discovered from its smallest cell
	for x := 0; x < gg.Width; x++ {
		for y := 0; y < gg.Height; y++ {
			c0 := geom.Coordinate{X: x, Y: y}
			if seen[gg.index(c0)] || !keep(c0) {
				continue
			}
			// BFS to collect component
			queue := []geom.Coordinate{c0}
			seen[gg.index(c0)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, v := range gg.Neighbors(queue[qi]) {
					vi := gg.index(v)
					if seen[vi] || !keep(v) {
						continue
					}
					seen[vi] = true
					queue = append(queue, v)
				}
			}
			slices.SortFunc(queue, geom.Coordinate.Compare)
			comps = append(comps, queue)
		}
	}
	return comps
}

// index maps c to a row-major index: y*Width + x.
func (gg *GridGraph) index(c geom.Coordinate) int {
	return c.Y*gg.Width + c.X
}
