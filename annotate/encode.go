package annotate

import (
	"fmt"

	"github.com/ekohilas/train-conductor-world-tools/geom"
)

// Merge unions the shapes of several paths cell by cell.
func Merge(paths ...PathMap) PathMap {
	out := make(PathMap)
	for _, p := range paths {
		for c, pc := range p {
			out[c] = out[c].Union(pc)
		}
	}
	return out
}

// Encode returns a height×width grid, [y][x], holding for every cell of cp the
// tile registered for (name, shape) and EmptyTileID elsewhere. Cells of cp
// outside the grid are ignored.
func Encode(width, height int, cp PathMap, name string, ids TileIDs) ([][]int, error) {
	grid := make([][]int, height)
	for y := range grid {
		grid[y] = make([]int, width)
		for x := range grid[y] {
			pc, ok := cp[geom.Coordinate{X: x, Y: y}]
			if !ok {
				grid[y][x] = EmptyTileID
				continue
			}
			id, err := ids.TileIDFrom(name, pc)
			if err != nil {
				return nil, fmt.Errorf("annotate: %s at (%d, %d): %w", name, x, y, err)
			}
			grid[y][x] = id
		}
	}
	return grid, nil
}

// Highlight returns a height×width grid with HighlightTileID on cells and
// EmptyTileID elsewhere.
func Highlight(width, height int, cells []geom.Coordinate) [][]int {
	grid := make([][]int, height)
	for y := range grid {
		grid[y] = make([]int, width)
	}
	for _, c := range cells {
		if c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height {
			grid[c.Y][c.X] = HighlightTileID
		}
	}
	return grid
}
