package world

import (
	"fmt"

	"github.com/ekohilas/train-conductor-world-tools/geom"
	"github.com/ekohilas/train-conductor-world-tools/refdata"
)

// TileLookup resolves a tile id to its tileset entry. *refdata.Data satisfies it.
type TileLookup interface {
	DataOf(tileID int) (refdata.TileRecord, error)
}

// TileMap is a rectangular grid of optional tiles, indexed grid[y][x].
type TileMap struct {
	grid      [][]*Tile
	width     int
	height    int
	locations map[string]geom.Coordinate
}

// Width returns the common row length of matrix, or ErrNonRectangular naming the
// first row that differs from the one before it.
func Width(matrix [][]int) (int, error) {
	if len(matrix) == 0 {
		return 0, nil
	}
	for y := 1; y < len(matrix); y++ {
		if prev, cur := len(matrix[y-1]), len(matrix[y]); cur != prev {
			return 0, fmt.Errorf("%w: row %d has %d cells, row %d has %d", ErrNonRectangular, y, prev, y+1, cur)
		}
	}
	return len(matrix[0]), nil
}

// FromMatrix builds a TileMap from tile ids. Id 0 leaves the cell empty; any
// other unknown id is an error.
func FromMatrix(matrix [][]int, lookup TileLookup) (*TileMap, error) {
	w, err := Width(matrix)
	if err != nil {
		return nil, err
	}
	m := &TileMap{
		grid:      make([][]*Tile, len(matrix)),
		width:     w,
		height:    len(matrix),
		locations: make(map[string]geom.Coordinate),
	}
	for y, row := range matrix {
		m.grid[y] = make([]*Tile, w)
		for x, id := range row {
			if id == EmptyTileID {
				continue
			}
			rec, err := lookup.DataOf(id)
			if err != nil {
				return nil, fmt.Errorf("world: tile at (%d, %d): %w", x, y, err)
			}
			t := NewTile(rec, geom.Coordinate{X: x, Y: y})
			m.grid[y][x] = t
			if t.IsLocation() {
				m.locations[t.Name] = t.Coordinate
			}
		}
	}
	return m, nil
}

func (m *TileMap) Width() int  { return m.width }
func (m *TileMap) Height() int { return m.height }

// InBounds reports whether c lies on the map.
func (m *TileMap) InBounds(c geom.Coordinate) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// At returns the tile at c, or nil for an empty or out-of-bounds cell.
func (m *TileMap) At(c geom.Coordinate) *Tile {
	if !m.InBounds(c) {
		return nil
	}
	return m.grid[c.Y][c.X]
}

// Tiles returns every non-empty tile in row-major order.
func (m *TileMap) Tiles() []*Tile {
	var out []*Tile
	for _, row := range m.grid {
		for _, t := range row {
			if t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// Len returns the number of non-empty tiles.
func (m *TileMap) Len() int { return len(m.Tiles()) }

// CoordinateOf returns where the Location tile called name sits.
func (m *TileMap) CoordinateOf(name string) (geom.Coordinate, error) {
	c, ok := m.locations[name]
	if !ok {
		return geom.Coordinate{}, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}
	return c, nil
}

// Matrix returns the tile ids of the map, 0 for empty cells.
func (m *TileMap) Matrix() [][]int {
	out := make([][]int, m.height)
	for y, row := range m.grid {
		out[y] = make([]int, m.width)
		for x, t := range row {
			if t != nil {
				out[y][x] = t.ID
			}
		}
	}
	return out
}
