package tmx

import (
	"errors"
)

// Sentinel errors for TMX access.
var (
	ErrLayerNotFound     = errors.New("tmx: layer not found")
	ErrDimensionMismatch = errors.New("tmx: layer size does not match map size")
	ErrMalformed         = errors.New("tmx: malformed map")
)

const (
	nextLayerIDAttr = "nextlayerid"
	tagTileLayer    = "layer"
	tagGroupLayer   = "group"
)

// Layer is a TileLayer or a GroupLayer.
type Layer interface {
	LayerName() string
	layerID() int
}

// TileLayer is a grid of tile ids, Data[y][x]. An ID of 0 means not yet saved.
type TileLayer struct {
	ID     int
	Name   string
	Locked bool
	Data   [][]int
}

// GroupLayer nests other layers.
type GroupLayer struct {
	ID     int
	Name   string
	Locked bool
	Layers []Layer
}

func (l *TileLayer) LayerName() string  { return l.Name }
func (l *TileLayer) layerID() int       { return l.ID }
func (l *GroupLayer) LayerName() string { return l.Name }
func (l *GroupLayer) layerID() int      { return l.ID }

// Width is the length of the first row, 0 for an empty layer.
func (l *TileLayer) Width() int {
	if len(l.Data) == 0 {
		return 0
	}
	return len(l.Data[0])
}

// Height is the number of rows.
func (l *TileLayer) Height() int { return len(l.Data) }
