package paths_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ekohilas/train-conductor-world-tools/paths"
	"github.com/ekohilas/train-conductor-world-tools/refdata"
	"github.com/ekohilas/train-conductor-world-tools/track"
	"github.com/ekohilas/train-conductor-world-tools/trackgraph"
	"github.com/ekohilas/train-conductor-world-tools/world"
)

// Tile ids used by the fixtures.
const (
	P  = 1 // port "Harbor"
	C  = 2 // city "Mesa"
	H  = 3
	V  = 4
	UR = 5
	DL = 6
	DR = 7
	UL = 8
	HJ = 9 // HORIZONTAL|DOWN_LEFT junction
)

func reference(distances map[string][]refdata.CityDistance) *refdata.Data {
	return refdata.New(distances, []refdata.TileRecord{
		{TmxID: P, Name: "Harbor", Group: refdata.GroupLocation, Type: "Port"},
		{TmxID: C, Name: "Mesa", Group: refdata.GroupLocation, Type: "City"},
		{TmxID: H, Name: "H", Group: refdata.GroupTrack, PathComponent: track.Horizontal},
		{TmxID: V, Name: "V", Group: refdata.GroupTrack, PathComponent: track.Vertical},
		{TmxID: UR, Name: "UR", Group: refdata.GroupTrack, PathComponent: track.UpRight},
		{TmxID: DL, Name: "DL", Group: refdata.GroupTrack, PathComponent: track.DownLeft},
		{TmxID: DR, Name: "DR", Group: refdata.GroupTrack, PathComponent: track.DownRight},
		{TmxID: UL, Name: "UL", Group: refdata.GroupTrack, PathComponent: track.UpLeft},
		{TmxID: HJ, Name: "HJ", Group: refdata.GroupTrack, PathComponent: track.Horizontal | track.DownLeft},
	}, 0)
}

var harborToMesa = map[string][]refdata.CityDistance{
	"Harbor": {{Name: "Mesa", Distance: 2}},
}

// fixture builds a Paths over a location layer and a track layer of equal size.
func fixture(t *testing.T, locations, tracks [][]int, opts ...paths.Option) *paths.Paths {
	t.Helper()
	ref := reference(harborToMesa)
	w, err := world.FromMatrices(locations, tracks, ref)
	require.NoError(t, err)
	g, err := trackgraph.New(w.TrackMap)
	require.NoError(t, err)
	return paths.New(w.TileMap, ref, g, opts...)
}
