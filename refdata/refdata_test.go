package refdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekohilas/train-conductor-world-tools/refdata"
	"github.com/ekohilas/train-conductor-world-tools/track"
)

const distancesJSON = `{
  "Harbor": [
    {"name": "Zion", "distance": 4},
    {"name": "Apex", "distance": 4},
    {"name": "Mesa", "distance": 2},
    {"name": "Far", "distance": 9}
  ],
  "Bay": [
    {"name": "Mesa", "distance": 3}
  ]
}`

const tilesJSON = `[
  {"tmx_id": 1, "name": "Highlight", "group": "Annotation"},
  {"tmx_id": 2, "name": "Grass", "abbreviation": "G", "group": "Terrain"},
  {"tmx_id": "3", "name": "Straight", "abbreviation": "S", "group": "Track",
   "type": "Normal", "overlays": ["Grass"], "horizontal": true, "vertical": false},
  {"tmx_id": 4, "name": "Junction", "abbreviation": "J", "group": "Track",
   "branching": true, "vertical": true, "up_right": true},
  {"tmx_id": 10, "name": "Mesa H", "group": "Connection", "type": "Mesa", "horizontal": true},
  {"tmx_id": 11, "name": "Mesa V+UR", "group": "Connection", "type": "Mesa",
   "vertical": true, "up_right": true}
]`

func writeFiles(t *testing.T, distances, tiles string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dp := filepath.Join(dir, "distances.json")
	tp := filepath.Join(dir, "tiles.json")
	require.NoError(t, os.WriteFile(dp, []byte(distances), 0o644))
	require.NoError(t, os.WriteFile(tp, []byte(tiles), 0o644))
	return dp, tp
}

func load(t *testing.T, portLimit int) *refdata.Data {
	t.Helper()
	dp, tp := writeFiles(t, distancesJSON, tilesJSON)
	d, err := refdata.Load(dp, tp, portLimit)
	require.NoError(t, err)
	return d
}

func TestLoad_PortLimitAndOrdering(t *testing.T) {
	d := load(t, 3)

	assert.Equal(t, []string{"Harbor", "Bay"}, d.PortNames(), "file order")
	assert.Equal(t, []string{"Apex", "Mesa", "Zion"}, d.CityNames())

	cities, err := d.CityNamesFrom("Harbor")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mesa", "Zion", "Apex"}, cities, "nearest first, ties in file order, Far dropped")

	ports, err := d.PortNamesOf("Mesa")
	require.NoError(t, err)
	assert.Equal(t, []string{"Harbor", "Bay"}, ports)

	assert.Equal(t, []refdata.PortCity{
		{Port: "Harbor", City: "Mesa"},
		{Port: "Harbor", City: "Zion"},
		{Port: "Harbor", City: "Apex"},
		{Port: "Bay", City: "Mesa"},
	}, d.PortCityPairs())

	dist, err := d.DistanceBetween("Bay", "Mesa")
	require.NoError(t, err)
	assert.Equal(t, 3, dist)
}

func TestLoad_TiesKeepFileOrder(t *testing.T) {
	dp, tp := writeFiles(t, `{
  "West": [{"name": "B", "distance": 1}, {"name": "A", "distance": 1}],
  "East": [{"name": "A", "distance": 1}, {"name": "B", "distance": 1}],
  "Mid":  [{"name": "A", "distance": 2}]
}`, tilesJSON)
	d, err := refdata.Load(dp, tp, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"West", "East", "Mid"}, d.PortNames())
	west, err := d.CityNamesFrom("West")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, west)
	east, err := d.CityNamesFrom("East")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, east)

	ports, err := d.PortNamesOf("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"West", "East", "Mid"}, ports)
}

func TestLoad_NoLimit(t *testing.T) {
	d := load(t, 0)
	cities, err := d.CityNamesFrom("Harbor")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mesa", "Zion", "Apex", "Far"}, cities)
}

func TestLookupErrors(t *testing.T) {
	d := load(t, 3)

	_, err := d.DistanceBetween("Nowhere", "Mesa")
	assert.ErrorIs(t, err, refdata.ErrUnknownPort)
	_, err = d.DistanceBetween("Harbor", "Far")
	assert.ErrorIs(t, err, refdata.ErrUnknownCity)
	_, err = d.CityNamesFrom("Nowhere")
	assert.ErrorIs(t, err, refdata.ErrUnknownPort)
	_, err = d.PortNamesOf("Far")
	assert.ErrorIs(t, err, refdata.ErrUnknownCity)
	_, err = d.DataOf(99)
	assert.ErrorIs(t, err, refdata.ErrUnknownTile)
	_, err = d.TileIDFrom("Mesa", track.UpLeft)
	assert.ErrorIs(t, err, refdata.ErrUnknownConnection)
}

func TestTiles(t *testing.T) {
	d := load(t, 3)

	straight, err := d.DataOf(3)
	require.NoError(t, err)
	assert.Equal(t, "Straight", straight.Name)
	assert.Equal(t, refdata.GroupTrack, straight.Group)
	assert.Equal(t, track.Horizontal, straight.PathComponent)
	assert.Equal(t, []string{"Grass"}, straight.Overlays)

	junction, err := d.DataOf(4)
	require.NoError(t, err)
	assert.True(t, junction.Branching)
	assert.Equal(t, track.Vertical|track.UpRight, junction.PathComponent)

	grass, err := d.DataOf(2)
	require.NoError(t, err)
	assert.Equal(t, track.None, grass.PathComponent)

	id, err := d.TileIDFrom("Mesa", track.Horizontal)
	require.NoError(t, err)
	assert.Equal(t, 10, id)
	id, err = d.TileIDFrom("Mesa", track.UpRight|track.Vertical)
	require.NoError(t, err)
	assert.Equal(t, 11, id)
}

func TestLoad_SchemaViolations(t *testing.T) {
	cases := []struct {
		name             string
		distances, tiles string
	}{
		{"DistanceNotInteger", `{"P": [{"name": "C", "distance": "far"}]}`, tilesJSON},
		{"DistanceMissingName", `{"P": [{"distance": 1}]}`, tilesJSON},
		{"TilesNotArray", distancesJSON, `{"tmx_id": 1}`},
		{"TileMissingGroup", distancesJSON, `[{"tmx_id": 1, "name": "x"}]`},
		{"TileBadID", distancesJSON, `[{"tmx_id": "x1", "name": "x", "group": "g"}]`},
		{"ShapeNotBool", distancesJSON, `[{"tmx_id": 1, "name": "x", "group": "g", "vertical": 1}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dp, tp := writeFiles(t, tc.distances, tc.tiles)
			_, err := refdata.Load(dp, tp, 8)
			require.ErrorIs(t, err, refdata.ErrSchema)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := refdata.Load(filepath.Join(t.TempDir(), "nope.json"), "also-nope.json", 8)
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	d := refdata.New(
		map[string][]refdata.CityDistance{"P": {{Name: "C", Distance: 1}}},
		[]refdata.TileRecord{{TmxID: 5, Name: "C conn", Group: refdata.GroupConnection, Type: "C", PathComponent: track.Vertical}},
		8,
	)
	id, err := d.TileIDFrom("C", track.Vertical)
	require.NoError(t, err)
	assert.Equal(t, 5, id)

	d = refdata.New(map[string][]refdata.CityDistance{
		"Zed":   {{Name: "C", Distance: 1}},
		"Alpha": {{Name: "C", Distance: 2}},
	}, nil, 0)
	assert.Equal(t, []string{"Alpha", "Zed"}, d.PortNames(), "a map has no order, so ports are sorted")
}
