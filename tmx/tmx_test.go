package tmx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekohilas/train-conductor-world-tools/tmx"
)

// openCopy copies testdata/small.tmx into a temp dir and opens it.
func openCopy(t *testing.T) *tmx.Map {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "small.tmx"))
	require.NoError(t, err)
	fn := filepath.Join(t.TempDir(), "small.tmx")
	require.NoError(t, os.WriteFile(fn, raw, 0o644))
	m, err := tmx.Open(fn)
	require.NoError(t, err)
	return m
}

func TestOpen(t *testing.T) {
	m := openCopy(t)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())

	data, err := m.LayerData("Map")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, 0, 6}, {0, 2, 0}}, data)

	l, err := m.Layer("Tracks")
	require.NoError(t, err)
	tl, ok := l.(*tmx.TileLayer)
	require.True(t, ok)
	assert.Equal(t, 2, tl.ID)
	assert.True(t, tl.Locked)
	assert.Equal(t, [][]int{{0, 9, 0}, {0, 0, 0}}, tl.Data)

	_, err = m.LayerData("Nope")
	require.ErrorIs(t, err, tmx.ErrLayerNotFound)
	_, err = m.Layer("Nope")
	require.ErrorIs(t, err, tmx.ErrLayerNotFound)
}

func TestOpen_Errors(t *testing.T) {
	_, err := tmx.Open(filepath.Join(t.TempDir(), "missing.tmx"))
	require.Error(t, err)

	fn := filepath.Join(t.TempDir(), "bad.tmx")
	require.NoError(t, os.WriteFile(fn, []byte(`<map width="x" height="2"/>`), 0o644))
	_, err = tmx.Open(fn)
	require.ErrorIs(t, err, tmx.ErrMalformed)
}

func TestAddLayer_UpdateInPlace(t *testing.T) {
	m := openCopy(t)
	require.NoError(t, m.SaveLayers(&tmx.TileLayer{Name: "Tracks", Data: [][]int{{1, 1, 1}, {0, 0, 0}}}))

	reopened, err := tmx.Open(m.Filename())
	require.NoError(t, err)
	l, err := reopened.Layer("Tracks")
	require.NoError(t, err)
	tl := l.(*tmx.TileLayer)
	assert.Equal(t, 2, tl.ID, "existing id kept")
	assert.Equal(t, [][]int{{1, 1, 1}, {0, 0, 0}}, tl.Data)
}

func TestAddLayer_GroupAppendsWithNextID(t *testing.T) {
	m := openCopy(t)
	group := &tmx.GroupLayer{
		Name:   "Annotations",
		Locked: true,
		Layers: []tmx.Layer{
			&tmx.TileLayer{Name: "A", Locked: true, Data: [][]int{{1, 0, 0}, {0, 0, 0}}},
			&tmx.TileLayer{Name: "B", Locked: true, Data: [][]int{{0, 1, 0}, {0, 0, 0}}},
		},
	}
	require.NoError(t, m.SaveLayers(group))

	reopened, err := tmx.Open(m.Filename())
	require.NoError(t, err)
	l, err := reopened.Layer("Annotations")
	require.NoError(t, err)
	g := l.(*tmx.GroupLayer)
	assert.Equal(t, 3, g.ID)
	assert.True(t, g.Locked)
	require.Len(t, g.Layers, 2)

	// Children are appended last to first.
	assert.Equal(t, "B", g.Layers[0].LayerName())
	assert.Equal(t, "A", g.Layers[1].LayerName())
	assert.Equal(t, 4, g.Layers[0].(*tmx.TileLayer).ID)
	assert.Equal(t, 5, g.Layers[1].(*tmx.TileLayer).ID)

	// Saving again updates the same layers rather than adding new ones.
	group.Layers[0] = &tmx.TileLayer{Name: "A", Data: [][]int{{0, 0, 0}, {0, 0, 7}}}
	require.NoError(t, reopened.SaveLayers(group))
	again, err := tmx.Open(m.Filename())
	require.NoError(t, err)
	l, err = again.Layer("Annotations")
	require.NoError(t, err)
	g = l.(*tmx.GroupLayer)
	require.Len(t, g.Layers, 2)
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 0, 7}}, g.Layers[1].(*tmx.TileLayer).Data)
}

func TestAddLayer_DimensionMismatch(t *testing.T) {
	m := openCopy(t)
	err := m.AddLayer(&tmx.TileLayer{Name: "Wide", Data: [][]int{{1, 2, 3, 4}, {0, 0, 0, 0}}})
	require.ErrorIs(t, err, tmx.ErrDimensionMismatch)

	err = m.AddLayer(&tmx.GroupLayer{Name: "G", Layers: []tmx.Layer{
		&tmx.TileLayer{Name: "Short", Data: [][]int{{1, 2, 3}}},
	}})
	require.ErrorIs(t, err, tmx.ErrDimensionMismatch)
}

func TestCSV(t *testing.T) {
	grid := [][]int{{1, 2, 3}, {4, 5, 6}}
	s := tmx.EncodeCSV(grid)
	assert.Equal(t, "\n1,2,3,\n4,5,6\n", s)

	back, err := tmx.DecodeCSV(s)
	require.NoError(t, err)
	assert.Equal(t, grid, back)

	_, err = tmx.DecodeCSV("1,x,3")
	require.ErrorIs(t, err, tmx.ErrMalformed)
}
