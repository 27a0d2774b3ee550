package paths_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekohilas/train-conductor-world-tools/geom"
	"github.com/ekohilas/train-conductor-world-tools/logging"
	"github.com/ekohilas/train-conductor-world-tools/paths"
	"github.com/ekohilas/train-conductor-world-tools/track"
)

type pathMap = map[geom.Coordinate]track.PathComponent

// TestStraightTrack_SharedEdgeNodes has track under both locations as well as
// between them: the port's east side and the city's west side are one cell
// apart, so the middle track alone connects them.
func TestStraightTrack_SharedEdgeNodes(t *testing.T) {
	p := fixture(t,
		[][]int{{P, 0, C}},
		[][]int{{H, H, H}},
	)
	d, err := p.DistanceBetween("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	cp, err := p.ConnectionPath("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Equal(t, pathMap{{X: 1, Y: 0}: track.Horizontal}, cp)

	unused, err := p.UnusedEdges()
	require.NoError(t, err)
	require.Len(t, unused, 2)
	assert.Equal(t, geom.Coordinate{X: 0, Y: 0}, unused[0].Coordinate())
	assert.Equal(t, geom.Coordinate{X: 2, Y: 0}, unused[1].Coordinate())
}

func TestStraightTrack_TwoCells(t *testing.T) {
	p := fixture(t,
		[][]int{{P, 0, 0, C}},
		[][]int{{0, H, H, 0}},
	)
	d, err := p.DistanceBetween("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	cp, err := p.ConnectionPath("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Equal(t, pathMap{{X: 1, Y: 0}: track.Horizontal, {X: 2, Y: 0}: track.Horizontal}, cp)

	unused, err := p.UnusedEdges()
	require.NoError(t, err)
	assert.Empty(t, unused)

	diags, err := p.Diagnostics()
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestNoTrack_Disconnected(t *testing.T) {
	p := fixture(t,
		[][]int{{P, 0, C}},
		[][]int{{0, 0, 0}},
	)
	d, err := p.DistanceBetween("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	cp, err := p.ConnectionPath("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Empty(t, cp)

	r, err := p.Resolve("Harbor", "Mesa")
	require.NoError(t, err)
	assert.False(t, r.Connected())
	assert.Empty(t, r.Candidates)

	diags, err := p.Diagnostics()
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, paths.DiagnosticDisconnected, diags[0].Kind)
	assert.Equal(t, "Harbor -> Mesa: disconnected", diags[0].String())
}

// TestAdjacentLocations_ZeroEdgePathWins places the city right next to the port
// with a detour of track below them. The shared side is a zero-edge path, so
// the detour is never taken.
//
//	P C
//	└─┘
func TestAdjacentLocations_ZeroEdgePathWins(t *testing.T) {
	p := fixture(t,
		[][]int{
			{P, C},
			{0, 0},
		},
		[][]int{
			{0, 0},
			{UR, UL},
		},
	)
	d, err := p.DistanceBetween("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	cp, err := p.ConnectionPath("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Empty(t, cp)

	r, err := p.Resolve("Harbor", "Mesa")
	require.NoError(t, err)
	assert.False(t, r.Connected())
	require.Len(t, r.Candidates, 1)
	assert.Empty(t, r.Candidates[0])

	unused, err := p.UnusedEdges()
	require.NoError(t, err)
	require.Len(t, unused, 2)
	assert.Equal(t, geom.Coordinate{X: 0, Y: 1}, unused[0].Coordinate())
	assert.Equal(t, track.UpRight, unused[0].PathComponent())
	assert.Equal(t, geom.Coordinate{X: 1, Y: 1}, unused[1].Coordinate())
	assert.Equal(t, track.UpLeft, unused[1].PathComponent())

	diags, err := p.Diagnostics()
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, paths.DiagnosticDisconnected, diags[0].Kind)
}

// Two routes of three cells around an empty middle cell:
//
//	┌─┐ P ┌─┐
//	│       │
//	└─┘ C └─┘
var (
	ringLocations = [][]int{
		{0, P, 0},
		{0, 0, 0},
		{0, C, 0},
	}
	ringTracks = [][]int{
		{DR, 0, DL},
		{V, 0, V},
		{UR, 0, UL},
	}
	leftRoute = pathMap{
		{X: 0, Y: 0}: track.DownRight,
		{X: 0, Y: 1}: track.Vertical,
		{X: 0, Y: 2}: track.UpRight,
	}
	rightRoute = pathMap{
		{X: 2, Y: 0}: track.DownLeft,
		{X: 2, Y: 1}: track.Vertical,
		{X: 2, Y: 2}: track.UpLeft,
	}
)

func toPathMap(edges []track.Edge) pathMap {
	out := make(pathMap, len(edges))
	for _, e := range edges {
		out[e.Coordinate()] = e.PathComponent()
	}
	return out
}

func TestTie_BothCandidatesFirstWins(t *testing.T) {
	rec := &logging.Recorder{}
	p := fixture(t, ringLocations, ringTracks, paths.WithLogger(rec))

	candidates, err := p.ValidMinPaths("Harbor", "Mesa")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, leftRoute, toPathMap(candidates[0]))
	assert.Equal(t, rightRoute, toPathMap(candidates[1]))

	cp, err := p.ConnectionPath("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Equal(t, leftRoute, cp, "the west edge-node of the port is enumerated first")

	assert.True(t, rec.Contains(logging.WarningMode, "More than one minimum path found from Harbor -> Mesa"))

	diags, err := p.Diagnostics()
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, paths.DiagnosticTie, diags[0].Kind)
	assert.Len(t, diags[0].Candidates, 2)

	unused, err := p.UnusedEdges()
	require.NoError(t, err)
	assert.Equal(t, rightRoute, toPathMap(unused))
}

func TestTie_Deterministic(t *testing.T) {
	var first pathMap
	for i := 0; i < 10; i++ {
		p := fixture(t, ringLocations, ringTracks, paths.WithLogger(&logging.Recorder{}))
		cp, err := p.ConnectionPath("Harbor", "Mesa")
		require.NoError(t, err)
		if i == 0 {
			first = cp
			continue
		}
		require.Equal(t, first, cp, "run %d", i)
	}
}

// TestValidity_TurnInsideJunctionExcluded lays a HORIZONTAL|DOWN_LEFT junction
// whose only route from the port to the city enters from the east and leaves
// south, reversing inside the junction cell.
//
//	  ╶─┐ P
//	    C
func TestValidity_TurnInsideJunctionExcluded(t *testing.T) {
	p := fixture(t,
		[][]int{
			{0, 0, P},
			{0, C, 0},
		},
		[][]int{
			{0, HJ, 0},
			{0, 0, 0},
		},
	)
	candidates, err := p.ValidMinPaths("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Empty(t, candidates)

	d, err := p.DistanceBetween("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestIsValidPath(t *testing.T) {
	c := geom.Coordinate{X: 1, Y: 0}
	reverse := []track.Edge{
		track.MustEdge(c.East(), c.West()),
		track.MustEdge(c.West(), c.South()),
	}
	assert.False(t, paths.IsValidPath(reverse))
	assert.True(t, paths.IsValidPath(reverse[:1]))
	assert.True(t, paths.IsValidPath(nil))

	next := c.Neighbor(geom.East)
	straight := []track.Edge{
		track.MustEdge(c.West(), c.East()),
		track.MustEdge(next.West(), next.East()),
	}
	assert.True(t, paths.IsValidPath(straight))
}

func TestConnectionPath_Memoized(t *testing.T) {
	p := fixture(t,
		[][]int{{P, 0, 0, C}},
		[][]int{{0, H, H, 0}},
	)
	first, err := p.ConnectionPath("Harbor", "Mesa")
	require.NoError(t, err)
	first[geom.Coordinate{X: 9, Y: 9}] = track.All

	second, err := p.ConnectionPath("Harbor", "Mesa")
	require.NoError(t, err)
	assert.Equal(t, pathMap{{X: 1, Y: 0}: track.Horizontal, {X: 2, Y: 0}: track.Horizontal}, second)

	hits, misses := p.CacheStats()
	assert.Equal(t, 0, hits)
	assert.Equal(t, 1, misses, "one search per location pair, however often it is queried")
}

// TestConnectionPath_RoundTrip re-derives the edge of a one-cell path from its
// shape and checks it matches the resolved edge.
func TestConnectionPath_RoundTrip(t *testing.T) {
	p := fixture(t,
		[][]int{{P, 0, C}},
		[][]int{{0, H, 0}},
	)
	r, err := p.Resolve("Harbor", "Mesa")
	require.NoError(t, err)
	require.Len(t, r.Path, 1)

	cp, err := p.ConnectionPath("Harbor", "Mesa")
	require.NoError(t, err)
	for c, pc := range cp {
		e, err := track.EdgeFor(c, pc)
		require.NoError(t, err)
		assert.Equal(t, r.Path[0], e)
		assert.Equal(t, r.Path[0].PathComponent(), e.PathComponent())
	}
}

func TestErrors(t *testing.T) {
	p := fixture(t,
		[][]int{{P, 0, 0}},
		[][]int{{0, 0, 0}},
	)
	_, err := p.DistanceBetween("Harbor", "Mesa")
	require.ErrorIs(t, err, paths.ErrUnknownLocation)
	_, err = p.UnusedEdges()
	require.ErrorIs(t, err, paths.ErrUnknownLocation, "the failure is memoized")

	p = fixture(t,
		[][]int{{P, 0, C}},
		[][]int{{0, H, 0}},
	)
	_, err = p.DistanceBetween("Mesa", "Harbor")
	require.ErrorIs(t, err, paths.ErrUnknownPair)
	_, err = p.ConnectionPath("Harbor", "Nowhere")
	require.ErrorIs(t, err, paths.ErrUnknownPair)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := fixture(t,
		[][]int{{P, 0, C}},
		[][]int{{0, H, 0}},
		paths.WithContext(ctx),
	)
	_, err := p.DistanceBetween("Harbor", "Mesa")
	require.ErrorIs(t, err, context.Canceled)
	_, err = p.Diagnostics()
	require.ErrorIs(t, err, context.Canceled, "the failure is memoized")
}

func TestResolutions_Order(t *testing.T) {
	p := fixture(t,
		[][]int{{P, 0, C}},
		[][]int{{0, H, 0}},
		paths.WithCacheSize(1),
	)
	rs, err := p.Resolutions()
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "Harbor", rs[0].Port)
	assert.Equal(t, "Mesa", rs[0].City)
	assert.Equal(t, 1, rs[0].Distance())
	assert.False(t, rs[0].Tied())
	assert.Equal(t, "[(1, 0) HORIZONTAL]", paths.FormatPath(rs[0].Path))
}
