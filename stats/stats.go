package stats

import (
	"cmp"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/ekohilas/train-conductor-world-tools/geom"
	"github.com/ekohilas/train-conductor-world-tools/gridgraph"
	"github.com/ekohilas/train-conductor-world-tools/logging"
	"github.com/ekohilas/train-conductor-world-tools/track"
	"github.com/ekohilas/train-conductor-world-tools/world"
)

// TotalsName names the counter summing every terrain.
const TotalsName = "Totals"

// EmptyTerrain names the terrain of a cell without a map tile.
const EmptyTerrain = "(empty)"

// Count is one key of a Counter.
type Count struct {
	Key string
	N   int
}

// Counter is a named tally, most common key first.
type Counter struct {
	Name   string
	Total  int
	Counts []Count
}

// EdgeGroup is the unused edges of one cell.
type EdgeGroup struct {
	Coordinate geom.Coordinate
	Edges      []track.Edge
}

// UnusedEdgeSource is anything that knows which track edges no path uses.
// *paths.Paths satisfies it.
type UnusedEdgeSource interface {
	UnusedEdges() ([]track.Edge, error)
}

// Option configures a report.
type Option func(*options)

type options struct {
	log logging.Logger
}

// WithLogger sends the report to l instead of the package logger.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: logging.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CountTracks returns the number of track tiles.
func CountTracks(w *world.World, opts ...Option) int {
	o := newOptions(opts)
	n := w.TrackMap.Len()
	o.log.Infof("Found %s tracks.", humanize.Comma(int64(n)))
	return n
}

// TrackCoordinatesCount tallies track abbreviations per terrain name, terrains
// in name order, followed by the Totals counter.
func TrackCoordinatesCount(w *world.World, opts ...Option) []Counter {
	o := newOptions(opts)
	perTerrain := make(map[string]map[string]int)
	totals := make(map[string]int)
	for _, ov := range w.OverlayingTiles() {
		terrain := EmptyTerrain
		if ov.Under != nil {
			terrain = ov.Under.Name
		}
		if perTerrain[terrain] == nil {
			perTerrain[terrain] = make(map[string]int)
		}
		perTerrain[terrain][ov.Track.Abbreviation]++
		totals[ov.Track.Abbreviation]++
	}

	var out []Counter
	for _, terrain := range sortedKeys(perTerrain) {
		out = append(out, newCounter(terrain, perTerrain[terrain]))
	}
	out = append(out, newCounter(TotalsName, totals))

	for _, c := range out {
		o.log.Infof("%s (%s):", c.Name, humanize.Comma(int64(c.Total)))
		for _, kv := range c.Counts {
			o.log.Infof("%s: %s", kv.Key, humanize.Comma(int64(kv.N)))
		}
	}
	return out
}

func newCounter(name string, counts map[string]int) Counter {
	c := Counter{Name: name}
	for k, n := range counts {
		c.Counts = append(c.Counts, Count{Key: k, N: n})
		c.Total += n
	}
	slices.SortFunc(c.Counts, func(a, b Count) int {
		if d := cmp.Compare(b.N, a.N); d != 0 {
			return d
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return c
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// UnusedEdges groups the unused track edges by cell, cells in order.
func UnusedEdges(src UnusedEdgeSource, opts ...Option) ([]EdgeGroup, error) {
	o := newOptions(opts)
	o.log.Infof("Looking for unused edges...")
	edges, err := src.UnusedEdges()
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		o.log.Infof("No unused edges found, awesome!")
		return nil, nil
	}

	o.log.Warningf("Found %s unused edges:", humanize.Comma(int64(len(edges))))
	byCell := make(map[geom.Coordinate][]track.Edge)
	for _, e := range edges {
		byCell[e.Coordinate()] = append(byCell[e.Coordinate()], e)
	}
	groups := make([]EdgeGroup, 0, len(byCell))
	for c, es := range byCell {
		slices.SortFunc(es, track.Edge.Compare)
		groups = append(groups, EdgeGroup{Coordinate: c, Edges: es})
	}
	slices.SortFunc(groups, func(a, b EdgeGroup) int { return a.Coordinate.Compare(b.Coordinate) })

	for _, g := range groups {
		o.log.Warningf("%v", g.Coordinate)
		for _, e := range g.Edges {
			o.log.Warningf("\t%s %s", e.PathComponent(), e)
		}
	}
	return groups, nil
}

// TrackClusters returns the separate networks of orthogonally adjacent track
// tiles, largest first.
func TrackClusters(tracks *world.TileMap, opts ...Option) ([][]geom.Coordinate, error) {
	o := newOptions(opts)
	if tracks.Width() == 0 || tracks.Height() == 0 {
		return nil, nil
	}
	gg, err := gridgraph.FromTileMap(tracks, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	clusters := gg.ConnectedComponents(func(c geom.Coordinate) bool {
		t := tracks.At(c)
		return t != nil && t.IsTrack()
	})
	slices.SortStableFunc(clusters, func(a, b []geom.Coordinate) int { return cmp.Compare(len(b), len(a)) })
	o.log.Infof("Found %s track clusters.", humanize.Comma(int64(len(clusters))))
	return clusters, nil
}
