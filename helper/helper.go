package helper

import (
	"context"
	"fmt"

	"github.com/ekohilas/train-conductor-world-tools/annotate"
	"github.com/ekohilas/train-conductor-world-tools/config"
	"github.com/ekohilas/train-conductor-world-tools/gridgraph"
	"github.com/ekohilas/train-conductor-world-tools/logging"
	"github.com/ekohilas/train-conductor-world-tools/paths"
	"github.com/ekohilas/train-conductor-world-tools/refdata"
	"github.com/ekohilas/train-conductor-world-tools/stats"
	"github.com/ekohilas/train-conductor-world-tools/tmx"
	"github.com/ekohilas/train-conductor-world-tools/trackgraph"
	"github.com/ekohilas/train-conductor-world-tools/validate"
	"github.com/ekohilas/train-conductor-world-tools/world"
)

// Helper facilitates the running of all the conductor tools on one map.
type Helper struct {
	cfg config.Config
	ref *refdata.Data
	log logging.Logger
}

// Report summarises one UpdateMap run.
type Report struct {
	Tracks        int
	Terrain       []stats.Counter
	UnusedEdges   []stats.EdgeGroup
	TrackClusters int

	PlacementsValid bool
	Placements      []validate.Failure
	DistancesValid  bool
	Distances       []validate.Failure

	Diagnostics []paths.Diagnostic
	CacheHits   int
	CacheMisses int
}

// Passed reports whether every validation passed.
func (r Report) Passed() bool { return r.PlacementsValid && r.DistancesValid }

// Option configures a Helper.
type Option func(*Helper)

// WithLogger sends every stage's messages to l instead of the package logger.
func WithLogger(l logging.Logger) Option {
	return func(h *Helper) {
		if l != nil {
			h.log = l
		}
	}
}

// New validates cfg and loads the reference data it names.
func New(cfg config.Config, opts ...Option) (*Helper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ref, err := refdata.Load(cfg.Files.Distances, cfg.Files.Tiles, cfg.Helper.PortLimit)
	if err != nil {
		return nil, err
	}
	h := &Helper{cfg: cfg, ref: ref, log: logging.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// UpdateMap re-reads the map and runs stats, validations and annotations.
// Malformed input, or ctx being done before the paths are resolved, aborts the
// run with an error and leaves the file untouched.
func (h *Helper) UpdateMap(ctx context.Context) (Report, error) {
	tl := logging.NewTimeLog()
	var r Report

	h.log.Debugf("Reading map...")
	m, err := tmx.Open(h.cfg.Files.TMX)
	if err != nil {
		return r, err
	}
	w, err := h.readWorld(m)
	if err != nil {
		return r, err
	}
	g, err := trackgraph.New(w.TrackMap)
	if err != nil {
		return r, err
	}
	p := paths.New(w.TileMap, h.ref, g,
		paths.WithContext(ctx),
		paths.WithLogger(h.log),
		paths.WithCacheSize(h.cfg.Paths.CacheSize),
	)

	// stats
	so := stats.WithLogger(h.log)
	r.Tracks = stats.CountTracks(w, so)
	r.Terrain = stats.TrackCoordinatesCount(w, so)
	if r.UnusedEdges, err = stats.UnusedEdges(p, so); err != nil {
		return r, err
	}
	clusters, err := stats.TrackClusters(w.TrackMap, so)
	if err != nil {
		return r, err
	}
	r.TrackClusters = len(clusters)

	// validations
	vo := validate.WithLogger(h.log)
	if r.PlacementsValid, r.Placements, err = validate.TrackPlacements(w, vo); err != nil {
		return r, err
	}
	if r.DistancesValid, r.Distances, err = validate.Distances(h.ref, p, vo); err != nil {
		return r, err
	}
	if r.Diagnostics, err = p.Diagnostics(); err != nil {
		return r, err
	}
	r.CacheHits, r.CacheMisses = p.CacheStats()

	// annotations
	layers, err := h.annotations(m, w, p)
	if err != nil {
		return r, err
	}
	if err := m.SaveLayers(layers...); err != nil {
		return r, err
	}
	tl.Infof("Updated %s", m.Filename())
	return r, nil
}

func (h *Helper) readWorld(m *tmx.Map) (*world.World, error) {
	mapGrid, err := m.LayerData(h.cfg.Helper.MapLayer)
	if err != nil {
		return nil, err
	}
	trackGrid, err := m.LayerData(h.cfg.Helper.TrackLayer)
	if err != nil {
		return nil, err
	}
	w, err := world.FromMatrices(mapGrid, trackGrid, h.ref)
	if err != nil {
		return nil, fmt.Errorf("helper: %s: %w", m.Filename(), err)
	}
	return w, nil
}

func (h *Helper) annotations(m *tmx.Map, w *world.World, p *paths.Paths) ([]tmx.Layer, error) {
	a := annotate.New(m.Width(), m.Height(), h.ref, p)
	connections, err := a.ConnectionsLayer()
	if err != nil {
		return nil, err
	}
	layers := []tmx.Layer{connections}
	if !h.cfg.Helper.AnnotateAreas {
		return layers, nil
	}
	gg, err := gridgraph.FromTileMap(w.TileMap, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	areas, err := a.AreasLayer(w.TileMap, gg)
	if err != nil {
		return nil, err
	}
	return append(layers, areas), nil
}
