package paths

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/ekohilas/train-conductor-world-tools/bfs"
	"github.com/ekohilas/train-conductor-world-tools/geom"
	"github.com/ekohilas/train-conductor-world-tools/logging"
	"github.com/ekohilas/train-conductor-world-tools/track"
)

// Paths resolves and memoizes the connection paths of one map snapshot.
type Paths struct {
	ctx   context.Context
	locs  Locator
	conns Connections
	graph Searcher
	log   logging.Logger

	collated     *lru.Cache
	hits, misses int

	once        sync.Once
	err         error
	order       []pair
	resolved    map[pair]*Resolution
	connections map[pair]map[geom.Coordinate]track.PathComponent
	diagnostics []Diagnostic
	unused      []track.Edge
}

// New returns a Paths over the given locations, connections and track graph.
// Nothing is searched until the first query.
func New(locs Locator, conns Connections, g Searcher, opts ...Option) *Paths {
	o := options{ctx: context.Background(), log: logging.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Paths{
		ctx:      o.ctx,
		locs:     locs,
		conns:    conns,
		graph:    g,
		log:      o.log,
		collated: lru.New(o.cacheSize),
	}
}

// DistanceBetween returns the edge count of the resolved path, 0 if disconnected.
func (p *Paths) DistanceBetween(port, city string) (int, error) {
	r, err := p.Resolve(port, city)
	if err != nil {
		return 0, err
	}
	return r.Distance(), nil
}

// ConnectionPath maps every cell of the resolved path to the shape drawn in it.
// The map is empty when the pair is disconnected. Each call returns a fresh copy
// of the memoized result.
func (p *Paths) ConnectionPath(port, city string) (map[geom.Coordinate]track.PathComponent, error) {
	if err := p.resolveAll(); err != nil {
		return nil, err
	}
	cp, ok := p.connections[pair{port, city}]
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownPair, port, city)
	}
	return maps.Clone(cp), nil
}

// ValidMinPaths returns every valid path of minimum length, winner first.
func (p *Paths) ValidMinPaths(port, city string) ([][]track.Edge, error) {
	r, err := p.Resolve(port, city)
	if err != nil {
		return nil, err
	}
	out := make([][]track.Edge, len(r.Candidates))
	for i, c := range r.Candidates {
		out[i] = slices.Clone(c)
	}
	return out, nil
}

// Resolve returns the resolution of one declared pair.
func (p *Paths) Resolve(port, city string) (Resolution, error) {
	if err := p.resolveAll(); err != nil {
		return Resolution{}, err
	}
	r, ok := p.resolved[pair{port, city}]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s -> %s", ErrUnknownPair, port, city)
	}
	return *r, nil
}

// Resolutions returns every declared pair in enumeration order.
func (p *Paths) Resolutions() ([]Resolution, error) {
	if err := p.resolveAll(); err != nil {
		return nil, err
	}
	out := make([]Resolution, 0, len(p.order))
	for _, k := range p.order {
		out = append(out, *p.resolved[k])
	}
	return out, nil
}

// Diagnostics returns the ties and disconnected pairs, in enumeration order.
func (p *Paths) Diagnostics() ([]Diagnostic, error) {
	if err := p.resolveAll(); err != nil {
		return nil, err
	}
	return slices.Clone(p.diagnostics), nil
}

// UnusedEdges returns the track edges no winning path uses, sorted.
func (p *Paths) UnusedEdges() ([]track.Edge, error) {
	if err := p.resolveAll(); err != nil {
		return nil, err
	}
	return slices.Clone(p.unused), nil
}

// CacheStats reports hits and misses of the location-pair search cache.
func (p *Paths) CacheStats() (hits, misses int) {
	return p.hits, p.misses
}

// IsValidPath reports whether no two consecutive edges cross the same cell.
// Paths shorter than two edges are always valid.
func IsValidPath(edges []track.Edge) bool {
	for i := 1; i < len(edges); i++ {
		if edges[i-1].Coordinate() == edges[i].Coordinate() {
			return false
		}
	}
	return true
}

func (p *Paths) resolveAll() error {
	p.once.Do(func() { p.err = p.resolve() })
	return p.err
}

func (p *Paths) resolve() error {
	tl := logging.NewTimeLog()
	p.resolved = make(map[pair]*Resolution)
	p.connections = make(map[pair]map[geom.Coordinate]track.PathComponent)
	used := make(map[track.Edge]struct{})

	for _, port := range p.conns.PortNames() {
		portAt, err := p.locate(port)
		if err != nil {
			return err
		}
		cities, err := p.conns.CityNamesFrom(port)
		if err != nil {
			return fmt.Errorf("paths: cities of %q: %w", port, err)
		}
		for _, city := range cities {
			cityAt, err := p.locate(city)
			if err != nil {
				return err
			}
			r, err := p.resolvePair(port, city, portAt, cityAt)
			if err != nil {
				return err
			}

			k := pair{port, city}
			p.order = append(p.order, k)
			p.resolved[k] = r
			cp := make(map[geom.Coordinate]track.PathComponent, len(r.Path))
			for _, e := range r.Path {
				cp[e.Coordinate()] = e.PathComponent()
				used[e] = struct{}{}
			}
			p.connections[k] = cp
		}
	}

	for _, e := range p.graph.Edges() {
		if _, ok := used[e]; !ok {
			p.unused = append(p.unused, e)
		}
	}
	tl.Debugf("Resolved %d connections", len(p.order))
	return nil
}

func (p *Paths) locate(name string) (geom.Coordinate, error) {
	c, err := p.locs.CoordinateOf(name)
	if err != nil {
		return geom.Coordinate{}, fmt.Errorf("%w: %q: %w", ErrUnknownLocation, name, err)
	}
	return c, nil
}

// resolvePair filters the collated paths down to the valid minimum ones and
// picks the winner.
func (p *Paths) resolvePair(port, city string, portAt, cityAt geom.Coordinate) (*Resolution, error) {
	nodePaths, err := p.collate(portAt, cityAt)
	if err != nil {
		return nil, fmt.Errorf("paths: %s -> %s: %w", port, city, err)
	}

	var valid [][]track.Edge
	for _, np := range nodePaths {
		edges, err := track.EdgesFromNodes(np)
		if err != nil {
			return nil, fmt.Errorf("paths: %s -> %s: %w", port, city, err)
		}
		if IsValidPath(edges) {
			valid = append(valid, edges)
		}
	}

	r := &Resolution{Port: port, City: city}
	if len(valid) == 0 {
		p.log.Debugf("%s -> %s has no valid path.", port, city)
		p.diagnostics = append(p.diagnostics, Diagnostic{Kind: DiagnosticDisconnected, Port: port, City: city})
		return r, nil
	}

	shortest := len(valid[0])
	for _, v := range valid[1:] {
		shortest = min(shortest, len(v))
	}
	for _, v := range valid {
		if len(v) == shortest {
			r.Candidates = append(r.Candidates, v)
		}
	}
	r.Path = r.Candidates[0]

	if shortest == 0 {
		p.log.Debugf("%s and %s share a side, no track needed.", port, city)
		p.diagnostics = append(p.diagnostics, Diagnostic{Kind: DiagnosticDisconnected, Port: port, City: city})
		return r, nil
	}
	if r.Tied() {
		p.log.Warningf("More than one minimum path found from %s -> %s. Defaulting to the first.", port, city)
		for i, c := range r.Candidates {
			p.log.Debugf("  candidate %d: %s", i, FormatPath(c))
		}
		p.diagnostics = append(p.diagnostics, Diagnostic{
			Kind:       DiagnosticTie,
			Port:       port,
			City:       city,
			Candidates: r.Candidates,
		})
	}
	return r, nil
}

// collate runs one search per (port edge-node, city edge-node) pair and
// concatenates their shortest paths in enumeration order. Unreachable pairs are
// skipped.
func (p *Paths) collate(portAt, cityAt geom.Coordinate) ([][]geom.Node, error) {
	key := collateKey{port: portAt, city: cityAt}
	if v, ok := p.collated.Get(key); ok {
		p.hits++
		return v.([][]geom.Node), nil
	}
	p.misses++

	var all [][]geom.Node
	for _, from := range portAt.EdgeNodes() {
		for _, to := range cityAt.EdgeNodes() {
			found, err := p.graph.AllShortestPaths(p.ctx, from, to)
			if errors.Is(err, bfs.ErrNoPath) {
				continue
			}
			if err != nil {
				return nil, err
			}
			all = append(all, found...)
		}
	}
	p.collated.Add(key, all)
	return all, nil
}
