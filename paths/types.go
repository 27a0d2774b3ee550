package paths

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ekohilas/train-conductor-world-tools/geom"
	"github.com/ekohilas/train-conductor-world-tools/logging"
	"github.com/ekohilas/train-conductor-world-tools/track"
)

// Sentinel errors for path resolution.
var (
	// ErrUnknownLocation indicates a port or city without a location tile.
	ErrUnknownLocation = errors.New("paths: unknown location")

	// ErrUnknownPair indicates a (port, city) pair outside the Connections.
	ErrUnknownPair = errors.New("paths: pair is not a declared connection")
)

// Locator finds where a named location sits. *world.TileMap satisfies it.
type Locator interface {
	CoordinateOf(name string) (geom.Coordinate, error)
}

// Connections lists the pairs to resolve. *refdata.Data satisfies it.
type Connections interface {
	PortNames() []string
	CityNamesFrom(port string) ([]string, error)
}

// Searcher is the track graph. *trackgraph.Graph satisfies it.
// AllShortestPaths must return an error wrapping bfs.ErrNoPath when dst is
// unreachable.
type Searcher interface {
	AllShortestPaths(ctx context.Context, src, dst geom.Node) ([][]geom.Node, error)
	Edges() []track.Edge
}

// Option configures a Paths value.
type Option func(*options)

type options struct {
	ctx       context.Context
	log       logging.Logger
	cacheSize int
}

// WithContext cancels the searches once ctx is done. The resolution then
// fails with ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sends tie warnings and progress to l instead of the package logger.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithCacheSize bounds the number of memoized location-pair searches.
// 0, the default, means unbounded.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.cacheSize = n
		}
	}
}

// Resolution is the outcome for one (port, city) pair.
type Resolution struct {
	Port, City string

	// Path is the winning edge path, empty when the pair is disconnected or the
	// two locations share a side.
	Path []track.Edge

	// Candidates holds every valid path of minimum length, the winner first.
	Candidates [][]track.Edge
}

// Distance is the number of edges of the winning path, 0 when disconnected.
func (r Resolution) Distance() int { return len(r.Path) }

// Connected reports whether a valid path exists.
func (r Resolution) Connected() bool { return len(r.Path) > 0 }

// Tied reports whether more than one minimum path was found.
func (r Resolution) Tied() bool { return len(r.Candidates) > 1 }

// DiagnosticKind classifies a non-fatal resolution outcome.
type DiagnosticKind int

const (
	// DiagnosticTie marks a pair with several equally short valid paths.
	DiagnosticTie DiagnosticKind = iota
	// DiagnosticDisconnected marks a pair with no valid path.
	DiagnosticDisconnected
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticTie:
		return "tie"
	case DiagnosticDisconnected:
		return "disconnected"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic reports a tie or a disconnected pair.
type Diagnostic struct {
	Kind       DiagnosticKind
	Port, City string
	Candidates [][]track.Edge
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagnosticTie:
		return fmt.Sprintf("%s -> %s: %d minimum paths, first chosen", d.Port, d.City, len(d.Candidates))
	default:
		return fmt.Sprintf("%s -> %s: %s", d.Port, d.City, d.Kind)
	}
}

// FormatPath renders an edge path one edge after the other.
func FormatPath(p []track.Edge) string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = fmt.Sprintf("%v %s", e.Coordinate(), e.PathComponent())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type pair struct {
	port, city string
}

// collateKey memoizes the searches between two locations.
type collateKey struct {
	port, city geom.Coordinate
}
