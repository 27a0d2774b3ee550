package validate

import (
	"fmt"

	"github.com/ekohilas/train-conductor-world-tools/geom"
	"github.com/ekohilas/train-conductor-world-tools/logging"
	"github.com/ekohilas/train-conductor-world-tools/refdata"
)

// FailureKind classifies a failed check.
type FailureKind int

const (
	// NotConnected: the pair has no valid track path.
	NotConnected FailureKind = iota
	// NonMinimum: the path length differs from the expected distance.
	NonMinimum
	// Unplaceable: a track tile sits on terrain it may not cover.
	Unplaceable
)

func (k FailureKind) String() string {
	switch k {
	case NotConnected:
		return "not connected"
	case NonMinimum:
		return "non minimum"
	case Unplaceable:
		return "unplaceable"
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// Failure is one failed check.
type Failure struct {
	Kind FailureKind

	// Distance checks.
	Port, City       string
	Expected, Actual int

	// Placement checks.
	Coordinate geom.Coordinate
	Track      string
	Terrain    string
}

func (f Failure) String() string {
	switch f.Kind {
	case NotConnected:
		return fmt.Sprintf("%s -> %s is not connected.", f.Port, f.City)
	case NonMinimum:
		return fmt.Sprintf("%s -> %s distance is non minimum. Expected %d but was %d.",
			f.Port, f.City, f.Expected, f.Actual)
	case Unplaceable:
		return fmt.Sprintf("%s track at coordinate %v can't be placed on %s", f.Track, f.Coordinate, f.Terrain)
	}
	return f.Kind.String()
}

// Expected is the reference side of the distance check. *refdata.Data satisfies it.
type Expected interface {
	PortCityPairs() []refdata.PortCity
	DistanceBetween(port, city string) (int, error)
}

// Actual is the resolved side of the distance check. *paths.Paths satisfies it.
type Actual interface {
	DistanceBetween(port, city string) (int, error)
}

// Option configures a check.
type Option func(*options)

type options struct {
	log logging.Logger
}

// WithLogger sends the check's messages to l instead of the package logger.
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
