// Package validate checks a resolved map against its reference data.
//
// Distances compares every declared (port, city) distance with the resolved
// path length. TrackPlacements checks every track tile against the terrain
// beneath it. Both log each problem as they go and return it as a Failure, so
// callers can report without re-parsing log output.
package validate
