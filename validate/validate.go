package validate

import (
	"fmt"
	"strings"

	"github.com/ekohilas/train-conductor-world-tools/world"
)

// Distances checks that every declared pair resolved to its expected distance.
// It reports whether all passed, plus each failure in pair order. Lookup errors
// are fatal.
func Distances(expected Expected, actual Actual, opts ...Option) (bool, []Failure, error) {
	o := newOptions(opts)
	o.log.Infof("Checking all distances...")

	var failures []Failure
	for _, pc := range expected.PortCityPairs() {
		want, err := expected.DistanceBetween(pc.Port, pc.City)
		if err != nil {
			return false, nil, fmt.Errorf("validate: %w", err)
		}
		got, err := actual.DistanceBetween(pc.Port, pc.City)
		if err != nil {
			return false, nil, fmt.Errorf("validate: %w", err)
		}
		if got == want {
			continue
		}
		f := Failure{Kind: NonMinimum, Port: pc.Port, City: pc.City, Expected: want, Actual: got}
		if got == 0 {
			f.Kind = NotConnected
		}
		o.log.Warningf("%s", f)
		failures = append(failures, f)
	}

	if len(failures) == 0 {
		o.log.Infof("All distance tests passed. You are awesome!")
	}
	return len(failures) == 0, failures, nil
}

// TrackPlacements checks every track tile against the terrain under it.
func TrackPlacements(w *world.World, opts ...Option) (bool, []Failure, error) {
	o := newOptions(opts)

	var failures []Failure
	for _, ov := range w.OverlayingTiles() {
		ok, err := ov.Track.PlaceableOn(ov.Under)
		if err != nil {
			return false, nil, fmt.Errorf("validate: %w", err)
		}
		if ok {
			continue
		}
		terrain := "nothing"
		if ov.Under != nil {
			terrain = ov.Under.String()
		}
		f := Failure{
			Kind:       Unplaceable,
			Coordinate: ov.Track.Coordinate,
			Track:      strings.TrimSpace(ov.Track.Abbreviation + " " + ov.Track.Type),
			Terrain:    terrain,
		}
		o.log.Errorf("%s", f)
		failures = append(failures, f)
	}

	if len(failures) == 0 {
		o.log.Infof("All track placements are valid. You are awesome!")
	}
	return len(failures) == 0, failures, nil
}
