package refdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ekohilas/train-conductor-world-tools/track"
)

// Sentinel errors for reference-data lookups.
var (
	ErrSchema            = errors.New("refdata: document does not match schema")
	ErrUnknownPort       = errors.New("refdata: unknown port")
	ErrUnknownCity       = errors.New("refdata: unknown city")
	ErrUnknownTile       = errors.New("refdata: unknown tile id")
	ErrUnknownConnection = errors.New("refdata: no connection tile registered")
)

// Tile groups used by the tileset.
const (
	GroupTrack      = "Track"
	GroupLocation   = "Location"
	GroupConnection = "Connection"
)

// CityDistance is one entry of a port's distance list.
type CityDistance struct {
	Name     string `json:"name"`
	Distance int    `json:"distance"`
}

// TileRecord is one tileset entry.
type TileRecord struct {
	TmxID        int
	Name         string
	Abbreviation string
	Group        string
	Type         string
	Branching    bool
	Overlays     []string

	// PathComponent folds the boolean shape keys of the entry.
	PathComponent track.PathComponent
}

type tileRecordJSON struct {
	TmxID        json.RawMessage `json:"tmx_id"`
	Name         string          `json:"name"`
	Abbreviation string          `json:"abbreviation"`
	Group        string          `json:"group"`
	Type         string          `json:"type"`
	Branching    bool            `json:"branching"`
	Overlays     []string        `json:"overlays"`
}

// UnmarshalJSON accepts tmx_id as a number or a numeric string and folds the
// shape flags into PathComponent.
func (r *TileRecord) UnmarshalJSON(b []byte) error {
	var aux tileRecordJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	id, err := strconv.Atoi(strings.Trim(string(aux.TmxID), `"`))
	if err != nil {
		return fmt.Errorf("refdata: bad tmx_id %s: %w", aux.TmxID, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	flags := make(map[string]bool, len(raw))
	for k, v := range raw {
		if set, ok := v.(bool); ok {
			flags[k] = set
		}
	}

	*r = TileRecord{
		TmxID:         id,
		Name:          aux.Name,
		Abbreviation:  aux.Abbreviation,
		Group:         aux.Group,
		Type:          aux.Type,
		Branching:     aux.Branching,
		Overlays:      aux.Overlays,
		PathComponent: track.FromFlags(flags),
	}
	return nil
}

// connectionKey identifies an annotation tile.
type connectionKey struct {
	name  string
	shape track.PathComponent
}

// PortCity is a (port, city) pair to be connected.
type PortCity struct {
	Port, City string
}
