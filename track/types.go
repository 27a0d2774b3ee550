package track

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Sentinel errors for track shapes and edges.
var (
	// ErrInvalidEdge indicates two nodes that do not form an edge inside one cell.
	ErrInvalidEdge = errors.New("track: nodes do not form a cell edge")

	// ErrNotSingle indicates a PathComponent with zero or several shapes where one was expected.
	ErrNotSingle = errors.New("track: expected a single path component")

	// ErrUnknownComponent indicates a shape name that does not exist.
	ErrUnknownComponent = errors.New("track: unknown path component name")
)

// PathComponent is the set of shapes a track traces through a cell.
type PathComponent uint8

const (
	None     PathComponent = 0
	Vertical PathComponent = 1 << (iota - 1)
	Horizontal
	UpRight
	DownLeft
	DownRight
	UpLeft

	// All is every shape at once, a tile passable from every direction.
	All = Vertical | Horizontal | UpRight | DownLeft | DownRight | UpLeft
)

// singles lists the six shapes in declaration order.
var singles = [...]PathComponent{Vertical, Horizontal, UpRight, DownLeft, DownRight, UpLeft}

// names holds the reference-data key of each shape.
var names = map[PathComponent]string{
	Vertical:   "vertical",
	Horizontal: "horizontal",
	UpRight:    "up_right",
	DownLeft:   "down_left",
	DownRight:  "down_right",
	UpLeft:     "up_left",
}

// Singles returns the six single shapes in declaration order.
func Singles() []PathComponent {
	out := make([]PathComponent, len(singles))
	copy(out, singles[:])
	return out
}

// FromFlags folds every true-valued shape name of flags into one PathComponent.
// Unknown names and false values are ignored, so an empty map gives None.
func FromFlags(flags map[string]bool) PathComponent {
	pc := None
	for _, s := range singles {
		if flags[names[s]] {
			pc |= s
		}
	}
	return pc
}

// ParsePathComponent parses the output of String, e.g. "HORIZONTAL|UP_RIGHT".
// Lower-case names are accepted too.
func ParsePathComponent(s string) (PathComponent, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return None, nil
	}
	pc := None
	for _, part := range strings.Split(s, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		found := false
		for _, single := range singles {
			if names[single] == part {
				pc |= single
				found = true
				break
			}
		}
		if !found {
			return None, fmt.Errorf("%w: %q", ErrUnknownComponent, part)
		}
	}
	return pc, nil
}

// Union returns the shapes of pc and o together.
func (pc PathComponent) Union(o PathComponent) PathComponent { return pc | o }

// Has reports whether every shape of o is part of pc. Has(None) is true.
func (pc PathComponent) Has(o PathComponent) bool { return pc&o == o }

// Count returns the number of shapes in pc.
func (pc PathComponent) Count() int { return bits.OnesCount8(uint8(pc & All)) }

// IsSingle reports whether pc is exactly one shape.
func (pc PathComponent) IsSingle() bool { return pc.Count() == 1 && pc&^All == 0 }

// Single returns pc when it is exactly one shape, ErrNotSingle otherwise.
func (pc PathComponent) Single() (PathComponent, error) {
	if !pc.IsSingle() {
		return None, fmt.Errorf("%w: got %s", ErrNotSingle, pc)
	}
	return pc, nil
}

// Components splits pc into its single shapes in declaration order.
func (pc PathComponent) Components() []PathComponent {
	var out []PathComponent
	for _, s := range singles {
		if pc&s != 0 {
			out = append(out, s)
		}
	}
	return out
}

// Name returns the reference-data key of a single shape ("up_right"), or "" otherwise.
func (pc PathComponent) Name() string {
	return names[pc]
}

// String returns the upper-case shape names joined with "|", or "NONE".
func (pc PathComponent) String() string {
	if pc == None {
		return "NONE"
	}
	parts := make([]string, 0, len(singles))
	for _, s := range pc.Components() {
		parts = append(parts, strings.ToUpper(names[s]))
	}
	if rest := pc &^ All; rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}
