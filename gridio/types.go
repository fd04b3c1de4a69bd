package gridio

import (
	"errors"
	"strings"

	"github.com/katalvlaran/tilepath/coord"
)

// Sentinel errors for gridio operations.
var (
	// ErrUnknownFormat indicates a Format value or file extension gridio cannot decode.
	ErrUnknownFormat = errors.New("gridio: unknown format")
	// ErrDecode indicates malformed input for the selected format.
	ErrDecode = errors.New("gridio: decode failed")
	// ErrInvalidGrid indicates a description that does not build into a grid.
	ErrInvalidGrid = errors.New("gridio: invalid grid description")
)

// Format selects the wire encoding.
type Format int

const (
	// JSON is the encoding/json wire format.
	JSON Format = iota
	// YAML is the gopkg.in/yaml.v3 wire format.
	YAML
)

// String returns "json" or "yaml".
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "Format(?)"
	}
}

// FormatFromPath picks the format from a file extension (.json, .yaml, .yml).
func FormatFromPath(path string) (Format, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return JSON, nil
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return YAML, nil
	default:
		return 0, ErrUnknownFormat
	}
}

// NestedInts is a y → x → value table, the layout used for per-cell costs.
type NestedInts map[int]map[int]int

// NestedFlags is a y → x → flag table. Presence of an entry marks the cell;
// the flag value itself is ignored.
type NestedFlags map[int]map[int]bool

// Description is the serialisable form of a grid.
type Description struct {
	Tiles             [][]int     `json:"tiles" yaml:"tiles"`
	WalkableTiles     []int       `json:"walkableTiles" yaml:"walkableTiles"`
	Costs             map[int]int `json:"costs,omitempty" yaml:"costs,omitempty"`
	ExtraCosts        NestedInts  `json:"extraCosts,omitempty" yaml:"extraCosts,omitempty"`
	UnstoppableCoords NestedFlags `json:"unstoppableCoords,omitempty" yaml:"unstoppableCoords,omitempty"`
	UnwalkableCoords  NestedFlags `json:"unwalkableCoords,omitempty" yaml:"unwalkableCoords,omitempty"`
	GridType          string      `json:"gridType,omitempty" yaml:"gridType,omitempty"`
}

// Options is the serialisable form of the search options.
type Options struct {
	EndOnUnstoppable bool `json:"endOnUnstoppable,omitempty" yaml:"endOnUnstoppable,omitempty"`
}

// Query bundles a grid with the inputs of one path or area request.
type Query struct {
	Grid    Description   `json:"grid" yaml:"grid"`
	Start   *coord.Coord  `json:"start,omitempty" yaml:"start,omitempty"`
	End     *coord.Coord  `json:"end,omitempty" yaml:"end,omitempty"`
	Sources []coord.Coord `json:"sources,omitempty" yaml:"sources,omitempty"`
	Options Options       `json:"options" yaml:"options"`
}
