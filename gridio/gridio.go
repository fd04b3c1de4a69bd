// Package gridio reads grid descriptions and search inputs from JSON or YAML.
//
// The wire shape uses camelCase keys:
//
//	tiles:             [[1, 1, 0], [0, 1, 1]]
//	walkableTiles:     [1]
//	costs:             {1: 2}
//	extraCosts:        {0: {1: 5}}        # y → x → cost
//	unstoppableCoords: {1: {2: true}}     # y → x → flag
//	unwalkableCoords:  {}
//	gridType:          Hex                # Cardinal | Hex | Intercardinal
//
// Coordinates are objects {x, y}; search options are {endOnUnstoppable}.
package gridio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilepath/coord"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/search"
)

// Decode reads a Description from r in format f.
func Decode(r io.Reader, f Format) (*Description, error) {
	d := &Description{}
	if err := decode(r, f, d); err != nil {
		return nil, err
	}
	return d, nil
}

// DecodeQuery reads a Query from r in format f.
func DecodeQuery(r io.Reader, f Format) (*Query, error) {
	q := &Query{}
	if err := decode(r, f, q); err != nil {
		return nil, err
	}
	return q, nil
}

// DecodeCoords reads a list of {x, y} coordinates from r in format f.
func DecodeCoords(r io.Reader, f Format) ([]coord.Coord, error) {
	var cs []coord.Coord
	if err := decode(r, f, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

// LoadFile reads a Description from path, picking the format by extension.
func LoadFile(path string) (*Description, error) {
	d := &Description{}
	if err := load(path, d); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadQuery reads a Query from path, picking the format by extension.
func LoadQuery(path string) (*Query, error) {
	q := &Query{}
	if err := load(path, q); err != nil {
		return nil, err
	}
	return q, nil
}

// LoadCoords reads a coordinate list from path, picking the format by extension.
func LoadCoords(path string) ([]coord.Coord, error) {
	var cs []coord.Coord
	if err := load(path, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func load(path string, v any) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return decode(bytes.NewReader(data), f, v)
}

func decode(r io.Reader, f Format, v any) error {
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(v)
	case YAML:
		err = yaml.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w (%s): %w", ErrDecode, f, err)
	}
	return nil
}

// Build validates the description and constructs the grid. Extra options
// are applied after the ones derived from the description.
// Returns ErrInvalidGrid wrapping the grid package error on failure.
func (d *Description) Build(opts ...grid.Option) (*grid.Grid, error) {
	topo, err := grid.ParseTopology(d.GridType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}

	all := []grid.Option{
		grid.WithTopology(topo),
		grid.WithWalkable(d.WalkableTiles...),
		grid.WithCosts(d.Costs),
		grid.WithUnstoppable(d.UnstoppableCoords.Coords()...),
		grid.WithUnwalkable(d.UnwalkableCoords.Coords()...),
	}
	for _, c := range d.ExtraCosts.Coords() {
		all = append(all, grid.WithExtraCost(c.X, c.Y, d.ExtraCosts[c.Y][c.X]))
	}

	g, err := grid.New(d.Tiles, append(all, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}
	return g, nil
}

// SearchOptions converts o into search options.
func (o Options) SearchOptions() []search.Option {
	var out []search.Option
	if o.EndOnUnstoppable {
		out = append(out, search.WithEndOnUnstoppable())
	}
	return out
}

// Coords lists the cells of the table in coord order.
func (n NestedInts) Coords() []coord.Coord {
	out := make([]coord.Coord, 0, len(n))
	for y, row := range n {
		for x := range row {
			out = append(out, coord.New(x, y))
		}
	}
	coord.Sort(out)
	return out
}

// Coords lists the marked cells of the table in coord order.
func (n NestedFlags) Coords() []coord.Coord {
	out := make([]coord.Coord, 0, len(n))
	for y, row := range n {
		for x := range row {
			out = append(out, coord.New(x, y))
		}
	}
	coord.Sort(out)
	return out
}

// FlagsOf builds a NestedFlags table marking coords, the inverse of Coords.
func FlagsOf(coords []coord.Coord) NestedFlags {
	return NestedFlags(coord.ToMap(coords))
}

// Encode writes v to w in format f. JSON output is indented by two spaces.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
