// Package grid defines core types, options, and sentinel errors
// for the grid cost/walkability model of github.com/katalvlaran/tilepath.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tilepath/coord"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates the input tile slice has no rows.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row")
	// ErrNonRectangular indicates rows of differing lengths when WithRectangular is set.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeCost indicates a base or per-coordinate cost below zero.
	ErrNegativeCost = errors.New("grid: entry cost must be non-negative")
	// ErrUnknownTopology indicates a Topology value outside Cardinal/Hex/Intercardinal.
	ErrUnknownTopology = errors.New("grid: unknown topology")
	// ErrOutOfBounds indicates a query for a coordinate that is not in the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Topology selects the movement rules: which neighbor offsets a search may take.
type Topology int

const (
	// Cardinal allows 4 directions: N, E, S, W.
	Cardinal Topology = iota
	// Hex allows 6 directions on an axial hex layout: N, NE, E, S, SW, W.
	Hex
	// Intercardinal allows 8 directions: N, NE, E, SE, S, SW, W, NW.
	Intercardinal
)

// Offsets are listed in the fixed expansion order; path output is
// deterministic when costs tie only as long as this order is kept.
var (
	cardinalOffsets = []coord.Coord{
		{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
	}
	hexOffsets = []coord.Coord{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0},
	}
	intercardinalOffsets = []coord.Coord{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
	}
)

// Offsets returns the (dx, dy) neighbor offsets for t in expansion order.
// The returned slice is shared and must not be modified.
// Returns nil for an unknown topology.
func (t Topology) Offsets() []coord.Coord {
	switch t {
	case Cardinal:
		return cardinalOffsets
	case Hex:
		return hexOffsets
	case Intercardinal:
		return intercardinalOffsets
	default:
		return nil
	}
}

// Valid reports whether t is one of the known topologies.
func (t Topology) Valid() bool {
	return t >= Cardinal && t <= Intercardinal
}

// String returns the topology name as used in grid description files.
func (t Topology) String() string {
	switch t {
	case Cardinal:
		return "Cardinal"
	case Hex:
		return "Hex"
	case Intercardinal:
		return "Intercardinal"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// ParseTopology converts a case-insensitive name into a Topology.
// The empty string maps to Cardinal.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cardinal":
		return Cardinal, nil
	case "hex":
		return Hex, nil
	case "intercardinal":
		return Intercardinal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, s)
	}
}

// Option configures grid construction via functional arguments.
// Invalid options are recorded and surfaced by New as ErrOptionViolation
// or a more specific sentinel.
type Option func(*Options)

// Options holds the construction parameters for a Grid.
type Options struct {
	// Topology selects the neighbor offsets used by searches.
	Topology Topology
	// Walkable lists the tile types traversable by default.
	Walkable []int
	// Costs maps a tile type to its base entry cost. Missing types cost 1.
	Costs map[int]int
	// ExtraCosts overrides the entry cost of single coordinates.
	ExtraCosts map[coord.Coord]int
	// Unstoppable marks coordinates that may be crossed but never ended on.
	Unstoppable []coord.Coord
	// Unwalkable marks coordinates that are never walkable.
	Unwalkable []coord.Coord
	// Rectangular rejects rows of differing lengths.
	Rectangular bool

	err error
}

// DefaultOptions returns Options with sensible defaults:
//   - Topology: Cardinal
//   - no walkable tiles, no costs, no overrides
//   - ragged rows allowed
func DefaultOptions() Options {
	return Options{
		Topology:   Cardinal,
		Costs:      make(map[int]int),
		ExtraCosts: make(map[coord.Coord]int),
	}
}

// WithTopology sets the movement topology.
func WithTopology(t Topology) Option {
	return func(o *Options) {
		if !t.Valid() {
			o.err = fmt.Errorf("%w: %d", ErrUnknownTopology, int(t))
			return
		}
		o.Topology = t
	}
}

// WithWalkable adds tile types to the walkable set.
func WithWalkable(tiles ...int) Option {
	return func(o *Options) {
		o.Walkable = append(o.Walkable, tiles...)
	}
}

// WithCost sets the base entry cost of one tile type.
func WithCost(tile, cost int) Option {
	return func(o *Options) {
		if cost < 0 {
			o.err = fmt.Errorf("%w: tile %d cost %d", ErrNegativeCost, tile, cost)
			return
		}
		o.Costs[tile] = cost
	}
}

// WithCosts merges a tile → cost table into the base costs.
func WithCosts(costs map[int]int) Option {
	return func(o *Options) {
		for tile, cost := range costs {
			if cost < 0 {
				o.err = fmt.Errorf("%w: tile %d cost %d", ErrNegativeCost, tile, cost)
				return
			}
			o.Costs[tile] = cost
		}
	}
}

// WithExtraCost overrides the entry cost at (x, y), taking precedence over
// the tile-type base cost.
func WithExtraCost(x, y, cost int) Option {
	return func(o *Options) {
		if cost < 0 {
			o.err = fmt.Errorf("%w: extra cost %d at (%d,%d)", ErrNegativeCost, cost, x, y)
			return
		}
		o.ExtraCosts[coord.New(x, y)] = cost
	}
}

// WithUnstoppable marks coordinates as unstoppable: a path may pass through
// them but never end on them.
func WithUnstoppable(coords ...coord.Coord) Option {
	return func(o *Options) {
		o.Unstoppable = append(o.Unstoppable, coords...)
	}
}

// WithUnwalkable marks coordinates as unwalkable regardless of tile type.
func WithUnwalkable(coords ...coord.Coord) Option {
	return func(o *Options) {
		o.Unwalkable = append(o.Unwalkable, coords...)
	}
}

// WithRectangular requires every row to have the same length.
func WithRectangular() Option {
	return func(o *Options) {
		o.Rectangular = true
	}
}
