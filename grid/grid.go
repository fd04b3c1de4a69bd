package grid

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilepath/coord"
)

// defaultCost is the entry cost of a tile type with no configured cost.
const defaultCost = 1

// Grid is the static cost/walkability model searched by package search.
// It is immutable once built and safe for concurrent readers.
//
// tiles[y][x] holds the tile type at (x, y). Rows may differ in length
// unless the grid was built WithRectangular.
type Grid struct {
	tiles       [][]int
	walkable    mapset.Set[int]
	costs       map[int]int
	extraCosts  map[coord.Coord]int
	unstoppable map[coord.Coord]struct{}
	unwalkable  map[coord.Coord]struct{}
	topology    Topology
}

// New constructs a Grid from row-major tiles and functional options.
// It deep-copies all input so later mutation by the caller has no effect.
//
// Returns ErrEmptyGrid if tiles has no rows, ErrNonRectangular if
// WithRectangular is set and row lengths differ, and ErrNegativeCost,
// ErrUnknownTopology or ErrOptionViolation for invalid options.
//
// Complexity: O(W×H) time and memory.
func New(tiles [][]int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("%w: nil option", ErrOptionViolation)
		}
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(tiles) == 0 {
		return nil, ErrEmptyGrid
	}
	if o.Rectangular {
		w := len(tiles[0])
		for y, row := range tiles {
			if len(row) != w {
				return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
			}
		}
	}

	cells := make([][]int, len(tiles))
	for y, row := range tiles {
		cells[y] = slices.Clone(row)
	}

	g := &Grid{
		tiles:       cells,
		walkable:    mapset.New[int](),
		costs:       make(map[int]int, len(o.Costs)),
		extraCosts:  make(map[coord.Coord]int, len(o.ExtraCosts)),
		unstoppable: make(map[coord.Coord]struct{}, len(o.Unstoppable)),
		unwalkable:  make(map[coord.Coord]struct{}, len(o.Unwalkable)),
		topology:    o.Topology,
	}
	for _, t := range o.Walkable {
		g.walkable.Put(t)
	}
	for t, c := range o.Costs {
		g.costs[t] = c
	}
	for c, cost := range o.ExtraCosts {
		g.extraCosts[c] = cost
	}
	for _, c := range o.Unstoppable {
		g.unstoppable[c] = struct{}{}
	}
	for _, c := range o.Unwalkable {
		g.unwalkable[c] = struct{}{}
	}

	return g, nil
}

// InBounds reports whether (x, y) lies within the grid: y must index an
// existing row and x must fall within that row's length.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	if x < 0 || y < 0 || y >= len(g.tiles) {
		return false
	}
	return x < len(g.tiles[y])
}

// Tile returns the tile type at (x, y), or ErrOutOfBounds.
func (g *Grid) Tile(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, outOfBounds(x, y)
	}
	return g.tiles[y][x], nil
}

// IsWalkable reports whether (x, y) may be entered. A coordinate marked
// unwalkable is never walkable; otherwise its tile type decides.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) IsWalkable(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, outOfBounds(x, y)
	}
	if _, ok := g.unwalkable[coord.New(x, y)]; ok {
		return false, nil
	}
	return g.walkable.Has(g.tiles[y][x]), nil
}

// IsStoppable reports whether a path may end on (x, y): it must be walkable
// and not marked unstoppable.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) IsStoppable(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, outOfBounds(x, y)
	}
	if _, ok := g.unstoppable[coord.New(x, y)]; ok {
		return false, nil
	}
	return g.IsWalkable(x, y)
}

// EntryCost returns the cost of stepping onto (x, y): the per-coordinate
// override if present, else the tile-type base cost, else 1.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) EntryCost(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, outOfBounds(x, y)
	}
	if cost, ok := g.extraCosts[coord.New(x, y)]; ok {
		return cost, nil
	}
	if cost, ok := g.costs[g.tiles[y][x]]; ok {
		return cost, nil
	}
	return defaultCost, nil
}

// Topology returns the movement topology fixed at construction.
func (g *Grid) Topology() Topology {
	return g.topology
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.tiles)
}

// RowLen returns the length of row y, or 0 if y is not a row.
func (g *Grid) RowLen(y int) int {
	if y < 0 || y >= len(g.tiles) {
		return 0
	}
	return len(g.tiles[y])
}

// WalkableTiles returns the walkable tile types in ascending order.
func (g *Grid) WalkableTiles() []int {
	out := make([]int, 0, g.walkable.Size())
	g.walkable.Each(func(t int) {
		out = append(out, t)
	})
	slices.Sort(out)

	return out
}

// Each calls fn for every in-bounds coordinate in row-major order.
func (g *Grid) Each(fn func(c coord.Coord)) {
	for y, row := range g.tiles {
		for x := range row {
			fn(coord.New(x, y))
		}
	}
}

func outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
}
