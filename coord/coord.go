// Package coord defines the integer (x, y) coordinate used as the universal
// key for grid lookups, visited sets and result ordering.
//
// Ordering is row-major: coordinates compare by Y first, then by X, so a
// sorted slice reads the grid top-to-bottom, left-to-right.
package coord

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
)

// Coord is an immutable grid coordinate. Two coordinates are equal iff both
// components match, so Coord can be used directly as a map key.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// New returns the coordinate (x, y).
func New(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// LogValue implements slog.LogValuer for structured logging.
func (c Coord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("x", c.X),
		slog.Int("y", c.Y),
	)
}

// Compare orders a and b row-major: by Y, then by X.
// Returns -1, 0 or +1.
func Compare(a, b Coord) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Less reports whether c sorts before o.
func (c Coord) Less(o Coord) bool {
	return Compare(c, o) < 0
}

// Sort sorts coords in place in row-major order.
func Sort(coords []Coord) {
	slices.SortFunc(coords, Compare)
}

// SortUnique sorts coords and drops duplicates, returning the shortened slice.
func SortUnique(coords []Coord) []Coord {
	Sort(coords)
	return slices.Compact(coords)
}

// ToMap builds a y → x → true lookup table from coords, the shape hosts use
// for O(1) membership tests keyed by row.
func ToMap(coords []Coord) map[int]map[int]bool {
	m := make(map[int]map[int]bool)
	for _, c := range coords {
		row, ok := m[c.Y]
		if !ok {
			row = make(map[int]bool)
			m[c.Y] = row
		}
		row[c.X] = true
	}

	return m
}

// FromMap flattens a y → x → flag table back into coordinates. Every key
// present is included regardless of its flag value; the result is sorted.
func FromMap(m map[int]map[int]bool) []Coord {
	out := make([]Coord, 0, len(m))
	for y, row := range m {
		for x := range row {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	Sort(out)

	return out
}
