package search

import "github.com/katalvlaran/tilepath/coord"

// Manhattan is the 4-neighbor step distance. Admissible on Cardinal grids
// whose entry costs are all ≥ 1.
func Manhattan(from, to coord.Coord) int {
	return abs(to.X-from.X) + abs(to.Y-from.Y)
}

// Chebyshev is the 8-neighbor step distance. Admissible on Intercardinal
// grids whose entry costs are all ≥ 1.
func Chebyshev(from, to coord.Coord) int {
	return max(abs(to.X-from.X), abs(to.Y-from.Y))
}

// HexDistance is the step distance on the axial layout used by grid.Hex,
// where (1,-1) and (-1,1) are neighbors but (1,1) and (-1,-1) are not.
func HexDistance(from, to coord.Coord) int {
	dx, dy := to.X-from.X, to.Y-from.Y
	return (abs(dx) + abs(dy) + abs(dx+dy)) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
