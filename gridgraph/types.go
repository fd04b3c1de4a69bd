// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/tilepath.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/tilepath/coord"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrNotInGraph indicates a coordinate that is not a walkable cell of the exported graph.
	ErrNotInGraph = errors.New("gridgraph: coordinate is not a node of the graph")
)

// Index maps walkable grid cells to graph node IDs and back.
// IDs are assigned densely from 0 in row-major order.
type Index struct {
	ids    map[coord.Coord]int64
	coords []coord.Coord
}

func newIndex() *Index {
	return &Index{ids: make(map[coord.Coord]int64)}
}

func (ix *Index) add(c coord.Coord) int64 {
	id := int64(len(ix.coords))
	ix.ids[c] = id
	ix.coords = append(ix.coords, c)

	return id
}

// ID returns the node ID of c, or ErrNotInGraph.
func (ix *Index) ID(c coord.Coord) (int64, error) {
	id, ok := ix.ids[c]
	if !ok {
		return 0, ErrNotInGraph
	}
	return id, nil
}

// Coord returns the cell behind node ID id.
func (ix *Index) Coord(id int64) (coord.Coord, bool) {
	if id < 0 || id >= int64(len(ix.coords)) {
		return coord.Coord{}, false
	}
	return ix.coords[id], true
}

// Len returns the number of indexed cells.
func (ix *Index) Len() int {
	return len(ix.coords)
}
