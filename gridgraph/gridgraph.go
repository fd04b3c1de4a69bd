package gridgraph

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/tilepath/coord"
	"github.com/katalvlaran/tilepath/grid"
)

// ToWeighted converts the walkable cells of g into a gonum weighted directed
// graph. Each walkable cell becomes a node; for every topology neighbor v of
// a walkable cell u that is itself walkable, an edge u→v is added with
// weight EntryCost(v). Edge weights therefore match the step costs used by
// package search, so gonum shortest paths agree with search.ShortestPath.
//
// Absent edges report +Inf weight.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func ToWeighted(g *grid.Grid) (*simple.WeightedDirectedGraph, *Index, error) {
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	ix := newIndex()

	// Add all walkable vertices
	g.Each(func(c coord.Coord) {
		if walkable(g, c) {
			wg.AddNode(simple.Node(ix.add(c)))
		}
	})

	// Add edges for each walkable neighbor pair
	offsets := g.Topology().Offsets()
	for uid, u := range ix.coords {
		for _, d := range offsets {
			v := u.Add(d.X, d.Y)
			vid, ok := ix.ids[v]
			if !ok {
				continue
			}
			w, err := g.EntryCost(v.X, v.Y)
			if err != nil {
				return nil, nil, err
			}
			wg.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(uid)),
				T: simple.Node(vid),
				W: float64(w),
			})
		}
	}

	return wg, ix, nil
}

// walkable reports whether c is in bounds and walkable.
func walkable(g *grid.Grid, c coord.Coord) bool {
	ok, err := g.IsWalkable(c.X, c.Y)
	return err == nil && ok
}
