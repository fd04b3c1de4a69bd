package search

import (
	"fmt"

	"github.com/katalvlaran/tilepath/grid"
)

// Run drives the traversal until the frontier is empty or the target is
// reached. Each iteration pops the cheapest node, skips it if its coordinate
// was already expanded, caches it, and examines the in-bounds neighbors
// allowed by the grid topology in their fixed order.
//
// Returns the context error on cancellation, ErrExpansionLimit when
// MaxExpansions is exceeded, or any OnVisit error.
//
// Complexity: O(N log N) for N frontier pushes; N ≤ cells × neighbors.
func (e *Engine) Run(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	offsets := g.Topology().Offsets()
	ctx := e.opts.Ctx

	for e.Size() > 0 && !e.ReachedDestination() {
		// cancellation check (once per pop)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ref, _ := e.Pop()
		node := e.nodes[ref]
		if e.IsCached(node.Coord) {
			continue // stale duplicate
		}
		if e.opts.MaxExpansions > 0 && e.expanded >= e.opts.MaxExpansions {
			return fmt.Errorf("%w: %d nodes expanded", ErrExpansionLimit, e.expanded)
		}

		e.Cache(ref)
		e.expanded++
		if err := e.opts.OnVisit(node.Coord, node.Cost); err != nil {
			return fmt.Errorf("search: OnVisit error at %v: %w", node.Coord, err)
		}
		if e.ReachedDestination() {
			break
		}

		for _, d := range offsets {
			nx, ny := node.Coord.X+d.X, node.Coord.Y+d.Y
			if !g.InBounds(nx, ny) {
				continue
			}
			if err := e.CheckAdjacent(g, ref, d.X, d.Y); err != nil {
				return err
			}
		}
	}

	return nil
}
