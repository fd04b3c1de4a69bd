package search

import (
	"fmt"

	"github.com/katalvlaran/tilepath/coord"
	"github.com/katalvlaran/tilepath/grid"
)

// FindPath returns the cheapest path from start to end on g.
//
// The path lists every coordinate stepped onto in order, excluding start and
// ending at end. start == end yields an empty path without searching.
//
// Returns ErrNoPath (wrapped) when end is out of bounds, not stoppable and
// WithEndOnUnstoppable is not set, or unreachable. Returns ErrNilGrid,
// ErrOptionViolation, ErrExpansionLimit, or the context error for the
// corresponding failures.
func FindPath(g *grid.Grid, start, end coord.Coord, opts ...Option) ([]coord.Coord, error) {
	res, err := ShortestPath(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// ShortestPath is FindPath returning the total cost and expansion count
// alongside the path.
func ShortestPath(g *grid.Grid, start, end coord.Coord, opts ...Option) (*PathResult, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Trivial cases resolved without a search
	if start == end {
		return &PathResult{Path: []coord.Coord{}}, nil
	}
	if stop, err := g.IsStoppable(end.X, end.Y); (err != nil || !stop) && !cfg.EndOnUnstoppable {
		return nil, fmt.Errorf("%w: target %v is not stoppable", ErrNoPath, end)
	}

	// 3) Seed a single node at start and run
	e, err := newEngine([]coord.Coord{start}, &end, cfg)
	if err != nil {
		return nil, err
	}
	e.Push(e.MakeNode(NoParent, start.X, start.Y, 0))

	e.logStart("path", g)
	if err := e.Run(g); err != nil {
		return nil, err
	}

	// 4) Reconstruct
	term, ok := e.Terminal()
	if !ok {
		e.logDone("path", 0)
		return nil, fmt.Errorf("%w: %v unreachable from %v", ErrNoPath, end, start)
	}
	res := &PathResult{
		Path:     e.FormatPath(term),
		Cost:     e.Node(term).Cost,
		Expanded: e.Expanded(),
	}
	e.logDone("path", len(res.Path))

	return res, nil
}

// FindWalkableArea returns every walkable coordinate reachable from any of
// sources, sources included when walkable. The result is deduplicated and
// sorted in coord order.
//
// All sources are seeded at cost 0 and the traversal runs until the frontier
// is exhausted. Sources outside the grid are seeded but never reported.
//
// Returns ErrNilGrid, ErrNoSources, ErrOptionViolation, ErrExpansionLimit or
// the context error.
func FindWalkableArea(g *grid.Grid, sources []coord.Coord, opts ...Option) ([]coord.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	e, err := newEngine(sources, nil, cfg)
	if err != nil {
		return nil, err
	}
	for _, s := range sources {
		e.Push(e.MakeNode(NoParent, s.X, s.Y, 0))
	}

	e.logStart("area", g)
	if err := e.Run(g); err != nil {
		return nil, err
	}

	area := make([]coord.Coord, 0, len(e.order))
	for _, ref := range e.TraversedNodes() {
		c := e.nodes[ref].Coord
		if ok, err := g.IsWalkable(c.X, c.Y); err == nil && ok {
			area = append(area, c)
		}
	}
	area = coord.SortUnique(area)
	e.logDone("area", len(area))

	return area, nil
}

func (e *Engine) logStart(kind string, g *grid.Grid) {
	if e.opts.Logger == nil {
		return
	}
	args := []any{
		"kind", kind,
		"seeds", len(e.seeds),
		"topology", g.Topology().String(),
		"relaxation", e.opts.Relaxation.String(),
	}
	if e.hasTarget {
		args = append(args, "target", e.target)
	}
	e.opts.Logger.Debug("search started", args...)
}

func (e *Engine) logDone(kind string, results int) {
	if e.opts.Logger == nil {
		return
	}
	e.opts.Logger.Debug("search finished",
		"kind", kind,
		"expanded", e.expanded,
		"arena", len(e.nodes),
		"results", results,
		"reached", e.reached,
	)
}
