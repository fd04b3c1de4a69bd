package search

import (
	"container/heap"
	"slices"

	"github.com/katalvlaran/tilepath/coord"
	"github.com/katalvlaran/tilepath/grid"
)

// Engine holds the mutable state of one search: the node arena, the
// cost-ordered frontier, the cache of expanded coordinates and the optional
// target. An Engine is single-use and not safe for concurrent use.
type Engine struct {
	opts      Options
	seeds     []coord.Coord
	target    coord.Coord
	hasTarget bool

	nodes    []Node                  // arena; NodeRef indexes into it
	frontier frontier                // min-heap of pending nodes
	seq      uint64                  // next frontier insertion sequence
	cache    map[coord.Coord]NodeRef // expanded coordinate → node
	order    []NodeRef               // cache insertion order
	queued   map[coord.Coord]int     // lowest queued cost per coordinate

	reached  bool
	terminal NodeRef
	expanded int
}

// NewEngine creates an empty engine for the given seeds and optional target.
// It does not push any node: callers seed the frontier with MakeNode and
// Push, which allows multi-source searches.
// Returns ErrNoSources if seeds is empty, or ErrOptionViolation for bad options.
func NewEngine(seeds []coord.Coord, target *coord.Coord, opts ...Option) (*Engine, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return newEngine(seeds, target, cfg)
}

func newEngine(seeds []coord.Coord, target *coord.Coord, cfg Options) (*Engine, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSources
	}
	e := &Engine{
		opts:     cfg,
		seeds:    slices.Clone(seeds),
		nodes:    make([]Node, 0, 64),
		frontier: make(frontier, 0, 64),
		cache:    make(map[coord.Coord]NodeRef),
		queued:   make(map[coord.Coord]int),
		terminal: NoParent,
	}
	if target != nil {
		e.target = *target
		e.hasTarget = true
	}
	heap.Init(&e.frontier)

	return e, nil
}

// Seeds returns a copy of the seed coordinates the engine was created with.
func (e *Engine) Seeds() []coord.Coord {
	return slices.Clone(e.seeds)
}

// Target returns the target coordinate and whether one was set.
func (e *Engine) Target() (coord.Coord, bool) {
	return e.target, e.hasTarget
}

// MakeNode appends a fresh node for (x, y) with the given accumulated cost
// and parent to the arena and returns its reference. It does not push it.
func (e *Engine) MakeNode(parent NodeRef, x, y, cost int) NodeRef {
	e.nodes = append(e.nodes, Node{
		Coord:  coord.New(x, y),
		Cost:   cost,
		Parent: parent,
	})
	return NodeRef(len(e.nodes) - 1)
}

// Node returns a copy of the node behind ref. ref must come from this engine.
func (e *Engine) Node(ref NodeRef) Node {
	return e.nodes[ref]
}

// Push inserts ref into the frontier ordered by accumulated cost (plus the
// heuristic for targeted searches); equal priorities pop in push order.
func (e *Engine) Push(ref NodeRef) {
	n := e.nodes[ref]
	priority := n.Cost
	if e.hasTarget && e.opts.Heuristic != nil {
		priority += e.opts.Heuristic(n.Coord, e.target)
	}
	heap.Push(&e.frontier, frontierItem{ref: ref, priority: priority, seq: e.seq})
	e.seq++

	if best, ok := e.queued[n.Coord]; !ok || n.Cost < best {
		e.queued[n.Coord] = n.Cost
	}
}

// Pop removes and returns the lowest-priority frontier node, or false if the
// frontier is empty. Popping the target marks the destination as reached.
func (e *Engine) Pop() (NodeRef, bool) {
	if e.frontier.Len() == 0 {
		return NoParent, false
	}
	item := heap.Pop(&e.frontier).(frontierItem)
	if e.hasTarget && e.nodes[item.ref].Coord == e.target {
		e.reached = true
		e.terminal = item.ref
	}

	return item.ref, true
}

// Size returns the current frontier length, stale entries included.
func (e *Engine) Size() int {
	return e.frontier.Len()
}

// ReachedDestination reports whether the target has been popped.
// Always false for untargeted searches.
func (e *Engine) ReachedDestination() bool {
	return e.reached
}

// Terminal returns the node popped for the target, if it was reached.
func (e *Engine) Terminal() (NodeRef, bool) {
	return e.terminal, e.reached
}

// Cache marks ref visited and records it as the expanded node for its
// coordinate. A coordinate is cached at most once; later calls for the same
// coordinate only set the visited flag.
func (e *Engine) Cache(ref NodeRef) {
	e.nodes[ref].Visited = true
	c := e.nodes[ref].Coord
	if _, ok := e.cache[c]; ok {
		return
	}
	e.cache[c] = ref
	e.order = append(e.order, ref)
	delete(e.queued, c)
}

// IsCached reports whether c has already been expanded.
func (e *Engine) IsCached(c coord.Coord) bool {
	_, ok := e.cache[c]
	return ok
}

// TraversedNodes returns every cached node in cache-insertion order.
func (e *Engine) TraversedNodes() []NodeRef {
	return slices.Clone(e.order)
}

// Expanded returns the number of nodes expanded so far.
func (e *Engine) Expanded() int {
	return e.expanded
}

// FormatPath walks the parent chain from terminal back to its seed and
// returns the coordinates in travel order. The seed itself is excluded, so
// a seed terminal yields an empty, non-nil path.
func (e *Engine) FormatPath(terminal NodeRef) []coord.Coord {
	path := make([]coord.Coord, 0, 16)
	for at := terminal; at != NoParent && e.nodes[at].Parent != NoParent; at = e.nodes[at].Parent {
		path = append(path, e.nodes[at].Coord)
	}
	slices.Reverse(path)

	return path
}

// CheckAdjacent considers the neighbor of ref at offset (dx, dy). If the
// neighbor is walkable and not yet expanded, a node carrying
// ref's cost plus the neighbor's entry cost is pushed, subject to the
// relaxation policy.
//
// The neighbor must be in bounds; otherwise grid.ErrOutOfBounds is returned.
func (e *Engine) CheckAdjacent(g *grid.Grid, ref NodeRef, dx, dy int) error {
	cur := e.nodes[ref]
	n := cur.Coord.Add(dx, dy)

	walkable, err := g.IsWalkable(n.X, n.Y)
	if err != nil {
		return err
	}
	if !walkable || e.IsCached(n) {
		return nil
	}

	step, err := g.EntryCost(n.X, n.Y)
	if err != nil {
		return err
	}
	cost := cur.Cost + step

	if e.opts.Relaxation == RelaxStrict {
		if best, ok := e.queued[n]; ok && best <= cost {
			return nil
		}
	}
	e.Push(e.MakeNode(ref, n.X, n.Y, cost))

	return nil
}
