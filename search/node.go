package search

import "github.com/katalvlaran/tilepath/coord"

// NodeRef is an index into an Engine's node arena. Refs are only meaningful
// for the Engine that produced them.
type NodeRef int

// NoParent marks a seed node: one with no predecessor.
const NoParent NodeRef = -1

// Node is a search record for one coordinate reached during a single search.
type Node struct {
	Coord   coord.Coord // position on the grid
	Cost    int         // accumulated entry cost from the nearest seed
	Parent  NodeRef     // predecessor, NoParent for seeds
	Visited bool        // set when the node is popped and expanded
}

// IsSeed reports whether n was seeded rather than reached from a parent.
func (n Node) IsSeed() bool { return n.Parent == NoParent }
