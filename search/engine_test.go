package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/coord"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/search"
)

// openGrid returns a w×h grid of walkable tile 1 under topo.
func openGrid(t testing.TB, w, h int, topo grid.Topology, opts ...grid.Option) *grid.Grid {
	t.Helper()
	tiles := make([][]int, h)
	for y := range tiles {
		tiles[y] = make([]int, w)
		for x := range tiles[y] {
			tiles[y][x] = 1
		}
	}
	base := []grid.Option{grid.WithWalkable(1), grid.WithTopology(topo)}
	g, err := grid.New(tiles, append(base, opts...)...)
	require.NoError(t, err)
	return g
}

func newEngine(t *testing.T, target *coord.Coord, opts ...search.Option) *search.Engine {
	t.Helper()
	e, err := search.NewEngine([]coord.Coord{coord.New(0, 0)}, target, opts...)
	require.NoError(t, err)
	return e
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := search.NewEngine(nil, nil)
	assert.ErrorIs(t, err, search.ErrNoSources)

	_, err = search.NewEngine([]coord.Coord{{}}, nil, search.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestNewEngine_DoesNotSeed checks the engine starts with an empty frontier.
func TestNewEngine_DoesNotSeed(t *testing.T) {
	target := coord.New(3, 3)
	seeds := []coord.Coord{coord.New(1, 1), coord.New(2, 2)}
	e, err := search.NewEngine(seeds, &target)
	require.NoError(t, err)

	assert.Equal(t, 0, e.Size())
	assert.Equal(t, seeds, e.Seeds())
	got, ok := e.Target()
	assert.True(t, ok)
	assert.Equal(t, target, got)
	assert.False(t, e.ReachedDestination())

	_, ok = e.Pop()
	assert.False(t, ok, "pop on empty frontier")
}

// TestEngine_FrontierOrder verifies cost ordering with first-in-first-out ties.
func TestEngine_FrontierOrder(t *testing.T) {
	e := newEngine(t, nil)
	refs := []search.NodeRef{
		e.MakeNode(search.NoParent, 0, 0, 3),
		e.MakeNode(search.NoParent, 1, 0, 1),
		e.MakeNode(search.NoParent, 2, 0, 2),
		e.MakeNode(search.NoParent, 3, 0, 1),
	}
	for _, r := range refs {
		e.Push(r)
	}
	require.Equal(t, 4, e.Size())

	var xs []int
	for e.Size() > 0 {
		ref, ok := e.Pop()
		require.True(t, ok)
		xs = append(xs, e.Node(ref).Coord.X)
	}
	assert.Equal(t, []int{1, 3, 2, 0}, xs)
}

func TestEngine_ReachedDestination(t *testing.T) {
	target := coord.New(1, 0)
	e := newEngine(t, &target)
	e.Push(e.MakeNode(search.NoParent, 0, 0, 0))
	e.Push(e.MakeNode(search.NoParent, 1, 0, 5))

	_, _ = e.Pop()
	assert.False(t, e.ReachedDestination())
	ref, _ := e.Pop()
	assert.True(t, e.ReachedDestination())
	term, ok := e.Terminal()
	assert.True(t, ok)
	assert.Equal(t, ref, term)
}

// TestEngine_CacheAndTraversal checks visited flags, dedup and insertion order.
func TestEngine_CacheAndTraversal(t *testing.T) {
	e := newEngine(t, nil)
	a := e.MakeNode(search.NoParent, 2, 2, 0)
	b := e.MakeNode(a, 0, 0, 1)
	dup := e.MakeNode(a, 2, 2, 4)

	assert.False(t, e.Node(a).Visited)
	e.Cache(a)
	e.Cache(b)
	e.Cache(dup)

	assert.True(t, e.Node(a).Visited)
	assert.True(t, e.IsCached(coord.New(0, 0)))
	assert.False(t, e.IsCached(coord.New(1, 1)))
	assert.Equal(t, []search.NodeRef{a, b}, e.TraversedNodes())
}

// TestEngine_FormatPath reconstructs a three-step chain, seed excluded.
func TestEngine_FormatPath(t *testing.T) {
	e := newEngine(t, nil)
	s := e.MakeNode(search.NoParent, 0, 0, 0)
	n1 := e.MakeNode(s, 1, 0, 1)
	n2 := e.MakeNode(n1, 1, 1, 2)
	n3 := e.MakeNode(n2, 2, 1, 3)

	assert.Equal(t,
		[]coord.Coord{coord.New(1, 0), coord.New(1, 1), coord.New(2, 1)},
		e.FormatPath(n3))
	assert.True(t, e.Node(s).IsSeed())
	assert.False(t, e.Node(n3).IsSeed())

	p := e.FormatPath(s)
	assert.NotNil(t, p)
	assert.Empty(t, p)
}

// TestEngine_CheckAdjacent covers blocked, cached, costed and out-of-bounds neighbors.
//
//	1 0 1
//	1 1 1   tile 1 cost 1, (2,1) extra cost 7
func TestEngine_CheckAdjacent(t *testing.T) {
	g, err := grid.New(
		[][]int{{1, 0, 1}, {1, 1, 1}},
		grid.WithWalkable(1),
		grid.WithExtraCost(2, 1, 7),
	)
	require.NoError(t, err)

	e := newEngine(t, nil)
	root := e.MakeNode(search.NoParent, 1, 1, 2)
	e.Cache(root)

	// blocked tile (1,0)
	require.NoError(t, e.CheckAdjacent(g, root, 0, -1))
	assert.Equal(t, 0, e.Size())

	// east neighbor with override cost
	require.NoError(t, e.CheckAdjacent(g, root, 1, 0))
	require.Equal(t, 1, e.Size())
	ref, _ := e.Pop()
	n := e.Node(ref)
	assert.Equal(t, coord.New(2, 1), n.Coord)
	assert.Equal(t, 9, n.Cost)
	assert.Equal(t, root, n.Parent)

	// cached neighbor is skipped
	e.Cache(e.MakeNode(root, 0, 1, 3))
	require.NoError(t, e.CheckAdjacent(g, root, -1, 0))
	assert.Equal(t, 0, e.Size())

	// out of bounds is a contract violation
	err = e.CheckAdjacent(g, root, 0, 1)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestEngine_Relaxation compares duplicate handling of both policies.
func TestEngine_Relaxation(t *testing.T) {
	g := openGrid(t, 3, 1, grid.Cardinal)

	cases := []struct {
		mode search.Relaxation
		want int
	}{
		{search.RelaxStrict, 1},
		{search.RelaxPermissive, 2},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			e := newEngine(t, nil, search.WithRelaxation(tc.mode))
			left := e.MakeNode(search.NoParent, 0, 0, 0)
			right := e.MakeNode(search.NoParent, 2, 0, 0)

			// both reach (1,0) at equal cost
			require.NoError(t, e.CheckAdjacent(g, left, 1, 0))
			require.NoError(t, e.CheckAdjacent(g, right, -1, 0))
			assert.Equal(t, tc.want, e.Size())
		})
	}
}

// TestEngine_StrictRelaxationAcceptsCheaper checks a strictly cheaper
// candidate is still pushed in strict mode.
func TestEngine_StrictRelaxationAcceptsCheaper(t *testing.T) {
	g := openGrid(t, 3, 1, grid.Cardinal)
	e := newEngine(t, nil)
	far := e.MakeNode(search.NoParent, 0, 0, 5)
	near := e.MakeNode(search.NoParent, 2, 0, 0)

	require.NoError(t, e.CheckAdjacent(g, far, 1, 0))
	require.NoError(t, e.CheckAdjacent(g, near, -1, 0))
	require.Equal(t, 2, e.Size())

	ref, _ := e.Pop()
	assert.Equal(t, 1, e.Node(ref).Cost)
	assert.Equal(t, near, e.Node(ref).Parent)
}

func TestRelaxation_String(t *testing.T) {
	assert.Equal(t, "strict", search.RelaxStrict.String())
	assert.Equal(t, "permissive", search.RelaxPermissive.String())
	assert.Equal(t, "Relaxation(4)", search.Relaxation(4).String())
}

func TestHeuristics(t *testing.T) {
	a, b := coord.New(0, 0), coord.New(2, 2)
	assert.Equal(t, 4, search.Manhattan(a, b))
	assert.Equal(t, 2, search.Chebyshev(a, b))
	assert.Equal(t, 4, search.HexDistance(a, b))
	assert.Equal(t, 2, search.HexDistance(coord.New(0, 2), coord.New(2, 0)))
	assert.Equal(t, 1, search.HexDistance(coord.New(1, 1), coord.New(0, 2)))
}
