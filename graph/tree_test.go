package graph_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foldnet/graph"
)

// treeEdges renders "parent>child" pairs in breadth-first order.
func treeEdges(tree *graph.Graph[string]) []string {
	var out []string
	tree.Walk(func(n *graph.Node[string]) bool {
		for _, c := range n.Connections {
			out = append(out, n.Data+">"+c.Data)
		}
		return true
	})

	return out
}

// buildGrid creates a two-way rows×cols grid graph rooted at "0_0".
func buildGrid(t testing.TB, rows, cols int) *graph.Graph[string] {
	g := graph.New[string]()
	_, err := g.NewRootNode("0_0")
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cur := g.FindNode(g.Root(), fmt.Sprintf("%d_%d", i, j))
			require.NotNil(t, cur)
			if j+1 < cols {
				_, err = g.NewNode(cur, fmt.Sprintf("%d_%d", i, j+1), true)
				require.NoError(t, err)
			}
			if i+1 < rows {
				_, err = g.NewNode(cur, fmt.Sprintf("%d_%d", i+1, j), true)
				require.NoError(t, err)
			}
		}
	}

	return g
}

func TestTrees_Errors(t *testing.T) {
	_, err := graph.DepthTree[int](nil)
	assert.ErrorIs(t, err, graph.ErrGraphNil)
	_, err = graph.BreadthTree(graph.New[int]())
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	assert.Panics(t, func() { graph.WithRand(nil) })
}

func TestDepthTree_Square(t *testing.T) {
	tree, err := graph.DepthTree(buildSquare(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"A>B", "B>C", "C>D"}, treeEdges(tree))
	require.NoError(t, tree.ValidateTree())
}

func TestBreadthTree_Square(t *testing.T) {
	tree, err := graph.BreadthTree(buildSquare(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"A>B", "A>D", "B>C"}, treeEdges(tree))
	require.NoError(t, tree.ValidateTree())
}

func TestTrees_CoverGrid(t *testing.T) {
	g := buildGrid(t, 4, 5)
	require.Equal(t, 20, g.Size())

	walkers := map[string]func(*graph.Graph[string], ...graph.Option) (*graph.Graph[string], error){
		"depth":   graph.DepthTree[string],
		"breadth": graph.BreadthTree[string],
	}
	for name, walk := range walkers {
		for _, seed := range []int64{0, 1, 7, 42} {
			t.Run(fmt.Sprintf("%s/seed=%d", name, seed), func(t *testing.T) {
				tree, err := walk(g, graph.WithSeed(seed))
				require.NoError(t, err)
				assert.Equal(t, g.Size(), tree.Size())
				assert.Equal(t, g.Size()-1, tree.EdgeCount())
				assert.NoError(t, tree.ValidateTree())
			})
		}
	}
}

func TestTrees_SeedDeterminism(t *testing.T) {
	g := buildGrid(t, 3, 4)
	first, err := graph.DepthTree(g, graph.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := graph.DepthTree(g, graph.WithRand(rand.New(rand.NewSource(99))))
		require.NoError(t, err)
		assert.Equal(t, treeEdges(first), treeEdges(again))
	}
}

func TestTrees_OnAttach(t *testing.T) {
	g := buildSquare(t)
	var attached [][2]int
	_, err := graph.BreadthTree(g, graph.WithOnAttach(func(p, c int) {
		attached = append(attached, [2]int{p, c})
	}))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {1, 2}}, attached)
}

func TestTrees_IncompleteSource(t *testing.T) {
	// Cut C–D out of a one-way chain so D is no longer reachable.
	g := graph.New[string]()
	a, _ := g.NewRootNode("A")
	b, _ := g.NewNode(a, "B", false)
	c, _ := g.NewNode(b, "C", false)
	_, _ = g.NewNode(c, "D", false)
	c.Connections = nil

	_, err := graph.DepthTree(g)
	assert.ErrorIs(t, err, graph.ErrIncompleteSpanningTree)
	_, err = graph.BreadthTree(g)
	assert.ErrorIs(t, err, graph.ErrIncompleteSpanningTree)
}
