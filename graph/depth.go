package graph

import "fmt"

// depthFrame is one level of the explicit depth-first stack: a source node,
// its tree counterpart, its (possibly shuffled) neighbors and the cursor.
type depthFrame[T comparable] struct {
	src       *Node[T]
	tree      *Node[T]
	neighbors []*Node[T]
	next      int
}

// DepthTree derives a spanning tree of g depth-first from g's root.
//
// For each neighbor of the current node that is not yet in the tree, the
// neighbor is attached as a child of the current node and explored fully
// before the next neighbor is considered. The walk uses an explicit stack,
// so recursion depth does not grow with the graph.
//
// Returns ErrGraphNil, ErrEmptyGraph, or ErrIncompleteSpanningTree when the
// source graph is not connected from its root.
// Complexity: O(V·(V+E)) because each presence check is a FindNode search.
func DepthTree[T comparable](g *Graph[T], opts ...Option) (*Graph[T], error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	tree := New[T]()
	root, _ := tree.NewRootNode(g.root.Data)
	stack := []*depthFrame[T]{{
		src:       g.root,
		tree:      root,
		neighbors: shuffled(g.root.Connections, o.Rand),
	}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}
		nbr := top.neighbors[top.next]
		top.next++
		if tree.Has(nbr.Data) {
			continue
		}
		child, err := tree.NewNode(top.tree, nbr.Data, false)
		if err != nil {
			return nil, err
		}
		o.OnAttach(top.src.ID, nbr.ID)
		stack = append(stack, &depthFrame[T]{
			src:       nbr,
			tree:      child,
			neighbors: shuffled(nbr.Connections, o.Rand),
		})
	}

	if err := checkCoverage(g, tree); err != nil {
		return nil, err
	}

	return tree, nil
}

// prepare validates g and applies opts.
func prepare[T comparable](g *Graph[T], opts []Option) (TreeOptions, error) {
	o := DefaultOptions()
	if g == nil {
		return o, ErrGraphNil
	}
	if g.root == nil {
		return o, ErrEmptyGraph
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o, nil
}

// checkCoverage reports ErrIncompleteSpanningTree when tree misses nodes of g.
func checkCoverage[T comparable](g, tree *Graph[T]) error {
	if tree.Size() != g.Size() {
		return fmt.Errorf("%w: %d of %d nodes", ErrIncompleteSpanningTree, tree.Size(), g.Size())
	}

	return nil
}
