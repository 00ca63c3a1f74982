package graph

// breadthItem pairs a source node with its counterpart in the tree.
type breadthItem[T comparable] struct {
	src  *Node[T]
	tree *Node[T]
}

// BreadthTree derives a spanning tree of g breadth-first from g's root.
//
// A FIFO queue is seeded with the root; each dequeued node attaches every
// not-yet-visited neighbor as a tree child and enqueues it.
//
// Returns ErrGraphNil, ErrEmptyGraph, or ErrIncompleteSpanningTree when the
// source graph is not connected from its root.
// Complexity: O(V·(V+E)) including the FindNode inside NewNode.
func BreadthTree[T comparable](g *Graph[T], opts ...Option) (*Graph[T], error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	tree := New[T]()
	root, _ := tree.NewRootNode(g.root.Data)
	visited := make([]bool, g.Size())
	visited[g.root.ID] = true
	queue := []breadthItem[T]{{src: g.root, tree: root}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		for _, nbr := range shuffled(item.src.Connections, o.Rand) {
			if visited[nbr.ID] {
				continue
			}
			visited[nbr.ID] = true
			child, err := tree.NewNode(item.tree, nbr.Data, false)
			if err != nil {
				return nil, err
			}
			o.OnAttach(item.src.ID, nbr.ID)
			queue = append(queue, breadthItem[T]{src: nbr, tree: child})
		}
	}

	if err := checkCoverage(g, tree); err != nil {
		return nil, err
	}

	return tree, nil
}
