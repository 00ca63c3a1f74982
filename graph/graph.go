package graph

import "fmt"

// NewRootNode creates the root node holding data.
// Returns ErrRootExists if the graph already has a root.
// Complexity: O(1).
func (g *Graph[T]) NewRootNode(data T) (*Node[T], error) {
	if g.root != nil {
		return nil, ErrRootExists
	}
	g.root = g.add(data)

	return g.root, nil
}

// NewNode links data under parent. If a node holding data already exists
// (found by FindNode from the root) only the missing edge is added and the
// existing node is returned; otherwise a new node is created.
// twoWay also adds the reverse link child→parent.
// Returns ErrNodeNotFound if parent is nil or not owned by g.
// Complexity: O(V+E) for the lookup.
func (g *Graph[T]) NewNode(parent *Node[T], data T, twoWay bool) (*Node[T], error) {
	if !g.owns(parent) {
		return nil, fmt.Errorf("%w: parent for %v", ErrNodeNotFound, data)
	}

	n := g.FindNode(g.root, data)
	if n == nil {
		n = g.add(data)
	}
	if n == parent {
		// self-links carry no adjacency
		return n, nil
	}
	if !parent.Connected(n) {
		parent.Connections = append(parent.Connections, n)
	}
	if twoWay && !n.Connected(parent) {
		n.Connections = append(n.Connections, parent)
	}

	return n, nil
}

// FindNode searches depth-first from root for the node holding data.
// Each node is expanded at most once, so cycles terminate.
// Returns nil when root is nil or data is absent.
// Complexity: O(V+E).
func (g *Graph[T]) FindNode(root *Node[T], data T) *Node[T] {
	if root == nil {
		return nil
	}
	seen := make(map[*Node[T]]bool, len(g.nodes))
	stack := []*Node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		if n.Data == data {
			return n
		}
		// push in reverse so the first connection is expanded first
		for i := len(n.Connections) - 1; i >= 0; i-- {
			if !seen[n.Connections[i]] {
				stack = append(stack, n.Connections[i])
			}
		}
	}

	return nil
}

// Has reports whether a node holding data is reachable from the root.
func (g *Graph[T]) Has(data T) bool {
	return g.FindNode(g.root, data) != nil
}

// Root returns the root node, or nil for an empty graph.
func (g *Graph[T]) Root() *Node[T] {
	return g.root
}

// Size returns the number of nodes created.
func (g *Graph[T]) Size() int {
	return len(g.nodes)
}

// Nodes returns the nodes in creation order.
func (g *Graph[T]) Nodes() []*Node[T] {
	out := make([]*Node[T], len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Node returns the node with the given ID, or nil.
func (g *Graph[T]) Node(id int) *Node[T] {
	if id < 0 || id >= len(g.nodes) {
		return nil
	}

	return g.nodes[id]
}

// EdgeCount returns the number of distinct unordered node pairs joined by
// a link in either direction.
// Complexity: O(V+E).
func (g *Graph[T]) EdgeCount() int {
	type pair struct{ a, b int }
	seen := make(map[pair]struct{})
	for _, n := range g.nodes {
		for _, c := range n.Connections {
			p := pair{n.ID, c.ID}
			if p.a > p.b {
				p.a, p.b = p.b, p.a
			}
			seen[p] = struct{}{}
		}
	}

	return len(seen)
}

// Reachable returns how many nodes can be reached from the root.
// Complexity: O(V+E).
func (g *Graph[T]) Reachable() int {
	if g.root == nil {
		return 0
	}
	seen := make([]bool, len(g.nodes))
	seen[g.root.ID] = true
	queue := []*Node[T]{g.root}
	count := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		count++
		for _, c := range n.Connections {
			if !seen[c.ID] {
				seen[c.ID] = true
				queue = append(queue, c)
			}
		}
	}

	return count
}

// ValidateTree checks that g is a rooted tree: the root has no parent, every
// other node has exactly one, and every node is reachable from the root.
func (g *Graph[T]) ValidateTree() error {
	if g.root == nil {
		return ErrEmptyGraph
	}
	parents := make([]int, len(g.nodes))
	for _, n := range g.nodes {
		for _, c := range n.Connections {
			parents[c.ID]++
		}
	}
	for _, n := range g.nodes {
		want := 1
		if n == g.root {
			want = 0
		}
		if parents[n.ID] != want {
			return fmt.Errorf("%w: node %d has %d parents", ErrNotTree, n.ID, parents[n.ID])
		}
	}
	if r := g.Reachable(); r != len(g.nodes) {
		return fmt.Errorf("%w: %d of %d nodes reachable", ErrNotTree, r, len(g.nodes))
	}

	return nil
}

// Walk visits the nodes reachable from the root in breadth-first order.
// Returning false from fn stops the walk.
func (g *Graph[T]) Walk(fn func(n *Node[T]) bool) {
	if g.root == nil {
		return
	}
	seen := make([]bool, len(g.nodes))
	seen[g.root.ID] = true
	queue := []*Node[T]{g.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !fn(n) {
			return
		}
		for _, c := range n.Connections {
			if !seen[c.ID] {
				seen[c.ID] = true
				queue = append(queue, c)
			}
		}
	}
}

// add appends a fresh, unlinked node.
func (g *Graph[T]) add(data T) *Node[T] {
	n := &Node[T]{ID: len(g.nodes), Data: data}
	g.nodes = append(g.nodes, n)

	return n
}

// owns reports whether n was created by g.
func (g *Graph[T]) owns(n *Node[T]) bool {
	return n != nil && n.ID >= 0 && n.ID < len(g.nodes) && g.nodes[n.ID] == n
}
