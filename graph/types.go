// Package graph declares Node and Graph, a generic node/adjacency container
// used both for a full adjacency map and for a rooted spanning tree.
//
// A Graph stores its nodes in creation order; Node.ID is the creation index.
// Edges are adjacency entries in Node.Connections and are never duplicated
// between the same ordered pair. A two-way link stores both directions.
//
// Errors:
//
//	ErrGraphNil                - graph pointer is nil.
//	ErrEmptyGraph              - graph has no root node.
//	ErrRootExists              - NewRootNode called twice.
//	ErrNodeNotFound            - node does not belong to this graph.
//	ErrIncompleteSpanningTree  - a tree does not cover its source graph.
//	ErrNotTree                 - a graph is not a rooted, acyclic, connected tree.
package graph

import (
	"errors"
	"math/rand"
)

// Sentinel errors for graph operations.
var (
	// ErrGraphNil indicates a nil *Graph was passed.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrEmptyGraph indicates an operation needs a root node but none exists.
	ErrEmptyGraph = errors.New("graph: graph has no root")

	// ErrRootExists indicates a second root node was requested.
	ErrRootExists = errors.New("graph: root node already set")

	// ErrNodeNotFound indicates a node that is nil or owned by another graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrIncompleteSpanningTree indicates a spanning tree with fewer nodes
	// than the graph it was derived from.
	ErrIncompleteSpanningTree = errors.New("graph: spanning tree does not cover every node")

	// ErrNotTree indicates a graph that is not a rooted arborescence.
	ErrNotTree = errors.New("graph: not a rooted tree")
)

// Node is one vertex of a Graph.
type Node[T comparable] struct {
	// ID is the creation index of the node inside its graph.
	ID int

	// Data is the payload, compared with == during lookups.
	Data T

	// Connections lists outgoing adjacency. For a spanning tree these are
	// the children; for a two-way graph every edge appears on both ends.
	Connections []*Node[T]
}

// Connected reports whether n has an outgoing link to m.
func (n *Node[T]) Connected(m *Node[T]) bool {
	for _, c := range n.Connections {
		if c == m {
			return true
		}
	}

	return false
}

// Graph is a rooted node/adjacency container.
type Graph[T comparable] struct {
	root  *Node[T]
	nodes []*Node[T]
}

// New creates an empty Graph.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{}
}

// Option configures the spanning-tree walkers.
type Option func(*TreeOptions)

// TreeOptions holds the knobs shared by DepthTree and BreadthTree.
type TreeOptions struct {
	// Rand, if non-nil, shuffles every neighbor list before it is visited.
	Rand *rand.Rand

	// OnAttach is called each time a child node is attached to the tree,
	// with the source-graph IDs of parent and child.
	OnAttach func(parent, child int)
}

// DefaultOptions returns TreeOptions with no shuffling and a no-op hook.
func DefaultOptions() TreeOptions {
	return TreeOptions{
		Rand:     nil,
		OnAttach: func(int, int) {},
	}
}

// WithRand shuffles neighbor order with r. Panics on nil so a missing
// source never silently turns a random strategy deterministic.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graph: WithRand(nil)")
	}
	return func(o *TreeOptions) {
		o.Rand = r
	}
}

// WithSeed shuffles neighbor order with a generator seeded by seed
// (seed 0 selects the package default seed).
func WithSeed(seed int64) Option {
	return func(o *TreeOptions) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithOnAttach registers a callback run after each child is attached.
func WithOnAttach(fn func(parent, child int)) Option {
	return func(o *TreeOptions) {
		if fn != nil {
			o.OnAttach = fn
		}
	}
}
