package unfold

import (
	"fmt"

	foldnet "github.com/katalvlaran/foldnet"
	"github.com/katalvlaran/foldnet/graph"
	"github.com/katalvlaran/foldnet/shape"
)

// ErrIncompleteSpanningTree is returned, wrapped, when a strategy cannot
// reach every face.
var ErrIncompleteSpanningTree = graph.ErrIncompleteSpanningTree

// Strategy derives an unfold tree for a shape. It matches shape.UnfoldFunc.
type Strategy = shape.UnfoldFunc

// Basic returns the depth-first unfold tree of s.
func Basic(s *shape.Shape) (*graph.Graph[int], error) {
	return derive("basic", s, graph.DepthTree[int])
}

// BreadthUnfold returns the breadth-first unfold tree of s.
func BreadthUnfold(s *shape.Shape) (*graph.Graph[int], error) {
	return derive("breadth", s, graph.BreadthTree[int])
}

// RandomBasic is Basic with every neighbor list shuffled.
func RandomBasic(s *shape.Shape, opts ...Option) (*graph.Graph[int], error) {
	return derive("random-basic", s, graph.DepthTree[int], treeOption(opts))
}

// RandomBreadthUnfold is BreadthUnfold with every neighbor list shuffled.
func RandomBreadthUnfold(s *shape.Shape, opts ...Option) (*graph.Graph[int], error) {
	return derive("random-breadth", s, graph.BreadthTree[int], treeOption(opts))
}

// Named returns the strategy registered under name. Random strategies are
// bound to opts.
func Named(name string, opts ...Option) (Strategy, error) {
	switch name {
	case "basic":
		return Basic, nil
	case "breadth":
		return BreadthUnfold, nil
	case "random-basic":
		return func(s *shape.Shape) (*graph.Graph[int], error) { return RandomBasic(s, opts...) }, nil
	case "random-breadth":
		return func(s *shape.Shape) (*graph.Graph[int], error) { return RandomBreadthUnfold(s, opts...) }, nil
	case "widest":
		return Widest, nil
	default:
		return nil, fmt.Errorf("unfold: unknown strategy %q", name)
	}
}

// StrategyNames lists the names accepted by Named.
func StrategyNames() []string {
	return []string{"basic", "breadth", "random-basic", "random-breadth", "widest"}
}

// treeOption maps unfold options onto the graph walker's random source.
func treeOption(opts []Option) graph.Option {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand != nil {
		return graph.WithRand(o.Rand)
	}

	return graph.WithSeed(o.Seed)
}

type walker func(g *graph.Graph[int], opts ...graph.Option) (*graph.Graph[int], error)

func derive(name string, s *shape.Shape, walk walker, opts ...graph.Option) (*graph.Graph[int], error) {
	if s == nil {
		return nil, fmt.Errorf("unfold: %s: %w", name, shape.ErrEmptyShape)
	}
	tree, err := walk(s.FaceMap(), opts...)
	if err != nil {
		return nil, fmt.Errorf("unfold: %s: %w", name, err)
	}
	foldnet.Logger().Debug("unfold tree derived", "strategy", name, "faces", tree.Size())

	return tree, nil
}
