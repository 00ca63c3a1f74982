package fold

import (
	"errors"
	"fmt"
	"math"

	foldnet "github.com/katalvlaran/foldnet"
	"github.com/katalvlaran/foldnet/graph"
	"github.com/katalvlaran/foldnet/shape"
)

// Algorithm selects how progress is distributed over the tree edges.
type Algorithm int

const (
	// Sequential opens creases one after another.
	Sequential Algorithm = iota

	// Synchronized opens every crease by the same fraction.
	Synchronized

	// algorithmCount bounds the valid Algorithm values.
	algorithmCount
)

// ErrUnknownAlgorithm indicates an Algorithm outside the defined values.
var ErrUnknownAlgorithm = errors.New("fold: unknown algorithm")

// Algorithms lists every valid algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, algorithmCount)
	for a := Algorithm(0); a < algorithmCount; a++ {
		out = append(out, a)
	}

	return out
}

// Valid reports whether a is a defined algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < algorithmCount
}

// Next returns the algorithm after a, wrapping around.
func (a Algorithm) Next() Algorithm {
	if !a.Valid() {
		return Sequential
	}

	return (a + 1) % algorithmCount
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Sequential:
		return "sequential"
	case Synchronized:
		return "synchronized"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name produced by String back to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Edge is one parent→child link of an unfold tree, with the faces carried
// by rotating it.
type Edge struct {
	Parent  int
	Child   int
	Subtree []int
}

// Edges lists the edges of tree in breadth-first order from the root. The
// Subtree of each edge holds Child and every face below it.
// Complexity: O(V·depth).
func Edges(tree *graph.Graph[int]) []Edge {
	if tree == nil {
		return nil
	}
	var out []Edge
	tree.Walk(func(n *graph.Node[int]) bool {
		for _, c := range n.Connections {
			out = append(out, Edge{Parent: n.Data, Child: c.Data, Subtree: subtree(c)})
		}
		return true
	})

	return out
}

// subtree collects the face indices of n and all its descendants.
func subtree(n *graph.Node[int]) []int {
	var faces []int
	seen := map[*graph.Node[int]]bool{n: true}
	stack := []*graph.Node[int]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		faces = append(faces, cur.Data)
		for _, c := range cur.Connections {
			if !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}

	return faces
}

// Apply reverts s and poses it along tree at the given progress.
//
// Progress is clamped to [0, 1]. A tree edge whose parent face has no crease
// linked to the child face is skipped with a warning, so degenerate faces
// simply stay put.
//
// Returns ErrUnknownAlgorithm, or shape.ErrNilTree for a nil tree.
func Apply(s *shape.Shape, tree *graph.Graph[int], alg Algorithm, progress float64) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if tree == nil {
		return shape.ErrNilTree
	}
	s.Revert()

	progress = math.Max(0, math.Min(1, progress))
	edges := Edges(tree)
	if len(edges) == 0 || progress == 0 {
		return nil
	}

	fractions := make([]float64, len(edges))
	switch alg {
	case Sequential:
		idx := progress * float64(len(edges))
		full := int(math.Floor(idx))
		for i := range fractions {
			switch {
			case i < full:
				fractions[i] = 1
			case i == full:
				fractions[i] = idx - float64(full)
			}
		}
	case Synchronized:
		for i := range fractions {
			fractions[i] = progress
		}
	}

	for i, e := range edges {
		if fractions[i] == 0 {
			continue
		}
		if err := rotateEdge(s, e, fractions[i]); err != nil {
			return err
		}
	}

	return nil
}

// Unfolded reverts s and poses it fully unfolded along its current tree.
func Unfolded(s *shape.Shape) error {
	return Apply(s, s.Unfold(), Synchronized, 1)
}

// rotateEdge opens e by fraction of its dihedral angle.
func rotateEdge(s *shape.Shape, e Edge, fraction float64) error {
	axis, ok := s.Crease(e.Parent, e.Child)
	if !ok {
		foldnet.Logger().Warn("tree edge without linked crease", "parent", e.Parent, "child", e.Child)
		return nil
	}

	return s.Transform(axis.OriginalAngle*fraction, axis, e.Subtree)
}
