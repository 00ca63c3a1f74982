package shape

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	foldnet "github.com/katalvlaran/foldnet"
	"github.com/katalvlaran/foldnet/crease"
	"github.com/katalvlaran/foldnet/graph"
	"github.com/katalvlaran/foldnet/mesh"
)

// Shape is one polyhedron: its faces, faceMap, current unfold tree and
// transformation stack. A Shape is not safe for concurrent use.
type Shape struct {
	// Faces are owned by the shape; Face.ID is the slice index.
	Faces []*Face

	opts    Options
	root    int
	faceMap *graph.Graph[int]
	unfold  *graph.Graph[int]
	stack   []Transformation
}

// New builds a Shape from one Region per planar face.
//
// Returns ErrEmptyShape without regions, a wrapped mesh error for invalid
// regions, ErrDisconnectedGeometry when faceMap does not reach every face,
// and any error of the default unfold strategy.
// Complexity: O(F²·A²) for adjacency discovery (F faces, A creases per face).
func New(regions []mesh.Region, opts ...Option) (*Shape, error) {
	if len(regions) == 0 {
		return nil, ErrEmptyShape
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Shape{opts: o, Faces: make([]*Face, 0, len(regions))}
	log := foldnet.Logger()
	for i, r := range regions {
		f, err := newFace(i, r, o.Tolerance)
		if err != nil {
			return nil, err
		}
		if err = f.Check(); err != nil {
			log.Debug("degenerate face tolerated", "face", i, "err", err)
		}
		s.Faces = append(s.Faces, f)
	}

	s.root = s.chooseRoot()
	log.Debug("root face chosen", "face", s.root, "rule", o.RootRule)

	if err := s.populateFaceMap(); err != nil {
		return nil, err
	}
	s.initAxisInfo()

	derive := o.DefaultUnfold
	if derive == nil {
		derive = func(s *Shape) (*graph.Graph[int], error) { return graph.BreadthTree(s.faceMap) }
	}
	tree, err := derive(s)
	if err != nil {
		return nil, fmt.Errorf("shape: default unfold: %w", err)
	}
	if err = s.SetUnfold(tree); err != nil {
		return nil, err
	}

	log.Info("shape built", "faces", len(s.Faces), "adjacencies", s.faceMap.EdgeCount(), "root", s.root)

	return s, nil
}

// chooseRoot applies the configured RootRule.
func (s *Shape) chooseRoot() int {
	tol := s.opts.Tolerance
	height := func(f *Face) float64 { return r3.Dot(f.Centroid(), s.opts.Up) }

	best := 0
	for i := 1; i < len(s.Faces); i++ {
		a, b := s.Faces[i], s.Faces[best]
		dArea := a.Area() - b.Area()
		dHeight := height(a) - height(b)
		var better bool
		switch s.opts.RootRule {
		case RootLowest:
			better = dHeight < -tol || (math.Abs(dHeight) <= tol && dArea > tol)
		default:
			better = dArea > tol || (math.Abs(dArea) <= tol && dHeight < -tol)
		}
		if better {
			best = i
		}
	}

	return best
}

// populateFaceMap grows faceMap breadth-first from the root face. Each
// dequeued face scans every other face for coincident creases, links both
// creases to each other and adds the two-way edge; a face is enqueued the
// first time it is seen.
func (s *Shape) populateFaceMap() error {
	tol := s.opts.Tolerance
	g := graph.New[int]()
	rootNode, err := g.NewRootNode(s.root)
	if err != nil {
		return err
	}

	visited := make([]bool, len(s.Faces))
	visited[s.root] = true
	queue := []*graph.Node[int]{rootNode}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		f := s.Faces[cur.Data]

		for _, other := range s.Faces {
			if other.ID == f.ID {
				continue
			}
			for ai, a := range f.Axes {
				for bi, b := range other.Axes {
					if !a.EqualTol(b, tol) {
						continue
					}
					a.NeighborFace, a.SharedAxis = other.ID, bi
					b.NeighborFace, b.SharedAxis = f.ID, ai

					node, err := g.NewNode(cur, other.ID, true)
					if err != nil {
						return err
					}
					if !visited[other.ID] {
						visited[other.ID] = true
						queue = append(queue, node)
					}
				}
			}
		}
	}

	if g.Size() != len(s.Faces) {
		return fmt.Errorf("%w: reached %d of %d faces from face %d",
			ErrDisconnectedGeometry, g.Size(), len(s.Faces), s.root)
	}
	s.faceMap = g

	return nil
}

// initAxisInfo computes OriginalAngle for every linked crease: the rotation
// that brings the neighbor face into the plane of the owning face. Both
// directions are taken from SidePoint so concave solids unfold flat.
func (s *Shape) initAxisInfo() {
	tol := s.opts.Tolerance
	for _, node := range s.faceMap.Nodes() {
		f := s.Faces[node.Data]
		for _, a := range f.Axes {
			if !a.Linked() {
				continue
			}
			nb := s.Faces[a.NeighborFace]
			theta := a.OrientedAngle(f.SidePoint(a, tol), nb.SidePoint(nb.Axes[a.SharedAxis], tol))
			a.OriginalAngle = flattenAngle(theta)
		}
	}
}

// flattenAngle turns the oriented angle theta between two faces about their
// crease into the rotation that opens them to a straight angle.
func flattenAngle(theta float64) float64 {
	if theta >= 0 {
		return math.Pi - theta
	}

	return -math.Pi - theta
}

// Root returns the index of the base face.
func (s *Shape) Root() int {
	return s.root
}

// FaceMap returns the face-adjacency graph. Callers must not mutate it.
func (s *Shape) FaceMap() *graph.Graph[int] {
	return s.faceMap
}

// Unfold returns the current unfold tree.
func (s *Shape) Unfold() *graph.Graph[int] {
	return s.unfold
}

// Options returns the options the shape was built with.
func (s *Shape) Options() Options {
	return s.opts
}

// Face returns the face with the given index.
func (s *Shape) Face(id int) (*Face, error) {
	if id < 0 || id >= len(s.Faces) {
		return nil, fmt.Errorf("%w: %d", ErrFaceNotFound, id)
	}

	return s.Faces[id], nil
}

// Crease returns the crease on parent that links it to child.
func (s *Shape) Crease(parent, child int) (*crease.Axis, bool) {
	f, err := s.Face(parent)
	if err != nil {
		return nil, false
	}

	return f.AxisTo(child)
}

// SetUnfold validates tree and makes it the current unfold tree. The shape
// is reverted first so no pose derived from the old tree survives.
//
// Returns ErrNilTree, ErrIncompleteSpanningTree when the tree does not hold
// every face, graph.ErrNotTree for a malformed tree, and ErrFaceNotFound
// for a node whose data is not a face of s.
func (s *Shape) SetUnfold(tree *graph.Graph[int]) error {
	if tree == nil {
		return ErrNilTree
	}
	if tree.Size() != s.faceMap.Size() {
		return fmt.Errorf("%w: %d of %d faces", ErrIncompleteSpanningTree, tree.Size(), s.faceMap.Size())
	}
	if err := tree.ValidateTree(); err != nil {
		return fmt.Errorf("shape: unfold tree: %w", err)
	}
	seen := make([]bool, len(s.Faces))
	for _, n := range tree.Nodes() {
		if n.Data < 0 || n.Data >= len(s.Faces) || seen[n.Data] {
			return fmt.Errorf("%w: tree node %d holds %d", ErrFaceNotFound, n.ID, n.Data)
		}
		seen[n.Data] = true
	}

	s.Revert()
	s.unfold = tree

	return nil
}

// Vertices returns a snapshot of every face's live vertex positions.
func (s *Shape) Vertices() [][]r3.Vec {
	out := make([][]r3.Vec, len(s.Faces))
	for i, f := range s.Faces {
		out[i] = append([]r3.Vec(nil), f.Mesh.Vertices...)
	}

	return out
}

// AtRest reports whether every vertex is within tol of its rest position.
func (s *Shape) AtRest(tol float64) bool {
	for _, f := range s.Faces {
		if !f.Mesh.AtRest(tol) {
			return false
		}
	}

	return true
}
