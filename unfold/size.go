package unfold

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/foldnet/fold"
	"github.com/katalvlaran/foldnet/shape"
)

// FindUnfoldSize poses s fully unfolded along its current tree with the
// synchronized algorithm and returns the two corners of the net's world-axis
// bounding box. The net lies in the resting plane of the tree root.
//
// That plane is approximated by the two world axes least aligned with the
// root normal; the third coordinate of both corners is the root centroid's,
// so a root plane oblique to the world axes yields a box wider than the net.
// The pose s had before the call is restored.
func FindUnfoldSize(s *shape.Shape) (lo, hi r3.Vec, err error) {
	if s == nil {
		return lo, hi, shape.ErrEmptyShape
	}
	pose := s.Pose()
	defer func() {
		if rerr := s.Restore(pose); err == nil {
			err = rerr
		}
	}()

	s.Revert()
	root := treeRoot(s)
	normal, center := root.Mesh.Normal(), root.Centroid()
	if err = fold.Unfolded(s); err != nil {
		return lo, hi, err
	}

	inf := math.Inf(1)
	lo = r3.Vec{X: inf, Y: inf, Z: inf}
	hi = r3.Vec{X: -inf, Y: -inf, Z: -inf}
	for _, f := range s.Faces {
		b := f.Mesh.Bounds()
		lo = r3.Vec{X: math.Min(lo.X, b.Min.X), Y: math.Min(lo.Y, b.Min.Y), Z: math.Min(lo.Z, b.Min.Z)}
		hi = r3.Vec{X: math.Max(hi.X, b.Max.X), Y: math.Max(hi.Y, b.Max.Y), Z: math.Max(hi.Z, b.Max.Z)}
	}

	switch dropAxis(normal) {
	case 0:
		lo.X, hi.X = center.X, center.X
	case 1:
		lo.Y, hi.Y = center.Y, center.Y
	default:
		lo.Z, hi.Z = center.Z, center.Z
	}

	return lo, hi, nil
}

// dropAxis returns the index of the world axis most aligned with n.
func dropAxis(n r3.Vec) int {
	x, y, z := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case x >= y && x >= z:
		return 0
	case y >= z:
		return 1
	default:
		return 2
	}
}

// treeRoot is the root face of the current unfold tree.
func treeRoot(s *shape.Shape) *shape.Face {
	return s.Faces[s.Unfold().Root().Data]
}

// PlaneAxes returns the indices of the two world axes that span the resting
// plane of the unfold tree root of s.
func PlaneAxes(s *shape.Shape) (int, int) {
	switch dropAxis(treeRoot(s).Mesh.Normal()) {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}
