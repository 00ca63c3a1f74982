package shape

import (
	"fmt"

	"github.com/katalvlaran/foldnet/crease"
)

// Transformation records one rigid rotation applied by Transform.
type Transformation struct {
	// DeltaAngle is the rotation in radians.
	DeltaAngle float64

	// Axis is a snapshot of the pivot crease at the time of the rotation.
	Axis crease.Axis

	// AppliedFaces lists the indices of the faces that were rotated.
	AppliedFaces []int
}

// Transform rotates every vertex and every crease of the given faces by
// delta radians about axis, then pushes the step onto the undo stack.
// Creases move with their faces so later folds pivot about the current
// crease positions.
//
// Returns ErrNilAxis or ErrFaceNotFound; nothing is rotated on error.
// Complexity: O(Σ vertices + Σ creases) of the applied faces.
func (s *Shape) Transform(delta float64, axis *crease.Axis, faces []int) error {
	if axis == nil {
		return ErrNilAxis
	}
	for _, id := range faces {
		if id < 0 || id >= len(s.Faces) {
			return fmt.Errorf("%w: %d", ErrFaceNotFound, id)
		}
	}

	// the pivot may belong to one of the rotated faces
	pivot := axis.Snapshot()
	for _, id := range faces {
		f := s.Faces[id]
		for i, v := range f.Mesh.Vertices {
			f.Mesh.Vertices[i] = pivot.RotateAbout(v, delta)
		}
		for _, a := range f.Axes {
			a.RotateAxisAbout(&pivot, delta)
		}
	}

	s.stack = append(s.stack, Transformation{
		DeltaAngle:   delta,
		Axis:         pivot,
		AppliedFaces: append([]int(nil), faces...),
	})

	return nil
}

// Revert unwinds the undo stack from the most recent step to the oldest.
// Every affected vertex is reset to its rest position and every affected
// crease to its original line, so the result is exact regardless of how many
// steps were stacked.
func (s *Shape) Revert() {
	for len(s.stack) > 0 {
		t := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		for _, id := range t.AppliedFaces {
			s.Faces[id].reset()
		}
	}
}

// StackDepth returns the number of unreverted transformations.
func (s *Shape) StackDepth() int {
	return len(s.stack)
}

// Pose returns a copy of the undo stack, oldest first. Passing it to Restore
// reproduces the current vertex positions bit for bit.
func (s *Shape) Pose() []Transformation {
	out := make([]Transformation, len(s.stack))
	for i, t := range s.stack {
		t.AppliedFaces = append([]int(nil), t.AppliedFaces...)
		out[i] = t
	}

	return out
}

// Restore reverts s and replays pose in order.
func (s *Shape) Restore(pose []Transformation) error {
	s.Revert()
	for _, t := range pose {
		axis := t.Axis
		if err := s.Transform(t.DeltaAngle, &axis, t.AppliedFaces); err != nil {
			s.Revert()
			return err
		}
	}

	return nil
}
