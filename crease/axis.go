package crease

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultTolerance is the coincidence tolerance used by Equal.
const DefaultTolerance = 1e-4

// NoNeighbor marks an Axis that is not linked to another face.
const NoNeighbor = -1

// signEpsilon decides which direction component is significant when the
// sign of a freshly built line is canonicalised.
const signEpsilon = 1e-9

// ErrDegenerateAxis is returned when both endpoints of a crease coincide.
var ErrDegenerateAxis = errors.New("crease: endpoints coincide")

// Axis is a crease line in 3D space.
type Axis struct {
	// Line is the unit direction. It is sign-normalised at construction and
	// keeps its orientation under rotation.
	Line r3.Vec

	// Point is the point on the line closest to the origin.
	Point r3.Vec

	// OriginalLine and OriginalPoint are the values computed at construction.
	OriginalLine  r3.Vec
	OriginalPoint r3.Vec

	// OriginalAngle is the dihedral rotation that brings NeighborFace into
	// the plane of the owning face. Set once after adjacency linking.
	OriginalAngle float64

	// Length is the rest length of the edge the axis was built from.
	Length float64

	// NeighborFace is the index of the adjacent face, or NoNeighbor.
	NeighborFace int

	// SharedAxis is the index of the coincident axis inside NeighborFace,
	// or NoNeighbor.
	SharedAxis int
}

// New builds the Axis through p1 and p2.
// Returns ErrDegenerateAxis if the points are closer than signEpsilon.
func New(p1, p2 r3.Vec) (*Axis, error) {
	d := r3.Sub(p2, p1)
	length := r3.Norm(d)
	if length < signEpsilon {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateAxis, p1)
	}
	line := canonical(r3.Scale(1/length, d))
	point := closestToOrigin(p1, line)

	return &Axis{
		Line:          line,
		Point:         point,
		OriginalLine:  line,
		OriginalPoint: point,
		Length:        length,
		NeighborFace:  NoNeighbor,
		SharedAxis:    NoNeighbor,
	}, nil
}

// Linked reports whether the axis has a neighbor face.
func (a *Axis) Linked() bool {
	return a.NeighborFace != NoNeighbor
}

// Equal reports geometric coincidence within DefaultTolerance.
func (a *Axis) Equal(b *Axis) bool {
	return a.EqualTol(b, DefaultTolerance)
}

// EqualTol reports whether a and b describe the same line within eps.
// Directions are compared up to sign, so the relation is symmetric.
func (a *Axis) EqualTol(b *Axis, eps float64) bool {
	if a == nil || b == nil {
		return false
	}
	same := r3.Norm(r3.Sub(a.Line, b.Line))
	flipped := r3.Norm(r3.Add(a.Line, b.Line))
	if math.Min(same, flipped) >= eps {
		return false
	}

	return r3.Norm(r3.Sub(a.Point, b.Point)) < eps
}

// RotateAbout rotates p by angle radians about the axis line through Point.
func (a *Axis) RotateAbout(p r3.Vec, angle float64) r3.Vec {
	rot := r3.NewRotation(angle, a.Line)

	return r3.Add(rot.Rotate(r3.Sub(p, a.Point)), a.Point)
}

// RotateAxisAbout re-derives the line and anchor of a after two points on it
// are rotated by angle about other.
func (a *Axis) RotateAxisAbout(other *Axis, angle float64) {
	p1 := other.RotateAbout(a.Point, angle)
	p2 := other.RotateAbout(r3.Add(a.Point, a.Line), angle)

	a.Line = r3.Unit(r3.Sub(p2, p1))
	a.Point = closestToOrigin(p1, a.Line)
}

// OrientedAngle returns the signed angle in (-π, π] from the direction of p1
// to the direction of p2, both measured perpendicular to the line and
// oriented by the right-hand rule about Line.
func (a *Axis) OrientedAngle(p1, p2 r3.Vec) float64 {
	v1 := a.perpendicular(p1)
	v2 := a.perpendicular(p2)

	return math.Atan2(r3.Dot(a.Line, r3.Cross(v1, v2)), r3.Dot(v1, v2))
}

// Distance returns how far p lies from the line.
func (a *Axis) Distance(p r3.Vec) float64 {
	return r3.Norm(a.perpendicular(p))
}

// Revert restores Line and Point to the values computed at construction.
func (a *Axis) Revert() {
	a.Line = a.OriginalLine
	a.Point = a.OriginalPoint
}

// Snapshot returns a detached copy of the axis.
func (a *Axis) Snapshot() Axis {
	return *a
}

// String implements fmt.Stringer.
func (a *Axis) String() string {
	return fmt.Sprintf("axis{line=(%.4f %.4f %.4f) point=(%.4f %.4f %.4f) angle=%.4f}",
		a.Line.X, a.Line.Y, a.Line.Z, a.Point.X, a.Point.Y, a.Point.Z, a.OriginalAngle)
}

// perpendicular is the component of p-Point orthogonal to Line.
func (a *Axis) perpendicular(p r3.Vec) r3.Vec {
	v := r3.Sub(p, a.Point)

	return r3.Sub(v, r3.Scale(r3.Dot(v, a.Line), a.Line))
}

// closestToOrigin projects the origin onto the line through p with unit direction line.
func closestToOrigin(p, line r3.Vec) r3.Vec {
	return r3.Sub(p, r3.Scale(r3.Dot(p, line), line))
}

// canonical flips line so that its first significant component is positive.
func canonical(line r3.Vec) r3.Vec {
	for _, c := range [3]float64{line.X, line.Y, line.Z} {
		if math.Abs(c) > signEpsilon {
			if c < 0 {
				return r3.Scale(-1, line)
			}
			return line
		}
	}

	return line
}
