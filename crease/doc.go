// Package crease defines Axis, a candidate fold line on the boundary between
// two polyhedron faces.
//
// An Axis is an infinite 3D line stored as a unit direction (Line) and the
// point of the line closest to the coordinate origin (Point). That anchor is
// independent of which two vertices produced the line, so two faces that
// share an edge build equal axes regardless of vertex order.
//
// Equality is geometric coincidence within a tolerance, never identity:
//
//	a.Equal(b)            // DefaultTolerance (1e-4)
//	a.EqualTol(b, 1e-6)   // explicit tolerance
//
// Rotations follow the right-hand rule about Line:
//
//	RotateAbout(p, θ)         - rotate a point about the axis
//	RotateAxisAbout(o, θ)     - re-derive this axis after rotating it about o
//	OrientedAngle(p1, p2)     - signed angle from p1 to p2 measured about Line
//	Distance(p)               - distance from p to the line
//	Revert()                  - restore the line/anchor computed at construction
//
// Neighbor links are plain indices into the owning shape's face and axis
// slices; an Axis never owns its neighbor.
package crease
