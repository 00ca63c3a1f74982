// Package shape owns the faces of one polyhedron, the face-adjacency graph
// (faceMap) derived from coincident creases, the current unfold tree, and the
// transform/revert stack that folds faces about creases.
//
// Construction (New):
//
//  1. every Region becomes a Face; its boundary creases are extracted,
//  2. a root face is chosen (RootLargestArea by default),
//  3. faceMap is grown breadth-first from the root with an explicit visited
//     set: two faces are adjacent when their axis lists hold a coincident pair,
//     and both axes are linked to each other by index,
//  4. every linked axis gets its dihedral OriginalAngle,
//  5. a default unfold tree is derived.
//
// faceMap is never mutated after New. A faceMap that misses a face yields
// ErrDisconnectedGeometry.
//
// Transform rotates the vertices and creases of a face set about a crease and
// records the step. Revert unwinds every step by copying rest positions back,
// never by inverse rotation, so no floating-point drift accumulates however
// many fold/unfold cycles run.
package shape
