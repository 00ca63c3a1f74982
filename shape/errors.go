package shape

import (
	"errors"

	"github.com/katalvlaran/foldnet/graph"
)

// Sentinel errors for shape construction and folding.
var (
	// ErrEmptyShape indicates New was called without regions.
	ErrEmptyShape = errors.New("shape: no face regions")

	// ErrDisconnectedGeometry indicates faceMap did not reach every face
	// (non-manifold or disjoint input).
	ErrDisconnectedGeometry = errors.New("shape: face map does not reach every face")

	// ErrDegenerateFace reports a face with fewer than 2 boundary creases.
	// It is informational: such faces are kept and simply yield no folds.
	ErrDegenerateFace = errors.New("shape: face has fewer than 2 creases")

	// ErrFaceNotFound indicates a face index outside the shape.
	ErrFaceNotFound = errors.New("shape: face not found")

	// ErrNilAxis indicates Transform was called without a pivot crease.
	ErrNilAxis = errors.New("shape: nil axis")

	// ErrNilTree indicates SetUnfold was called with a nil tree.
	ErrNilTree = errors.New("shape: nil unfold tree")

	// ErrIncompleteSpanningTree is graph.ErrIncompleteSpanningTree, re-exported
	// so callers of this package can match it without importing graph.
	ErrIncompleteSpanningTree = graph.ErrIncompleteSpanningTree
)
