// SPDX-License-Identifier: MIT
// Package: foldnet/solids

package solids

import "errors"

var (
	// ErrUnknownSolid indicates a name outside the PlatonicName enum.
	ErrUnknownSolid = errors.New("solids: unknown solid")

	// ErrTooFewSides indicates a prism with fewer than 3 sides.
	ErrTooFewSides = errors.New("solids: prism needs at least 3 sides")

	// ErrBadExtent indicates a non-positive box extent.
	ErrBadExtent = errors.New("solids: box extents must be positive")

	// ErrBadOutline indicates an extrusion outline that is not a simple polygon.
	ErrBadOutline = errors.New("solids: outline is not a simple polygon")
)
