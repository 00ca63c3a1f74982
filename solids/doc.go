// SPDX-License-Identifier: MIT
// Package: foldnet/solids
//
// Package solids builds deterministic polyhedra as per-face mesh regions,
// ready for shape.New.
//
// Every builder returns one mesh.Region per planar face. Each region owns its
// own copy of the corner positions (faces never share vertices), lists them
// counter-clockwise when seen from outside, and fan-triangulates polygons
// with more than three corners. Extrude ear-clips its caps instead, so its
// outline may be concave.
//
// Canonical sizes:
//   - Platonic solids and prisms have unit edge length before WithSize.
//   - Box(w, h, d) uses its arguments as extents before WithSize.
//   - Extrude keeps its outline coordinates and centers only Y.
//   - Every other solid is centered on the origin before WithCenter.
//
// Errors:
//
//	ErrUnknownSolid   - Platonic or Parse got a name outside the enum.
//	ErrTooFewSides    - Prism and Extrude need at least 3 sides.
//	ErrBadExtent      - Box extents and Extrude height must be > 0.
//	ErrBadOutline     - Extrude outline is degenerate or cannot be ear-clipped.
package solids
