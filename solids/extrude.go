// SPDX-License-Identifier: MIT
// Package: foldnet/solids
//
// extrude.go - right prisms over arbitrary simple outlines.
//
// Design:
//   • The outline lives in the XZ plane (r2 X maps to X, r2 Y maps to Z) and
//     is swept along Y from -h/2 to +h/2.
//   • The outline is normalized to counter-clockwise winding first.
//   • Caps are ear-clipped, so concave outlines yield concave solids.
//   • Faces are emitted as bottom cap, top cap, then one side per outline
//     edge in winding order.

package solids

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/foldnet/mesh"
)

// outlineEpsilon bounds the turn of a corner treated as straight.
const outlineEpsilon = 1e-9

// Extrude returns the right prism of the given height over outline.
// Either winding is accepted. Outline coordinates are kept as given; only Y
// is centered before WithCenter.
//
// Returns ErrTooFewSides for fewer than 3 corners, ErrBadExtent for a
// non-positive height and ErrBadOutline for a zero-area outline, a straight
// corner or caps that cannot be ear-clipped.
func Extrude(outline []r2.Vec, height float64, opts ...Option) ([]mesh.Region, error) {
	n := len(outline)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewSides, n)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %g", ErrBadExtent, height)
	}
	ring := append([]r2.Vec(nil), outline...)
	area := signedArea(ring)
	if math.Abs(area) <= outlineEpsilon {
		return nil, fmt.Errorf("%w: zero area", ErrBadOutline)
	}
	if area < 0 {
		slices.Reverse(ring)
	}
	for i := range ring {
		if math.Abs(turn(ring[(i+n-1)%n], ring[i], ring[(i+1)%n])) <= outlineEpsilon {
			return nil, fmt.Errorf("%w: corner %d is straight", ErrBadOutline, i)
		}
	}
	tris, err := earClip(ring)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts)
	lift := func(p r2.Vec, y float64) r3.Vec {
		return cfg.place(r3.Vec{X: p.X, Y: y, Z: p.Y})
	}
	lo, hi := -height/2, height/2

	out := make([]mesh.Region, 0, n+2)
	for _, y := range []float64{lo, hi} {
		r := mesh.Region{
			Positions: make([]r3.Vec, n),
			Indices:   make([]uint32, 0, 3*len(tris)),
		}
		for i, p := range ring {
			r.Positions[i] = lift(p, y)
		}
		for _, t := range tris {
			// counter-clockwise in XZ faces -Y
			if y == lo {
				r.Indices = append(r.Indices, t[0], t[1], t[2])
			} else {
				r.Indices = append(r.Indices, t[0], t[2], t[1])
			}
		}
		out = append(out, r)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		out = append(out, mesh.Region{
			Positions: []r3.Vec{lift(ring[i], lo), lift(ring[i], hi), lift(ring[j], hi), lift(ring[j], lo)},
			Indices:   []uint32{0, 1, 2, 0, 2, 3},
		})
	}

	return out, nil
}

// earClip triangulates a counter-clockwise simple polygon. Triangles keep
// the winding of ring.
func earClip(ring []r2.Vec) ([][3]uint32, error) {
	idx := make([]int, len(ring))
	for i := range idx {
		idx[i] = i
	}
	tris := make([][3]uint32, 0, len(ring)-2)
	for len(idx) > 3 {
		clipped := false
		for k := range idx {
			a, b, c := idx[(k+len(idx)-1)%len(idx)], idx[k], idx[(k+1)%len(idx)]
			if !isEar(ring, idx, a, b, c) {
				continue
			}
			tris = append(tris, [3]uint32{uint32(a), uint32(b), uint32(c)})
			idx = slices.Delete(idx, k, k+1)
			clipped = true
			break
		}
		if !clipped {
			return nil, fmt.Errorf("%w: no ear among %d corners", ErrBadOutline, len(idx))
		}
	}

	return append(tris, [3]uint32{uint32(idx[0]), uint32(idx[1]), uint32(idx[2])}), nil
}

// isEar reports whether corner b is convex and no other remaining corner
// lies inside or on the triangle (a, b, c).
func isEar(ring []r2.Vec, idx []int, a, b, c int) bool {
	if turn(ring[a], ring[b], ring[c]) <= outlineEpsilon {
		return false
	}
	for _, i := range idx {
		if i == a || i == b || i == c {
			continue
		}
		p := ring[i]
		if turn(ring[a], ring[b], p) >= -outlineEpsilon &&
			turn(ring[b], ring[c], p) >= -outlineEpsilon &&
			turn(ring[c], ring[a], p) >= -outlineEpsilon {
			return false
		}
	}

	return true
}

// turn is positive when o, a, b turn counter-clockwise.
func turn(o, a, b r2.Vec) float64 {
	return r2.Cross(r2.Sub(a, o), r2.Sub(b, o))
}

// signedArea is positive for counter-clockwise rings (shoelace formula).
func signedArea(ring []r2.Vec) float64 {
	var sum float64
	for i, p := range ring {
		sum += r2.Cross(p, ring[(i+1)%len(ring)])
	}

	return sum / 2
}
