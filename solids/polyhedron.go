// SPDX-License-Identifier: MIT
// Package: foldnet/solids
//
// polyhedron.go - shared corner/face representation and region emission.
//
// Design:
//   • A polyhedron is a corner list plus faces given as corner index sets.
//   • Face corners are sorted counter-clockwise about the outward direction
//     of the face centroid, which is valid for convex solids centered on
//     the origin.
//   • Regions are emitted in face order with fan triangles (0, i, i+1).

package solids

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/foldnet/mesh"
)

// polyhedron is a convex solid centered on the origin.
type polyhedron struct {
	corners []r3.Vec
	faces   [][]int
}

// regions emits one Region per face, placed by cfg.
func (p polyhedron) regions(cfg config) []mesh.Region {
	out := make([]mesh.Region, 0, len(p.faces))
	for _, f := range p.faces {
		ring := p.ordered(f)
		r := mesh.Region{
			Positions: make([]r3.Vec, len(ring)),
			Indices:   make([]uint32, 0, 3*(len(ring)-2)),
		}
		for i, c := range ring {
			r.Positions[i] = cfg.place(p.corners[c])
		}
		for i := 1; i+1 < len(ring); i++ {
			r.Indices = append(r.Indices, 0, uint32(i), uint32(i+1))
		}
		out = append(out, r)
	}

	return out
}

// ordered sorts the corners of face counter-clockwise seen from outside.
func (p polyhedron) ordered(face []int) []int {
	var center r3.Vec
	for _, c := range face {
		center = r3.Add(center, p.corners[c])
	}
	center = r3.Scale(1/float64(len(face)), center)
	n := r3.Unit(center)

	u := r3.Unit(r3.Sub(p.corners[face[0]], center))
	v := r3.Cross(n, u)
	angle := func(c int) float64 {
		d := r3.Sub(p.corners[c], center)
		a := math.Atan2(r3.Dot(d, v), r3.Dot(d, u))
		if a < 0 {
			a += 2 * math.Pi
		}
		return a
	}

	ring := append([]int(nil), face...)
	sort.SliceStable(ring, func(i, j int) bool { return angle(ring[i]) < angle(ring[j]) })

	return ring
}

// normalized rescales p so that its shortest edge has unit length.
func (p polyhedron) normalized() polyhedron {
	edge := math.Inf(1)
	for i := range p.corners {
		for j := i + 1; j < len(p.corners); j++ {
			edge = math.Min(edge, r3.Norm(r3.Sub(p.corners[i], p.corners[j])))
		}
	}
	out := polyhedron{corners: make([]r3.Vec, len(p.corners)), faces: p.faces}
	for i, c := range p.corners {
		out.corners[i] = r3.Scale(1/edge, c)
	}

	return out
}

// triangles returns every corner triple whose three sides all have length
// edge, in lexicographic order. For deltahedra these are exactly the faces.
func triangles(corners []r3.Vec, edge float64) [][]int {
	near := func(i, j int) bool {
		return math.Abs(r3.Norm(r3.Sub(corners[i], corners[j]))-edge) < 1e-9
	}
	var faces [][]int
	for i := range corners {
		for j := i + 1; j < len(corners); j++ {
			if !near(i, j) {
				continue
			}
			for k := j + 1; k < len(corners); k++ {
				if near(i, k) && near(j, k) {
					faces = append(faces, []int{i, j, k})
				}
			}
		}
	}

	return faces
}
