// SPDX-License-Identifier: MIT
// Package: foldnet/solids
//
// platonic.go - the five Platonic solids and their canonical datasets.
//
// Determinism:
//   • Corner coordinates are fixed constants.
//   • Triangle faces are enumerated in lexicographic corner order.
//   • The dodecahedron is the dual of the icosahedron: one corner per
//     icosahedron face centroid, one pentagon per icosahedron corner.

package solids

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/foldnet/mesh"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // F=4,  E=6
	Cube                             // F=6,  E=12
	Octahedron                       // F=8,  E=12
	Dodecahedron                     // F=12, E=30
	Icosahedron                      // F=20, E=30
)

// String implements fmt.Stringer.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	case Dodecahedron:
		return "dodecahedron"
	case Icosahedron:
		return "icosahedron"
	default:
		return "unknown"
	}
}

// Names lists the Platonic solid names accepted by Parse.
func Names() []string {
	out := make([]string, 0, 5)
	for p := Tetrahedron; p <= Icosahedron; p++ {
		out = append(out, p.String())
	}

	return out
}

// Parse maps a case-insensitive name to its PlatonicName.
func Parse(name string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSolid, name)
}

// Platonic builds the named solid with unit edge length.
func Platonic(name PlatonicName, opts ...Option) ([]mesh.Region, error) {
	var p polyhedron
	switch name {
	case Tetrahedron:
		p = tetrahedron()
	case Cube:
		return Box(1, 1, 1, opts...)
	case Octahedron:
		p = octahedron()
	case Dodecahedron:
		p = dodecahedron()
	case Icosahedron:
		p = icosahedron()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSolid, int(name))
	}

	return p.normalized().regions(newConfig(opts)), nil
}

// UnitCube returns the unit cube: six square faces, fan-triangulated.
func UnitCube(opts ...Option) []mesh.Region {
	r, _ := Box(1, 1, 1, opts...)

	return r
}

// Box returns an axis-aligned box with the given extents along X, Y and Z.
// Faces are emitted as -X, +X, -Y, +Y, -Z, +Z.
func Box(w, h, d float64, opts ...Option) ([]mesh.Region, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, fmt.Errorf("%w: %gx%gx%g", ErrBadExtent, w, h, d)
	}
	p := polyhedron{corners: make([]r3.Vec, 0, 8)}
	for i := 0; i < 8; i++ {
		p.corners = append(p.corners, r3.Vec{
			X: sign(i&1) * w / 2,
			Y: sign(i&2) * h / 2,
			Z: sign(i&4) * d / 2,
		})
	}
	for _, bit := range []int{1, 2, 4} {
		for _, want := range []int{0, bit} {
			var face []int
			for i := 0; i < 8; i++ {
				if i&bit == want {
					face = append(face, i)
				}
			}
			p.faces = append(p.faces, face)
		}
	}

	return p.regions(newConfig(opts)), nil
}

// Prism returns a right prism over a regular n-gon with unit side length
// and unit height, its caps perpendicular to Y.
func Prism(n int, opts ...Option) ([]mesh.Region, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewSides, n)
	}
	radius := 1 / (2 * math.Sin(math.Pi/float64(n)))
	p := polyhedron{corners: make([]r3.Vec, 0, 2*n)}
	for _, y := range []float64{-0.5, 0.5} {
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			p.corners = append(p.corners, r3.Vec{X: radius * math.Cos(a), Y: y, Z: radius * math.Sin(a)})
		}
	}
	bottom, top := make([]int, n), make([]int, n)
	for i := 0; i < n; i++ {
		bottom[i], top[i] = i, n+i
	}
	p.faces = append(p.faces, bottom, top)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p.faces = append(p.faces, []int{i, j, n + j, n + i})
	}

	return p.regions(newConfig(opts)), nil
}

func sign(bit int) float64 {
	if bit == 0 {
		return -1
	}

	return 1
}

func tetrahedron() polyhedron {
	c := []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}}

	return polyhedron{corners: c, faces: triangles(c, 2*math.Sqrt2)}
}

func octahedron() polyhedron {
	c := []r3.Vec{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}}

	return polyhedron{corners: c, faces: triangles(c, math.Sqrt2)}
}

func icosahedron() polyhedron {
	phi := (1 + math.Sqrt(5)) / 2
	var c []r3.Vec
	for _, s1 := range []float64{-1, 1} {
		for _, s2 := range []float64{-1, 1} {
			c = append(c,
				r3.Vec{Y: s1, Z: s2 * phi},
				r3.Vec{X: s1, Y: s2 * phi},
				r3.Vec{X: s2 * phi, Z: s1},
			)
		}
	}

	return polyhedron{corners: c, faces: triangles(c, 2)}
}

func dodecahedron() polyhedron {
	ico := icosahedron()
	d := polyhedron{corners: make([]r3.Vec, len(ico.faces))}
	around := make([][]int, len(ico.corners))
	for fi, f := range ico.faces {
		var c r3.Vec
		for _, v := range f {
			c = r3.Add(c, ico.corners[v])
			around[v] = append(around[v], fi)
		}
		d.corners[fi] = r3.Scale(1.0/3, c)
	}
	d.faces = around

	return d
}
