// Package mesh holds the vertex buffer of one planar face region together
// with an immutable rest copy of every original position.
//
// The rest copy is what makes revert exact: restoring a vertex copies its
// rest value back instead of applying an inverse rotation.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh construction.
var (
	// ErrEmptyMesh indicates a region without vertices or triangles.
	ErrEmptyMesh = errors.New("mesh: region has no triangles")

	// ErrBadTriangleList indicates an index list whose length is not a multiple of 3.
	ErrBadTriangleList = errors.New("mesh: index count is not a multiple of 3")

	// ErrIndexOutOfRange indicates a triangle index past the vertex list.
	ErrIndexOutOfRange = errors.New("mesh: triangle index out of range")
)

// Region is the loader-facing input for one face: positions plus a
// triangle index list (three indices per triangle).
type Region struct {
	Positions []r3.Vec
	Indices   []uint32
}

// Scaled returns a copy of r with every position multiplied by k.
func (r Region) Scaled(k float64) Region {
	out := Region{
		Positions: make([]r3.Vec, len(r.Positions)),
		Indices:   append([]uint32(nil), r.Indices...),
	}
	for i, p := range r.Positions {
		out.Positions[i] = r3.Scale(k, p)
	}

	return out
}

// Mesh is a mutable vertex buffer with a rest copy.
type Mesh struct {
	// Vertices are the live positions, mutated by folding.
	Vertices []r3.Vec

	// Indices lists triangles, three vertex indices each.
	Indices []uint32

	rest []r3.Vec
}

// New validates r and builds a Mesh that owns copies of its data.
func New(r Region) (*Mesh, error) {
	if len(r.Positions) == 0 || len(r.Indices) == 0 {
		return nil, ErrEmptyMesh
	}
	if len(r.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices", ErrBadTriangleList, len(r.Indices))
	}
	for _, idx := range r.Indices {
		if int(idx) >= len(r.Positions) {
			return nil, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, idx, len(r.Positions))
		}
	}

	m := &Mesh{
		Vertices: append([]r3.Vec(nil), r.Positions...),
		Indices:  append([]uint32(nil), r.Indices...),
		rest:     append([]r3.Vec(nil), r.Positions...),
	}

	return m, nil
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle t.
func (m *Mesh) Triangle(t int) [3]int {
	return [3]int{int(m.Indices[3*t]), int(m.Indices[3*t+1]), int(m.Indices[3*t+2])}
}

// Rest returns the original position of vertex i.
func (m *Mesh) Rest(i int) r3.Vec {
	return m.rest[i]
}

// ResetVertex restores vertex i to its rest position.
func (m *Mesh) ResetVertex(i int) {
	m.Vertices[i] = m.rest[i]
}

// Reset restores every vertex to its rest position.
func (m *Mesh) Reset() {
	copy(m.Vertices, m.rest)
}

// AtRest reports whether every vertex is within tol of its rest position.
func (m *Mesh) AtRest(tol float64) bool {
	for i, v := range m.Vertices {
		if r3.Norm(r3.Sub(v, m.rest[i])) > tol {
			return false
		}
	}

	return true
}

// Centroid returns the average of the live vertex positions.
func (m *Mesh) Centroid() r3.Vec {
	var sum r3.Vec
	for _, v := range m.Vertices {
		sum = r3.Add(sum, v)
	}

	return r3.Scale(1/float64(len(m.Vertices)), sum)
}

// Area returns the total live triangle area.
func (m *Mesh) Area() float64 {
	var area float64
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		e1 := r3.Sub(m.Vertices[tri[1]], m.Vertices[tri[0]])
		e2 := r3.Sub(m.Vertices[tri[2]], m.Vertices[tri[0]])
		area += 0.5 * r3.Norm(r3.Cross(e1, e2))
	}

	return area
}

// Normal returns the unit area-weighted normal of the live triangles,
// or the zero vector for a fully degenerate mesh.
func (m *Mesh) Normal() r3.Vec {
	var n r3.Vec
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		e1 := r3.Sub(m.Vertices[tri[1]], m.Vertices[tri[0]])
		e2 := r3.Sub(m.Vertices[tri[2]], m.Vertices[tri[0]])
		n = r3.Add(n, r3.Cross(e1, e2))
	}
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}

	return r3.Unit(n)
}

// Bounds returns the live axis-aligned bounding box.
func (m *Mesh) Bounds() r3.Box {
	inf := math.Inf(1)
	b := r3.Box{Min: r3.Vec{X: inf, Y: inf, Z: inf}, Max: r3.Vec{X: -inf, Y: -inf, Z: -inf}}
	for _, v := range m.Vertices {
		b.Min = r3.Vec{X: math.Min(b.Min.X, v.X), Y: math.Min(b.Min.Y, v.Y), Z: math.Min(b.Min.Z, v.Z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, v.X), Y: math.Max(b.Max.Y, v.Y), Z: math.Max(b.Max.Z, v.Z)}
	}

	return b
}

// AppendFloat32 appends the live positions as packed x,y,z float32 triples,
// the layout a vertex buffer upload expects.
func (m *Mesh) AppendFloat32(dst []float32) []float32 {
	for _, v := range m.Vertices {
		dst = append(dst, float32(v.X), float32(v.Y), float32(v.Z))
	}

	return dst
}
