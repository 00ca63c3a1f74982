package shape

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/foldnet/crease"
	"github.com/katalvlaran/foldnet/mesh"
)

// Face is a planar region of the polyhedron. It owns its mesh and its
// boundary creases.
type Face struct {
	// ID is the index of the face inside its Shape.
	ID int

	// Mesh is the vertex buffer of this face.
	Mesh *mesh.Mesh

	// Axes are the boundary creases in extraction order.
	Axes []*crease.Axis
}

// newFace builds the face for region r and extracts its creases.
func newFace(id int, r mesh.Region, tol float64) (*Face, error) {
	m, err := mesh.New(r)
	if err != nil {
		return nil, fmt.Errorf("shape: face %d: %w", id, err)
	}
	f := &Face{ID: id, Mesh: m}
	f.initAxis(tol)

	return f, nil
}

// initAxis discovers the boundary creases of the face.
//
// A vertex is a boundary candidate when one or two triangles reference it,
// or when it touches an edge used by a single triangle; vertices whose every
// edge is shared are interior. Each candidate pair co-occurring in a triangle
// yields an Axis, and every Axis that has a coincident twin in the list is
// dropped together with the twin: those are the interior diagonals.
func (f *Face) initAxis(tol float64) {
	m := f.Mesh
	refs := make([]int, len(m.Vertices))
	for t := 0; t < m.TriangleCount(); t++ {
		for _, v := range m.Triangle(t) {
			refs[v]++
		}
	}
	open := make([]bool, len(m.Vertices))
	for e, n := range f.edgeUse() {
		if n == 1 {
			open[e[0]], open[e[1]] = true, true
		}
	}
	candidate := func(i int) bool {
		return refs[i] == 1 || refs[i] == 2 || open[i]
	}

	var found []*crease.Axis
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		for k := 0; k < 3; k++ {
			i, j := tri[k], tri[(k+1)%3]
			if !candidate(i) || !candidate(j) {
				continue
			}
			a, err := crease.New(m.Vertices[i], m.Vertices[j])
			if err != nil {
				continue
			}
			found = append(found, a)
		}
	}

	f.Axes = f.Axes[:0]
	for i, a := range found {
		twin := false
		for j, b := range found {
			if i != j && a.EqualTol(b, tol) {
				twin = true
				break
			}
		}
		if !twin {
			f.Axes = append(f.Axes, a)
		}
	}
}

// SidePoint returns a point of f that lies strictly on f's side of a. It is
// the centroid of a triangle whose boundary edge lies on the crease line, or
// the vertex farthest from the line when no such triangle exists. The vertex
// centroid is not used: on a non-convex face it may sit on the line or
// across it.
func (f *Face) SidePoint(a *crease.Axis, tol float64) r3.Vec {
	m := f.Mesh
	use := f.edgeUse()
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		for k := 0; k < 3; k++ {
			i, j, o := tri[k], tri[(k+1)%3], tri[(k+2)%3]
			if use[edgeKey(i, j)] != 1 {
				continue
			}
			if a.Distance(m.Vertices[i]) > tol || a.Distance(m.Vertices[j]) > tol || a.Distance(m.Vertices[o]) <= tol {
				continue
			}
			sum := r3.Add(r3.Add(m.Vertices[i], m.Vertices[j]), m.Vertices[o])

			return r3.Scale(1.0/3, sum)
		}
	}

	var far r3.Vec
	best := -1.0
	for _, v := range m.Vertices {
		if d := a.Distance(v); d > best {
			far, best = v, d
		}
	}

	return far
}

// edgeUse counts how many triangles reference each undirected edge.
func (f *Face) edgeUse() map[[2]int]int {
	m := f.Mesh
	use := make(map[[2]int]int)
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		for k := 0; k < 3; k++ {
			use[edgeKey(tri[k], tri[(k+1)%3])]++
		}
	}

	return use
}

// Degenerate reports whether the face has fewer than 2 creases.
func (f *Face) Degenerate() bool {
	return len(f.Axes) < 2
}

// Check returns ErrDegenerateFace for a degenerate face, nil otherwise.
func (f *Face) Check() error {
	if f.Degenerate() {
		return fmt.Errorf("%w: face %d has %d", ErrDegenerateFace, f.ID, len(f.Axes))
	}

	return nil
}

// AxisTo returns the crease linking f to the neighbor face id.
func (f *Face) AxisTo(neighbor int) (*crease.Axis, bool) {
	for _, a := range f.Axes {
		if a.NeighborFace == neighbor {
			return a, true
		}
	}

	return nil, false
}

// Centroid is the average of the live vertex positions.
func (f *Face) Centroid() r3.Vec {
	return f.Mesh.Centroid()
}

// Area is the live surface area.
func (f *Face) Area() float64 {
	return f.Mesh.Area()
}

// reset restores rest vertices and original creases.
func (f *Face) reset() {
	f.Mesh.Reset()
	for _, a := range f.Axes {
		a.Revert()
	}
}

func edgeKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}

	return [2]int{i, j}
}
