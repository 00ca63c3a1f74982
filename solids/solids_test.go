// SPDX-License-Identifier: MIT
package solids_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/foldnet/mesh"
	"github.com/katalvlaran/foldnet/solids"
)

// outward reports whether every triangle of every region faces away from c.
func outward(t *testing.T, regions []mesh.Region, c r3.Vec) {
	t.Helper()
	for fi, r := range regions {
		for k := 0; k+2 < len(r.Indices); k += 3 {
			a, b, d := r.Positions[r.Indices[k]], r.Positions[r.Indices[k+1]], r.Positions[r.Indices[k+2]]
			n := r3.Cross(r3.Sub(b, a), r3.Sub(d, a))
			require.Greater(t, r3.Norm(n), 1e-9, "face %d triangle %d is degenerate", fi, k/3)
			assert.Greater(t, r3.Dot(n, r3.Sub(a, c)), 0.0, "face %d triangle %d faces inward", fi, k/3)
		}
	}
}

func TestPlatonic_FaceCountsAndOrientation(t *testing.T) {
	cases := []struct {
		name    solids.PlatonicName
		faces   int
		corners int
	}{
		{solids.Tetrahedron, 4, 3},
		{solids.Cube, 6, 4},
		{solids.Octahedron, 8, 3},
		{solids.Dodecahedron, 12, 5},
		{solids.Icosahedron, 20, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name.String(), func(t *testing.T) {
			regions, err := solids.Platonic(tc.name)
			require.NoError(t, err)
			require.Len(t, regions, tc.faces)
			for _, r := range regions {
				assert.Len(t, r.Positions, tc.corners)
				assert.Len(t, r.Indices, 3*(tc.corners-2))
				// consecutive corners are one edge apart
				for i := range r.Positions {
					j := (i + 1) % len(r.Positions)
					assert.InDelta(t, 1.0, r3.Norm(r3.Sub(r.Positions[i], r.Positions[j])), 1e-9)
				}
			}
			outward(t, regions, r3.Vec{})
		})
	}
}

func TestPlatonic_Unknown(t *testing.T) {
	_, err := solids.Platonic(solids.PlatonicName(42))
	assert.ErrorIs(t, err, solids.ErrUnknownSolid)
}

func TestParse(t *testing.T) {
	for _, n := range solids.Names() {
		p, err := solids.Parse(n)
		require.NoError(t, err)
		assert.Equal(t, n, p.String())
	}
	p, err := solids.Parse("ICOSAHEDRON")
	require.NoError(t, err)
	assert.Equal(t, solids.Icosahedron, p)

	_, err = solids.Parse("torus")
	assert.ErrorIs(t, err, solids.ErrUnknownSolid)
}

func TestBox(t *testing.T) {
	regions, err := solids.Box(2, 3, 4)
	require.NoError(t, err)
	require.Len(t, regions, 6)
	outward(t, regions, r3.Vec{})

	// -X face lies on x = -1
	for _, p := range regions[0].Positions {
		assert.InDelta(t, -1.0, p.X, 1e-12)
	}

	_, err = solids.Box(1, 0, 1)
	assert.ErrorIs(t, err, solids.ErrBadExtent)
}

func TestPrism(t *testing.T) {
	regions, err := solids.Prism(5)
	require.NoError(t, err)
	require.Len(t, regions, 7)
	outward(t, regions, r3.Vec{})
	assert.Len(t, regions[0].Positions, 5)
	assert.Len(t, regions[2].Positions, 4)

	_, err = solids.Prism(2)
	assert.ErrorIs(t, err, solids.ErrTooFewSides)
}

// lOutline is an L-shaped hexagon with a reflex corner at (1, 1).
var lOutline = []r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}

func regionArea(r mesh.Region) float64 {
	var sum float64
	for k := 0; k+2 < len(r.Indices); k += 3 {
		a, b, c := r.Positions[r.Indices[k]], r.Positions[r.Indices[k+1]], r.Positions[r.Indices[k+2]]
		sum += r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a))) / 2
	}

	return sum
}

func TestExtrude_ConcaveOutline(t *testing.T) {
	regions, err := solids.Extrude(lOutline, 1)
	require.NoError(t, err)
	require.Len(t, regions, 8)
	// area centroid of the L; every face plane keeps it on its inner side
	outward(t, regions, r3.Vec{X: 5.0 / 6, Z: 5.0 / 6})

	// ear-clipped caps cover exactly the L without overlap
	assert.InDelta(t, 3.0, regionArea(regions[0]), 1e-12)
	assert.InDelta(t, 3.0, regionArea(regions[1]), 1e-12)
	assert.Len(t, regions[0].Indices, 3*4)
	var total float64
	for _, r := range regions {
		total += regionArea(r)
	}
	assert.InDelta(t, 2*3.0+8*1.0, total, 1e-12)

	for _, p := range regions[0].Positions {
		assert.InDelta(t, -0.5, p.Y, 1e-12)
	}
	for _, p := range regions[1].Positions {
		assert.InDelta(t, 0.5, p.Y, 1e-12)
	}
}

func TestExtrude_WindingIsNormalized(t *testing.T) {
	cw := append([]r2.Vec(nil), lOutline...)
	for i, j := 0, len(cw)-1; i < j; i, j = i+1, j-1 {
		cw[i], cw[j] = cw[j], cw[i]
	}
	regions, err := solids.Extrude(cw, 2, solids.WithSize(0.5))
	require.NoError(t, err)
	require.Len(t, regions, 8)
	outward(t, regions, r3.Vec{X: 5.0 / 12, Z: 5.0 / 12})
	assert.InDelta(t, 0.75, regionArea(regions[0]), 1e-12)
}

func TestExtrude_Errors(t *testing.T) {
	_, err := solids.Extrude(lOutline[:2], 1)
	assert.ErrorIs(t, err, solids.ErrTooFewSides)

	_, err = solids.Extrude(lOutline, 0)
	assert.ErrorIs(t, err, solids.ErrBadExtent)

	_, err = solids.Extrude([]r2.Vec{{X: 0}, {X: 1}, {X: 2}}, 1)
	assert.ErrorIs(t, err, solids.ErrBadOutline)

	_, err = solids.Extrude([]r2.Vec{{X: 0}, {X: 1}, {X: 2}, {X: 2, Y: 1}}, 1)
	assert.ErrorIs(t, err, solids.ErrBadOutline)
}

func TestOptions_SizeAndCenter(t *testing.T) {
	c := r3.Vec{X: 10, Y: -2, Z: 3}
	regions := solids.UnitCube(solids.WithSize(2), solids.WithCenter(c))
	outward(t, regions, c)
	for _, r := range regions {
		for _, p := range r.Positions {
			d := r3.Sub(p, c)
			assert.InDelta(t, 1.0, math.Abs(d.X), 1e-12)
			assert.InDelta(t, 1.0, math.Abs(d.Y), 1e-12)
			assert.InDelta(t, 1.0, math.Abs(d.Z), 1e-12)
		}
	}

	assert.Panics(t, func() { solids.WithSize(0) })
}

func TestRegions_DoNotShareStorage(t *testing.T) {
	regions := solids.UnitCube()
	regions[0].Positions[0] = r3.Vec{X: 99}
	again := solids.UnitCube()
	assert.NotEqual(t, r3.Vec{X: 99}, again[0].Positions[0])
}
