package crease_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/foldnet/crease"
)

const eps = 1e-9

func vecNear(t *testing.T, want, got r3.Vec, tol float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X")
	assert.InDelta(t, want.Y, got.Y, tol, "Y")
	assert.InDelta(t, want.Z, got.Z, tol, "Z")
}

func mustAxis(t *testing.T, p1, p2 r3.Vec) *crease.Axis {
	t.Helper()
	a, err := crease.New(p1, p2)
	require.NoError(t, err)

	return a
}

func TestNew_Degenerate(t *testing.T) {
	_, err := crease.New(r3.Vec{X: 1}, r3.Vec{X: 1})
	assert.ErrorIs(t, err, crease.ErrDegenerateAxis)
}

func TestNew_AnchorIsClosestPoint(t *testing.T) {
	// Line y=1, z=2 running along X.
	a := mustAxis(t, r3.Vec{X: 5, Y: 1, Z: 2}, r3.Vec{X: 7, Y: 1, Z: 2})
	vecNear(t, r3.Vec{X: 1}, a.Line, eps)
	vecNear(t, r3.Vec{Y: 1, Z: 2}, a.Point, eps)
	assert.InDelta(t, 2, a.Length, eps)
	assert.False(t, a.Linked())
	assert.Equal(t, crease.NoNeighbor, a.NeighborFace)
	assert.Equal(t, crease.NoNeighbor, a.SharedAxis)
}

func TestEqual_OrderIndependent(t *testing.T) {
	p, q := r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: -1, Y: 0, Z: 4}
	a := mustAxis(t, p, q)
	b := mustAxis(t, q, p)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	// Different segment of the same line is still the same crease line.
	c := mustAxis(t, r3.Add(p, r3.Scale(3, r3.Sub(q, p))), q)
	assert.True(t, a.Equal(c))
}

func TestEqual_Tolerance(t *testing.T) {
	a := mustAxis(t, r3.Vec{}, r3.Vec{X: 1})
	near := mustAxis(t, r3.Vec{Y: 5e-5}, r3.Vec{X: 1, Y: 5e-5})
	far := mustAxis(t, r3.Vec{Y: 5e-3}, r3.Vec{X: 1, Y: 5e-3})
	assert.True(t, a.Equal(near))
	assert.False(t, a.Equal(far))
	assert.False(t, a.EqualTol(near, 1e-6))
	assert.False(t, a.Equal(nil))
}

func TestEqual_AfterRotationFlip(t *testing.T) {
	// Rotating by π reverses the stored orientation; equality must still hold.
	a := mustAxis(t, r3.Vec{}, r3.Vec{X: 1})
	pivot := mustAxis(t, r3.Vec{}, r3.Vec{Z: 1})
	b := mustAxis(t, r3.Vec{}, r3.Vec{X: 1})
	b.RotateAxisAbout(pivot, math.Pi)
	vecNear(t, r3.Vec{X: -1}, b.Line, 1e-12)
	assert.True(t, a.Equal(b))
}

func TestRotateAbout(t *testing.T) {
	// Z axis through (1,0,0): quarter turn maps (2,0,0) to (1,1,0).
	a := mustAxis(t, r3.Vec{X: 1}, r3.Vec{X: 1, Z: 1})
	got := a.RotateAbout(r3.Vec{X: 2}, math.Pi/2)
	vecNear(t, r3.Vec{X: 1, Y: 1}, got, 1e-12)

	// Points on the axis are fixed.
	vecNear(t, r3.Vec{X: 1, Z: 7}, a.RotateAbout(r3.Vec{X: 1, Z: 7}, 1.234), 1e-12)
}

func TestRotateAxisAbout_AndRevert(t *testing.T) {
	a := mustAxis(t, r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1}) // vertical line through x=1
	pivot := mustAxis(t, r3.Vec{}, r3.Vec{Y: 1})       // Y axis
	a.RotateAxisAbout(pivot, math.Pi/2)

	vecNear(t, r3.Vec{Y: 1}, a.Line, 1e-12)
	vecNear(t, r3.Vec{Z: -1}, a.Point, 1e-12)

	a.Revert()
	assert.Equal(t, a.OriginalLine, a.Line)
	assert.Equal(t, a.OriginalPoint, a.Point)
}

func TestOrientedAngle(t *testing.T) {
	a := mustAxis(t, r3.Vec{}, r3.Vec{Z: 1})
	assert.InDelta(t, math.Pi/2, a.OrientedAngle(r3.Vec{X: 1}, r3.Vec{Y: 1}), 1e-12)
	assert.InDelta(t, -math.Pi/2, a.OrientedAngle(r3.Vec{Y: 1}, r3.Vec{X: 1}), 1e-12)
	// Components along the line are ignored.
	assert.InDelta(t, math.Pi/2, a.OrientedAngle(r3.Vec{X: 1, Z: 4}, r3.Vec{Y: 2, Z: -3}), 1e-12)

	// Rotating p1 by the oriented angle lands it on p2's direction.
	p1, p2 := r3.Vec{X: 1, Y: 0.3}, r3.Vec{X: -0.2, Y: -1}
	theta := a.OrientedAngle(p1, p2)
	rotated := a.RotateAbout(p1, theta)
	assert.InDelta(t, 0, a.OrientedAngle(rotated, p2), 1e-12)
}

func TestDistance(t *testing.T) {
	a := mustAxis(t, r3.Vec{X: 1, Y: 1}, r3.Vec{X: 1, Y: 1, Z: 2})
	assert.InDelta(t, 0, a.Distance(r3.Vec{X: 1, Y: 1, Z: -7}), eps)
	assert.InDelta(t, 1, a.Distance(r3.Vec{X: 2, Y: 1, Z: 3}), eps)
	assert.InDelta(t, math.Sqrt2, a.Distance(r3.Vec{}), eps)
}

func TestSnapshotIsDetached(t *testing.T) {
	a := mustAxis(t, r3.Vec{}, r3.Vec{X: 1})
	snap := a.Snapshot()
	pivot := mustAxis(t, r3.Vec{}, r3.Vec{Z: 1})
	a.RotateAxisAbout(pivot, 0.5)
	assert.Equal(t, snap.OriginalLine, snap.Line)
	assert.NotEqual(t, snap.Line, a.Line)
	assert.Contains(t, a.String(), "axis{")
}
