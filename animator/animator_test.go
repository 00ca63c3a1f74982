package animator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foldnet/animator"
	"github.com/katalvlaran/foldnet/fold"
	"github.com/katalvlaran/foldnet/graph"
	"github.com/katalvlaran/foldnet/shape"
	"github.com/katalvlaran/foldnet/solids"
	"github.com/katalvlaran/foldnet/unfold"
)

func newCube(t testing.TB) *shape.Shape {
	t.Helper()
	s, err := shape.New(solids.UnitCube())
	require.NoError(t, err)

	return s
}

// unfoldedPose returns the vertices of s posed fully unfolded, then
// reverts s.
func unfoldedPose(t *testing.T, s *shape.Shape) [][]float64 {
	t.Helper()
	require.NoError(t, fold.Apply(s, s.Unfold(), fold.Synchronized, 1))
	out := flatten(s)
	s.Revert()

	return out
}

func flatten(s *shape.Shape) [][]float64 {
	var out [][]float64
	for _, f := range s.Vertices() {
		for _, v := range f {
			out = append(out, []float64{v.X, v.Y, v.Z})
		}
	}

	return out
}

func TestAddAnimation_Defaults(t *testing.T) {
	an := animator.New()
	s := newCube(t)
	require.NoError(t, an.AddAnimation(s, nil))

	a, err := an.GetAnimation(s)
	require.NoError(t, err)
	assert.Equal(t, animator.State{Progress: 0, Speed: 1, Paused: false, Algorithm: fold.Synchronized}, a.State())
	assert.Same(t, s, a.Shape())
	assert.Same(t, s.Unfold(), a.Tree())
	assert.Equal(t, 1, an.Len())
}

func TestAddAnimation_Options(t *testing.T) {
	an := animator.New()
	s := newCube(t)
	require.NoError(t, an.AddAnimation(s, nil,
		animator.Paused(true), animator.Speed(3), animator.Algorithm(fold.Sequential)))
	a, err := an.GetAnimation(s)
	require.NoError(t, err)
	assert.True(t, a.Paused())
	assert.Equal(t, 3.0, a.Speed())
	assert.Equal(t, fold.Sequential, a.Algorithm())

	// re-registration replaces the record
	require.NoError(t, an.AddAnimation(s, nil))
	b, err := an.GetAnimation(s)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, 1, an.Len())
}

func TestAddAnimation_Errors(t *testing.T) {
	an := animator.New()
	assert.ErrorIs(t, an.AddAnimation(nil, nil), animator.ErrNilShape)

	s := newCube(t)
	partial := graph.New[int]()
	_, _ = partial.NewRootNode(s.Root())
	assert.ErrorIs(t, an.AddAnimation(s, partial), shape.ErrIncompleteSpanningTree)
	assert.Equal(t, 0, an.Len())

	_, err := an.GetAnimation(s)
	assert.ErrorIs(t, err, animator.ErrAnimationNotFound)
	assert.ErrorIs(t, an.RemoveAnimation(s), animator.ErrAnimationNotFound)
}

func TestAddAnimation_WithTreeBecomesUnfold(t *testing.T) {
	an := animator.New()
	s := newCube(t)
	tree, err := unfold.Basic(s)
	require.NoError(t, err)
	require.NoError(t, an.AddAnimation(s, tree))
	assert.Same(t, tree, s.Unfold())
}

func TestUpdate_AdvancesByNormalizedSpeed(t *testing.T) {
	an := animator.New(animator.WithFrameNormalization(10))
	s := newCube(t)
	require.NoError(t, an.AddAnimation(s, nil))
	a, _ := an.GetAnimation(s)

	for i := 0; i < 5; i++ {
		require.NoError(t, an.Update())
	}
	assert.InDelta(t, 0.5, a.Progress(), 1e-12)
	assert.False(t, s.AtRest(1e-9))
}

func TestUpdate_DefaultNormalizationReachesUnfolded(t *testing.T) {
	an := animator.New()
	s := newCube(t)
	want := unfoldedPose(t, s)
	require.NoError(t, an.AddAnimation(s, nil, animator.Algorithm(fold.Sequential)))
	a, _ := an.GetAnimation(s)

	for i := 0; i < 760; i++ {
		require.NoError(t, an.Update())
	}
	assert.Equal(t, 1.0, a.Progress())
	got := flatten(s)
	require.Len(t, got, len(want))
	for i := range got {
		assert.InDeltaSlice(t, want[i], got[i], 1e-9)
	}
}

func TestUpdate_PausedHoldsProgress(t *testing.T) {
	an := animator.New()
	s := newCube(t)
	require.NoError(t, an.AddAnimation(s, nil, animator.Paused(true)))
	a, _ := an.GetAnimation(s)
	a.Scrub(0.4)

	require.NoError(t, an.Update())
	require.NoError(t, an.Update())
	assert.Equal(t, 0.4, a.Progress())
	pose := s.Vertices()
	require.NoError(t, an.Update())
	assert.Equal(t, pose, s.Vertices())

	a.Play()
	require.NoError(t, an.Update())
	assert.Greater(t, a.Progress(), 0.4)
}

func TestUpdate_NegativeProgressClampsToRest(t *testing.T) {
	an := animator.New()
	s := newCube(t)
	require.NoError(t, an.AddAnimation(s, nil))
	a, _ := an.GetAnimation(s)
	a.Scrub(0.5)
	require.NoError(t, an.Update())
	require.False(t, s.AtRest(1e-9))

	a.Scrub(-3)
	require.NoError(t, an.Update())
	assert.Equal(t, 0.0, a.Progress())
	assert.True(t, s.AtRest(0))
}

func TestUpdate_PastOneUsesSynchronized(t *testing.T) {
	an := animator.New()
	s := newCube(t)
	want := unfoldedPose(t, s)
	require.NoError(t, an.AddAnimation(s, nil, animator.Algorithm(fold.Sequential), animator.Paused(true)))
	a, _ := an.GetAnimation(s)
	a.Scrub(5)

	require.NoError(t, an.Update())
	assert.Equal(t, 1.0, a.Progress())
	got := flatten(s)
	for i := range got {
		assert.InDeltaSlice(t, want[i], got[i], 1e-12)
	}
}

func TestStop_AlwaysResets(t *testing.T) {
	for _, start := range []float64{-1, 0.3, 0.99, 1, 4} {
		an := animator.New()
		s := newCube(t)
		require.NoError(t, an.AddAnimation(s, nil))
		a, _ := an.GetAnimation(s)
		a.Scrub(start)
		require.NoError(t, an.Update())

		a.Stop()
		assert.Equal(t, 0.0, a.Progress(), "start %v", start)
		assert.True(t, a.Paused())
		assert.True(t, s.AtRest(0), "start %v", start)

		require.NoError(t, an.Update())
		assert.True(t, s.AtRest(0), "start %v", start)
	}
}

func TestAlgorithmControls(t *testing.T) {
	an := animator.New()
	s := newCube(t)
	require.NoError(t, an.AddAnimation(s, nil))
	a, _ := an.GetAnimation(s)

	a.ShuffleAlgorithm()
	assert.Equal(t, fold.Sequential, a.Algorithm())
	a.ShuffleAlgorithm()
	assert.Equal(t, fold.Synchronized, a.Algorithm())

	require.NoError(t, a.SetAlgorithm(fold.Sequential))
	assert.ErrorIs(t, a.SetAlgorithm(fold.Algorithm(5)), animator.ErrUnknownAlgorithm)
	assert.Equal(t, fold.Sequential, a.Algorithm())

	a.IncrementSpeed(0.5)
	a.IncrementSpeed(-2)
	assert.InDelta(t, -0.5, a.Speed(), 1e-12)
}

func TestOnFrameAndIndependentShapes(t *testing.T) {
	calls := map[*shape.Shape]int{}
	an := animator.New(animator.WithOnFrame(func(s *shape.Shape, st animator.State) {
		calls[s]++
	}))
	s1, s2 := newCube(t), newCube(t)
	require.NoError(t, an.AddAnimation(s1, nil))
	require.NoError(t, an.AddAnimation(s2, nil, animator.Paused(true)))

	for i := 0; i < 3; i++ {
		require.NoError(t, an.Update())
	}
	assert.Equal(t, 3, calls[s1])
	assert.Equal(t, 3, calls[s2])
	assert.False(t, s1.AtRest(1e-9))
	assert.True(t, s2.AtRest(0))

	require.NoError(t, an.RemoveAnimation(s1))
	assert.True(t, s1.AtRest(0))
	assert.Equal(t, 1, an.Len())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { animator.WithFrameNormalization(0) })
	assert.Panics(t, func() { animator.WithOnFrame(nil) })
}
