package animator

import (
	"fmt"

	"github.com/katalvlaran/foldnet/fold"
	"github.com/katalvlaran/foldnet/graph"
	"github.com/katalvlaran/foldnet/shape"
)

// Animation is the playback record of one shape.
type Animation struct {
	shape     *shape.Shape
	tree      *graph.Graph[int]
	progress  float64
	speed     float64
	paused    bool
	algorithm fold.Algorithm
}

// State is a read-only copy of an Animation's controls.
type State struct {
	Progress  float64
	Speed     float64
	Paused    bool
	Algorithm fold.Algorithm
}

func newAnimation(s *shape.Shape, tree *graph.Graph[int]) *Animation {
	return &Animation{
		shape:     s,
		tree:      tree,
		speed:     1,
		algorithm: fold.Synchronized,
	}
}

// Shape returns the animated shape.
func (a *Animation) Shape() *shape.Shape { return a.shape }

// Tree returns the unfold tree being played.
func (a *Animation) Tree() *graph.Graph[int] { return a.tree }

// Progress returns the playback cursor. It may sit outside [0, 1] until
// the next Update clamps it.
func (a *Animation) Progress() float64 { return a.progress }

// Speed returns the current speed.
func (a *Animation) Speed() float64 { return a.speed }

// Paused reports whether progress is frozen.
func (a *Animation) Paused() bool { return a.paused }

// Algorithm returns the selected folding algorithm.
func (a *Animation) Algorithm() fold.Algorithm { return a.algorithm }

// State returns a copy of the controls.
func (a *Animation) State() State {
	return State{Progress: a.progress, Speed: a.speed, Paused: a.paused, Algorithm: a.algorithm}
}

// Play resumes progress advancement.
func (a *Animation) Play() { a.paused = false }

// Pause freezes progress; the pose is still re-derived every tick.
func (a *Animation) Pause() { a.paused = true }

// Stop pauses, resets progress to 0 and reverts the shape to rest.
func (a *Animation) Stop() {
	a.paused = true
	a.progress = 0
	a.shape.Revert()
}

// Scrub moves progress by delta. The value is not clamped here; the next
// Update applies the state machine to it.
func (a *Animation) Scrub(delta float64) { a.progress += delta }

// IncrementSpeed adds delta to the speed. Negative speeds fold back.
func (a *Animation) IncrementSpeed(delta float64) { a.speed += delta }

// SetAlgorithm selects the folding algorithm.
// Returns ErrUnknownAlgorithm for values outside fold.Algorithms.
func (a *Animation) SetAlgorithm(alg fold.Algorithm) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	a.algorithm = alg

	return nil
}

// ShuffleAlgorithm cycles to the next algorithm.
func (a *Animation) ShuffleAlgorithm() { a.algorithm = a.algorithm.Next() }

// step runs one tick of the state machine.
func (a *Animation) step(frame float64) error {
	switch {
	case a.progress < 0:
		a.shape.Revert()
		a.progress = 0
	case a.progress < 1:
		if err := fold.Apply(a.shape, a.tree, a.algorithm, a.progress); err != nil {
			return err
		}
		if !a.paused {
			a.progress += a.speed / frame
		}
	default:
		a.progress = 1
		if err := fold.Apply(a.shape, a.tree, fold.Synchronized, 1); err != nil {
			return err
		}
	}

	return nil
}
