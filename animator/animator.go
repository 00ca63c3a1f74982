package animator

import (
	"errors"
	"fmt"

	foldnet "github.com/katalvlaran/foldnet"
	"github.com/katalvlaran/foldnet/fold"
	"github.com/katalvlaran/foldnet/graph"
	"github.com/katalvlaran/foldnet/shape"
)

// Sentinel errors for the animator.
var (
	// ErrAnimationNotFound indicates GetAnimation for an unregistered shape.
	ErrAnimationNotFound = errors.New("animator: no animation for shape")

	// ErrUnknownAlgorithm is fold.ErrUnknownAlgorithm.
	ErrUnknownAlgorithm = fold.ErrUnknownAlgorithm

	// ErrNilShape indicates AddAnimation without a shape.
	ErrNilShape = errors.New("animator: nil shape")
)

// Animator plays registered animations in registration order.
type Animator struct {
	opts       Options
	animations []*Animation
	byShape    map[*shape.Shape]*Animation
}

// New creates an empty Animator.
func New(opts ...Option) *Animator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Animator{opts: o, byShape: make(map[*shape.Shape]*Animation)}
}

// AddAnimation registers s for playback along tree. A nil tree plays the
// shape's current unfold tree; otherwise tree becomes the shape's unfold
// tree. Registering a shape again replaces its animation.
//
// Returns ErrNilShape, or the shape.SetUnfold error for an invalid tree
// (ErrIncompleteSpanningTree when it misses faces).
func (an *Animator) AddAnimation(s *shape.Shape, tree *graph.Graph[int], opts ...AnimationOption) error {
	if s == nil {
		return ErrNilShape
	}
	if tree != nil {
		if err := s.SetUnfold(tree); err != nil {
			return fmt.Errorf("animator: %w", err)
		}
	}

	a := newAnimation(s, s.Unfold())
	for _, opt := range opts {
		opt(a)
	}
	if old, ok := an.byShape[s]; ok {
		for i, x := range an.animations {
			if x == old {
				an.animations[i] = a
			}
		}
	} else {
		an.animations = append(an.animations, a)
	}
	an.byShape[s] = a

	foldnet.Logger().Info("animation registered",
		"faces", len(s.Faces), "algorithm", a.algorithm, "speed", a.speed, "paused", a.paused)

	return nil
}

// GetAnimation returns the animation of s.
// Returns ErrAnimationNotFound if s was never registered.
func (an *Animator) GetAnimation(s *shape.Shape) (*Animation, error) {
	a, ok := an.byShape[s]
	if !ok {
		return nil, ErrAnimationNotFound
	}

	return a, nil
}

// RemoveAnimation unregisters s and reverts it to rest.
// Returns ErrAnimationNotFound if s was never registered.
func (an *Animator) RemoveAnimation(s *shape.Shape) error {
	a, ok := an.byShape[s]
	if !ok {
		return ErrAnimationNotFound
	}
	delete(an.byShape, s)
	for i, x := range an.animations {
		if x == a {
			an.animations = append(an.animations[:i], an.animations[i+1:]...)
			break
		}
	}
	s.Revert()

	return nil
}

// Len returns the number of registered animations.
func (an *Animator) Len() int {
	return len(an.animations)
}

// Update advances every animation by one tick and calls the frame hook for
// each. An animation that fails is reported and the others still run.
func (an *Animator) Update() error {
	var errs []error
	for _, a := range an.animations {
		if err := a.step(an.opts.FrameNormalization); err != nil {
			errs = append(errs, err)
			continue
		}
		if an.opts.OnFrame != nil {
			an.opts.OnFrame(a.shape, a.State())
		}
	}

	return errors.Join(errs...)
}
