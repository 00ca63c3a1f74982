package animator

import (
	"github.com/katalvlaran/foldnet/fold"
	"github.com/katalvlaran/foldnet/shape"
)

// DefaultFrameNormalization divides speed into a per-tick progress step:
// at speed 1 a full unfold takes 750 ticks.
const DefaultFrameNormalization = 100 * 7.5

// FrameFunc is called after each animation's pose is updated in a tick.
type FrameFunc func(s *shape.Shape, st State)

// Option configures New.
type Option func(*Options)

// Options holds Animator-wide settings.
type Options struct {
	// FrameNormalization is the number of ticks a unit speed needs to go
	// from progress 0 to 1.
	FrameNormalization float64

	// OnFrame, if set, is invoked once per animation per Update.
	OnFrame FrameFunc
}

// DefaultOptions returns DefaultFrameNormalization and no frame hook.
func DefaultOptions() Options {
	return Options{FrameNormalization: DefaultFrameNormalization}
}

// WithFrameNormalization overrides the progress step divisor.
// Panics if c <= 0.
func WithFrameNormalization(c float64) Option {
	if c <= 0 {
		panic("animator: WithFrameNormalization requires c > 0")
	}
	return func(o *Options) {
		o.FrameNormalization = c
	}
}

// WithOnFrame installs the per-frame hook. Panics on nil.
func WithOnFrame(fn FrameFunc) Option {
	if fn == nil {
		panic("animator: WithOnFrame(nil)")
	}
	return func(o *Options) {
		o.OnFrame = fn
	}
}

// AnimationOption configures one Animation at registration.
type AnimationOption func(*Animation)

// Paused sets the initial paused flag (default false).
func Paused(p bool) AnimationOption {
	return func(a *Animation) {
		a.paused = p
	}
}

// Speed sets the initial speed (default 1).
func Speed(v float64) AnimationOption {
	return func(a *Animation) {
		a.speed = v
	}
}

// Algorithm sets the initial algorithm (default fold.Synchronized).
// Invalid values are ignored.
func Algorithm(alg fold.Algorithm) AnimationOption {
	return func(a *Animation) {
		if alg.Valid() {
			a.algorithm = alg
		}
	}
}
