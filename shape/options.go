package shape

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/foldnet/crease"
	"github.com/katalvlaran/foldnet/graph"
)

// RootRule selects the base face of faceMap.
type RootRule int

const (
	// RootLargestArea picks the face with the greatest surface area; ties are
	// broken by the lowest average position along Up, then by lowest index.
	RootLargestArea RootRule = iota

	// RootLowest picks the face with the lowest average position along Up;
	// ties are broken by greatest area, then by lowest index.
	RootLowest
)

// String implements fmt.Stringer.
func (r RootRule) String() string {
	switch r {
	case RootLargestArea:
		return "largest-area"
	case RootLowest:
		return "lowest"
	default:
		return fmt.Sprintf("RootRule(%d)", int(r))
	}
}

// UnfoldFunc derives an unfold tree from a freshly built shape.
type UnfoldFunc func(s *Shape) (*graph.Graph[int], error)

// Option configures New.
type Option func(*Options)

// Options holds the construction knobs of a Shape.
type Options struct {
	// Tolerance is the crease coincidence tolerance.
	Tolerance float64

	// Up is the vertical direction used by the root rules.
	Up r3.Vec

	// RootRule selects the base face.
	RootRule RootRule

	// DefaultUnfold derives the initial unfold tree. Nil selects a
	// breadth-first spanning tree of faceMap.
	DefaultUnfold UnfoldFunc
}

// DefaultOptions returns Options with crease.DefaultTolerance, +Y up,
// RootLargestArea and a breadth-first default unfold.
func DefaultOptions() Options {
	return Options{
		Tolerance: crease.DefaultTolerance,
		Up:        r3.Vec{Y: 1},
		RootRule:  RootLargestArea,
	}
}

// WithTolerance sets the crease coincidence tolerance. Panics if eps <= 0.
func WithTolerance(eps float64) Option {
	if eps <= 0 {
		panic("shape: WithTolerance requires eps > 0")
	}
	return func(o *Options) {
		o.Tolerance = eps
	}
}

// WithUp sets the vertical direction. Panics on the zero vector.
func WithUp(up r3.Vec) Option {
	if r3.Norm(up) == 0 {
		panic("shape: WithUp(zero vector)")
	}
	return func(o *Options) {
		o.Up = r3.Unit(up)
	}
}

// WithRootRule selects how the base face is chosen.
func WithRootRule(rule RootRule) Option {
	return func(o *Options) {
		o.RootRule = rule
	}
}

// WithDefaultUnfold sets the strategy used for the initial unfold tree.
func WithDefaultUnfold(fn UnfoldFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.DefaultUnfold = fn
		}
	}
}
