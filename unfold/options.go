package unfold

import "math/rand"

// Option configures the randomized strategies.
type Option func(*Options)

// Options holds the random source of RandomBasic and RandomBreadthUnfold.
type Options struct {
	// Seed builds the generator when Rand is nil; 0 selects a fixed default.
	Seed int64

	// Rand, when set, takes precedence over Seed.
	Rand *rand.Rand
}

// DefaultOptions returns Options with seed 0 and no explicit generator.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed selects a deterministic generator seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("unfold: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}
