// Package graph - random source helpers for the shuffled tree walkers.
//
// Determinism: the same seed yields the same tree on every platform; there is
// no hidden time-based source. math/rand.Rand is not goroutine-safe, so a
// generator must not be shared across concurrent walks.
package graph

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffled returns a uniformly permuted copy of ns (Fisher–Yates).
// A nil rng returns an unshuffled copy.
// Complexity: O(n) time, O(n) space.
func shuffled[T comparable](ns []*Node[T], rng *rand.Rand) []*Node[T] {
	out := make([]*Node[T], len(ns))
	copy(out, ns)
	if rng == nil {
		return out
	}
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
