// SPDX-License-Identifier: MIT
// Package: foldnet/solids
//
// options.go - functional options for the solid builders.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Builders themselves never panic.

package solids

import "gonum.org/v1/gonum/spatial/r3"

// Option customizes a builder call.
type Option func(*config)

// config holds the placement applied to canonical coordinates.
type config struct {
	size   float64
	center r3.Vec
}

// defaultConfig is unit size at the origin.
func defaultConfig() config {
	return config{size: 1}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSize multiplies every canonical coordinate by s.
// Panics if s <= 0.
func WithSize(s float64) Option {
	if s <= 0 {
		panic("solids: WithSize requires s > 0")
	}
	return func(c *config) {
		c.size = s
	}
}

// WithCenter translates the solid so that its center lands on p.
func WithCenter(p r3.Vec) Option {
	return func(c *config) {
		c.center = p
	}
}

// place maps a canonical point to its final position.
func (c config) place(p r3.Vec) r3.Vec {
	return r3.Add(r3.Scale(c.size, p), c.center)
}
