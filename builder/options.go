// SPDX-License-Identifier: MIT
// Package builder: functional options and deterministic defaults.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic.
//   - Seeding is explicit: WithSeed or WithRand. No globals.

package builder

import (
	"math"
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	// defaultValueLo/Hi bound the uniform value draw for random entries,
	// mirroring the classical (-50, 50) test-matrix convention.
	defaultValueLo = -50.0
	defaultValueHi = 50.0
)

// Internal panic messages (option constructors only).
const (
	panicRandNil       = "builder: WithRand(nil)"
	panicValueRangeBad = "builder: WithValueRange: need finite lo < hi"
)

// Option customizes a constructor by mutating a config instance before
// generation begins.
type Option func(*config)

// config aggregates all generator knobs. Passed by value to constructors.
type config struct {
	rng          *rand.Rand // nil means "no randomness available"
	valLo, valHi float64    // uniform value range for random entries
}

// defaultConfig returns the documented defaults.
func defaultConfig() config {
	return config{
		rng:   nil,
		valLo: defaultValueLo,
		valHi: defaultValueHi,
	}
}

// gatherOptions applies options in order (later overrides earlier).
func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueRange sets the uniform draw interval [lo, hi) for random entry
// values. Panics unless lo and hi are finite with lo < hi.
func WithValueRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		panic(panicValueRangeBad)
	}
	return func(c *config) {
		c.valLo, c.valHi = lo, hi
	}
}

// drawValue samples uniformly from [valLo, valHi).
func (c config) drawValue() float64 {
	return c.valLo + c.rng.Float64()*(c.valHi-c.valLo)
}
