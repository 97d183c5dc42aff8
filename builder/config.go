// SPDX-License-Identifier: MIT
// Package: relax/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • valueFn     = nil                 (each constructor resolves its own default)
//   • dominance   = DefaultDominance    (2.0)
//   • solution    = nil                 (constructor default)
//
// AI-Hints:
//   • Set WithSeed for reproducible DiagonallyDominant fixtures.
//   • WithSolution pins the exact x so tests can compare against it directly.

package builder

import "math/rand" // RNG for stochastic builders

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Value generator for random entries; nil → constructor default.
	valueFn ValueFn
	// Strict dominance factor (> MinDominance).
	dominance float64
	// Exact solution override; nil → constructor default.
	solution []float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,              // no RNG unless explicitly set
		valueFn:   nil,              // resolved by constructors
		dominance: DefaultDominance, // 2.0
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// resolveValueFn returns cfg.valueFn or fallback when none was configured.
func (c builderConfig) resolveValueFn(fallback ValueFn) ValueFn {
	if c.valueFn != nil {
		return c.valueFn
	}

	return fallback
}
