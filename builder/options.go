// SPDX-License-Identifier: MIT
// Package: relax/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"
	"math/rand" // RNG source for stochastic builders
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before the system is generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the generator of random matrix entries.
// Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithDominance sets the strict-dominance factor d (> 1, finite).
// Panics otherwise: d ≤ 1 no longer guarantees convergence.
// Complexity: O(1) time, O(1) space.
func WithDominance(d float64) BuilderOption {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= MinDominance {
		panic("builder: WithDominance(d<=1)")
	}
	return func(c *builderConfig) {
		c.dominance = d
	}
}

// WithSolution pins the exact solution x. The slice is copied; its length is
// checked by the constructor (ErrSolutionLength).
// Complexity: O(len(x)).
func WithSolution(x []float64) BuilderOption {
	cp := append([]float64(nil), x...)
	return func(c *builderConfig) {
		c.solution = cp
	}
}

// WithUniformValues sets entries ∼ U[min,max] via UniformValueFn.
// Complexity: O(1).
func WithUniformValues(min, max float64) BuilderOption {
	return WithValueFn(UniformValueFn(min, max))
}

// WithNormalValues sets entries ∼ N(mean,stddev) via NormalValueFn.
// Complexity: O(1).
func WithNormalValues(mean, stddev float64) BuilderOption {
	return WithValueFn(NormalValueFn(mean, stddev))
}
