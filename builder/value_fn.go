// SPDX-License-Identifier: MIT

// Package builder provides helper functions and types for configuring the
// value distributions of generated matrix entries and solutions.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// ValueFn produces one matrix or solution entry given an optional *rand.Rand.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type ValueFn func(rng *rand.Rand) float64

// DefaultValueFn always returns the constant DefaultValue.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultValueFn(_ *rand.Rand) float64 {
	return DefaultValue
}

// ConstantValueFn returns a ValueFn that always yields the provided value.
// Panics if value is not finite.
// Complexity: O(1) time, O(1) space.
func ConstantValueFn(value float64) ValueFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantValueFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformValueFn returns a ValueFn sampling uniformly in [min, max).
// Panics if max < min or either bound is not finite.
// If rng is nil, yields DefaultValue to maintain deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformValueFn(min, max float64) ValueFn {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformValueFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultValue
		}
		if max == min {
			// Degenerate interval: constant
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalValueFn returns a ValueFn sampling from N(mean, stddev).
// Panics if stddev < 0. If rng is nil, yields DefaultValue.
// Complexity: O(1) time, O(1) space.
func NormalValueFn(mean, stddev float64) ValueFn {
	if stddev < 0 || math.IsNaN(stddev) {
		panic(fmt.Sprintf("NormalValueFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultValue
		}

		return rng.NormFloat64()*stddev + mean
	}
}
