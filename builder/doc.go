// SPDX-License-Identifier: MIT

// Package builder provides reusable “functional‐options”‐style generators of
// square linear systems A·x = b with a known exact solution. The systems feed
// the relaxation solvers in tests, examples, benchmarks and the CLI
// `generate` command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, value distribution, dominance, solution.
//   - Value distributions (ValueFn implementations):
//     – DefaultValueFn:    constant DefaultValue.
//     – ConstantValueFn:   fixed user-provided value.
//     – UniformValueFn:    uniform ∼U[min,max].
//     – NormalValueFn:     Gaussian ∼N(mean,stddev).
//   - Constructors:
//     – Tridiagonal:        [-1, 2·d, -1] band, deterministic.
//     – DiagonallyDominant: random off-diagonals, diagonal = d·Σ|row| (needs RNG).
//     – FromSolution:       b = A·x for a caller-supplied A and x.
//   - Shared constants:
//     – MinTridiagonalSize, MinSystemSize, DefaultDominance, DefaultValue.
//     – MethodTridiagonal, … tokens for error context.
//
// Guarantees:
//
//   - Determinism: same n, options and seed ⇒ bitwise-identical systems.
//   - Strict diagonal dominance (factor d > 1) for the generated matrices, so
//     both Jacobi and Gauss-Seidel converge on them.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors;
//     constructors themselves return sentinel errors and never panic.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
