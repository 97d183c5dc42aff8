// SPDX-License-Identifier: MIT

// Package relax solves square linear systems A·x = b by parallel iterative
// relaxation: Jacobi and Gauss-Seidel on up to four worker goroutines.
//
// The repository is organized as small packages, each with one concern:
//
//	matrix/    dense row-major matrix, validators and linear-algebra kernels
//	operator/  one-time Jacobi (N, M) and Gauss-Seidel (N, L, U, NL, NU) splits
//	history/   write-once iteration table shared by workers (locked or atomic)
//	solver/    worker pool, barrier and polling synchronization, convergence,
//	            result selection, metrics and tracing
//	builder/   generated test systems with known exact solutions
//	textio/    plain-text loaders for A and b, writers for x
//	config/    YAML settings
//	logging/   slog handlers (tint text or JSON)
//	bench/     thread-scaling timings
//	cmd/relax  the command line (solve, bench, generate, config)
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {2, 3}})
//	res, err := solver.Solve(ctx, a, []float64{1, 2},
//		solver.WithMethod(solver.GaussSeidel),
//		solver.WithThreads(2),
//	)
//	// res.X ≈ [0.1 0.6]
//
// Both methods require a nonzero diagonal and converge for strictly
// diagonally dominant A. A run that does not reach the tolerance is not an
// error: the deepest fully computed iterate is returned with Converged=false.
package relax
