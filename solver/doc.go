// SPDX-License-Identifier: MIT

// Package solver runs parallel Jacobi and Gauss-Seidel relaxation on a square
// linear system A·x = b.
//
// A solve proceeds in fixed stages:
//
//  1. Decomposition: operator.NewJacobi or operator.NewGaussSeidel, once.
//  2. History: a Depth×n table (history.History) with row 0 = initial guess
//     and every other cell unknown.
//  3. Workers: T goroutines (errgroup). Worker t owns rows t, t+T, t+2T, ...
//     (see Assignment). Workers owning no rows return at once.
//  4. Synchronization:
//     – Jacobi: every worker reads one snapshot of H[k-1], writes its rows of
//     H[k] and meets the others at a cyclic Barrier. The last arriver runs the
//     convergence check before anyone is released.
//     – Gauss-Seidel: before row i of iteration k a worker spins until
//     H[k][0..i) and H[k-1][i+1..n) are resolved. No blocking primitive is
//     involved, so rows of iteration k+1 overlap with the tail of iteration k.
//     The owner of row n-1 runs the convergence check.
//  5. Convergence: residual = Σ (A·x - b)². Below the tolerance the shared stop
//     flag is raised and workers leave at their next check.
//  6. Selection: the deepest fully resolved history row is the answer; H[0]
//     when nothing resolved.
//
// Defaults:
//
//	Method         Jacobi
//	Threads        1       (1..MaxThreads)
//	MaxIterations  100     (history depth, row 0 included)
//	Tolerance      1e-5
//	History        Locked for Jacobi, Atomic for Gauss-Seidel
//
// Errors:
//
//	ErrNilSystem             - nil matrix or nil right-hand side.
//	matrix.ErrNonSquare      - A is not square.
//	matrix.ErrDimensionMismatch - len(b) != n.
//	ErrUnresolvedDependency  - a worker found a dependency unresolved after
//	                           it was reported resolved (internal breach).
//	context errors           - ctx ended; the Result is still returned.
//
// A zero diagonal is not an error here. It turns into non-finite operator
// entries, the residual is NaN, and the run ends unconverged after
// MaxIterations. Loaders reject such systems before they reach the solver.
//
// Observability: every Solve opens an OpenTelemetry span "solver.Solve",
// records Prometheus metrics under the relax_solver_* namespace and logs
// through the *slog.Logger given by WithLogger (discarded by default).
package solver
