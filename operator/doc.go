// SPDX-License-Identifier: MIT

// Package operator splits a square coefficient matrix into the fixed-point
// operators consumed by the relaxation workers.
//
// Jacobi form (x = N·b + M·x):
//
//	N[i]    = 1 / A[i][i]
//	M[i][j] = -A[i][j] · N[i]   (i ≠ j), 0 on the diagonal
//
// Gauss-Seidel form (A = D + L + U, N = D⁻¹):
//
//	x[i] = N[i][i]·b[i] - Σ_{j<i} (N·L)[i][j]·x_new[j] - Σ_{j>i} (N·U)[i][j]·x_old[j]
//
// Decomposition runs once per solve and is pure: the same A always yields
// bitwise-identical operators. Only structural problems (nil, non-square)
// are reported as errors. A zero on the diagonal is NOT an error here; it
// produces ±Inf/NaN operator entries and the solve simply does not converge.
// Callers that want to reject such systems up front use
// matrix.ValidateNonZeroDiagonal (the textio loader does).
//
// The Update methods are the per-row kernels. They read operator rows
// through matrix.Dense.RawRow and reduce with gonum floats.Dot, so they
// allocate nothing and are safe for concurrent use by many workers.
package operator
