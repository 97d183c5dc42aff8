// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra surface used by the
// relaxation solvers.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over two-dimensional float64 data,
//     and Dense, its flat row-major implementation.
//   - Central validators (square, non-nil, vector length, non-zero diagonal).
//   - Kernels: Mul, MatVec, Diagonal, StrictLower, StrictUpper, AllClose.
//   - A numeric policy (finite-only by default) configurable per matrix.
//
// Dense storage is best for the small and medium systems these solvers target;
// every kernel takes a flat-slice fast path when handed *Dense operands.
//
// See the examples in this package and in solver for usage patterns.
package matrix
