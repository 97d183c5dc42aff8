// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, matrix-vector products, diagonal extraction and the
// strictly-triangular splits used by relaxation methods. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used by the operator package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - *Dense operands take a flat-slice fast path; other implementations use At/Set.
//   - Row dot-products are delegated to gonum floats.Dot on the fast path.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial sum value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opMatVec      = "MatVec"
	opDiagonal    = "Diagonal"
	opStrictLower = "StrictLower"
	opStrictUpper = "StrictUpper"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a×b into a freshly allocated Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate result Dense(a.Rows, b.Cols)
//     inheriting a's numeric policy when a is *Dense.
//   - Stage 2: Fast-path for two *Dense operands (i→k→j with zero-skip).
//     Otherwise, fallback At/Set with fixed i→j→k order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch), ErrNaNInf
//     from the fallback Set when the result violates a strict policy.
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - N·L and N·U (diagonal × triangular) hit the zero-skip on almost every k.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols, policyOf(a))
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one floats.Dot per row on the flat buffer.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i int
		for i = 0; i < d.r; i++ {
			y[i] = floats.Dot(d.data[i*d.c:(i+1)*d.c], x)
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Diagonal returns the main diagonal of a square matrix as a new slice.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n).
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n := m.Rows()
	d := make([]float64, n)
	var (
		i   int
		err error
	)
	for i = 0; i < n; i++ {
		if d[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf(opDiagonal, err)
		}
	}

	return d, nil
}

// StrictLower returns L with L[i,j] = m[i,j] for i > j and 0 elsewhere.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func StrictLower(m Matrix) (*Dense, error) {
	return triangle(m, opStrictLower, func(i, j int) bool { return i > j })
}

// StrictUpper returns U with U[i,j] = m[i,j] for i < j and 0 elsewhere.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func StrictUpper(m Matrix) (*Dense, error) {
	return triangle(m, opStrictUpper, func(i, j int) bool { return i < j })
}

// triangle copies the cells selected by keep into a new square Dense.
func triangle(m Matrix, tag string, keep func(i, j int) bool) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	n := m.Rows()
	out, err := NewDense(n, n, policyOf(m))
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !keep(i, j) {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i*n+j] = v
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN equals NaN here (bitwise-stable operators from a singular diagonal compare
// equal to themselves); +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1).
//
// AI-Hints:
//   - AllClose(a, b, 0, 0) is an exact comparison; use it for idempotence tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeScalar(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeScalar is the scalar relation behind AllClose.
func closeScalar(a, b, rtol, atol float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	default:
		return math.Abs(a-b) <= atol+rtol*math.Abs(b)
	}
}

// policyOf carries the numeric policy of m into derived results.
// Non-Dense operands get the package default.
func policyOf(m Matrix) Option {
	if d, ok := m.(*Dense); ok && !d.validateNaNInf {
		return WithNoValidateNaNInf()
	}

	return WithValidateNaNInf()
}
