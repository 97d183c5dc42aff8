// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/diagonal checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// AI-Hints:
//  - Use ValidateSquareNonNil before any splitting (Jacobi / Gauss-Seidel).
//  - Use ValidateNonZeroDiagonal at the ingestion boundary; the solver core
//    deliberately does not trap a zero pivot.
//  - Use ValidateVecLen for any MatVec-like operations to avoid ad hoc length code.

package matrix

import "fmt"

// zeroPivot is the exact diagonal value rejected by ValidateNonZeroDiagonal.
const zeroPivot = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil composes ValidateNotNil → ValidateSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks a and b are non-nil and a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// DiagonalError reports the first row whose diagonal entry is zero.
// It matches ErrZeroDiagonal under errors.Is.
type DiagonalError struct {
	Row int // 0-based
}

func (e *DiagonalError) Error() string {
	return fmt.Sprintf("ValidateNonZeroDiagonal: row %d: %v", e.Row, ErrZeroDiagonal)
}

func (e *DiagonalError) Unwrap() error { return ErrZeroDiagonal }

// ValidateNonZeroDiagonal requires a square m with every diagonal entry ≠ 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - *DiagonalError (matches ErrZeroDiagonal) naming the first offending row.
//
// Complexity: O(n).
func ValidateNonZeroDiagonal(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return err
	}
	var (
		i   int
		v   float64
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateNonZeroDiagonal", err)
		}
		if v == zeroPivot {
			return &DiagonalError{Row: i}
		}
	}

	return nil
}
