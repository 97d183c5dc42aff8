// SPDX-License-Identifier: MIT

package textio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relax/matrix"
)

// ValidateCoefficients requires a square a with no zero on the diagonal.
// A zero pivot is reported with its 1-based line.
func ValidateCoefficients(a matrix.Matrix) error {
	err := matrix.ValidateNonZeroDiagonal(a)
	var de *matrix.DiagonalError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &de):
		return lineErrorf("ValidateCoefficients", de.Row+1, matrix.ErrZeroDiagonal)
	default:
		return fmt.Errorf("ValidateCoefficients: %w", err)
	}
}

// ValidateRHS requires exactly n lines of one value each.
func ValidateRHS(n int, rows [][]float64) error {
	if len(rows) != n {
		return fmt.Errorf("ValidateRHS: %w: %d values for %d equations",
			matrix.ErrDimensionMismatch, len(rows), n)
	}
	for i, row := range rows {
		if len(row) != 1 {
			return lineErrorf("ValidateRHS", i+1,
				fmt.Errorf("%w: %d values, want 1", matrix.ErrDimensionMismatch, len(row)))
		}
	}

	return nil
}
