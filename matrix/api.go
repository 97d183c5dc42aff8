// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewDiagonal for inverse-diagonal operators; ToRows for text export.

package matrix

// NewDiagonal returns diag(d) as an n×n *Dense with n = len(d).
// The numeric policy applies to the diagonal values.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewDiagonal(d []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(len(d), len(d), opts...)
	if err != nil {
		return nil, err
	}
	for i, v := range d { // fixed i order guarantees reproducibility
		if err = m.Set(i, i, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ToRows copies m into a fresh [][]float64 (row-major).
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
