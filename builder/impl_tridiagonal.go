// SPDX-License-Identifier: MIT
// Package: relax/builder
//
// impl_tridiagonal.go - implementation of the Tridiagonal(n) constructor.
//
// Canonical model:
//   - A[i][i] = 2·d, A[i][i±1] = -1, zero elsewhere.
//   - Row sums of |off-diagonal| are ≤ 2 < 2·d, so A is strictly dominant.
//
// Contract:
//   - n ≥ MinTridiagonalSize (else ErrTooSmall).
//   - X = cfg.solution if set (len n, else ErrSolutionLength), otherwise all DefaultValue.
//   - No RNG involved; the output depends only on n and options.
//
// Complexity:
//   - Time: O(n²) for the dense allocation + O(n) band writes + O(n²) for b.
//   - Space: O(n²).

package builder

import "github.com/katalvlaran/relax/matrix"

func buildTridiagonal(n int, cfg builderConfig) (*System, error) {
	if err := validateMin(MethodTridiagonal, n, MinTridiagonalSize); err != nil {
		return nil, err
	}
	if err := validateSolution(MethodTridiagonal, cfg.solution, n); err != nil {
		return nil, err
	}

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(MethodTridiagonal, err, "NewDense(%d)", n)
	}
	diag := 2 * cfg.dominance
	for i := 0; i < n; i++ {
		if err = a.Set(i, i, diag); err != nil {
			return nil, builderErrorf(MethodTridiagonal, err, "Set(%d,%d)", i, i)
		}
		if i > 0 {
			if err = a.Set(i, i-1, tridiagonalOff); err != nil {
				return nil, builderErrorf(MethodTridiagonal, err, "Set(%d,%d)", i, i-1)
			}
		}
		if i+1 < n {
			if err = a.Set(i, i+1, tridiagonalOff); err != nil {
				return nil, builderErrorf(MethodTridiagonal, err, "Set(%d,%d)", i, i+1)
			}
		}
	}

	x := cfg.solution
	if x == nil {
		x = make([]float64, n)
		for i := range x {
			x[i] = DefaultValue
		}
	}

	return complete(MethodTridiagonal, a, x)
}
