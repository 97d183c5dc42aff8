// SPDX-License-Identifier: MIT
// Package: relax/builder
//
// impl_dominant.go - implementation of the DiagonallyDominant(n) constructor.
//
// Canonical model:
//   - Off-diagonal A[i][j] drawn from the value distribution (default U[-1,1)).
//   - A[i][i] = d · Σ_{j≠i} |A[i][j]|, or emptyRowDiagonal when that sum is 0.
//
// Contract:
//   - n ≥ MinSystemSize (else ErrTooSmall).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - X = cfg.solution if set (len n, else ErrSolutionLength), otherwise drawn
//     from the same distribution after A.
//
// Determinism:
//   - Fixed draw order: row i asc, column j asc (skipping the diagonal), then X.
//
// Complexity:
//   - Time: O(n²) draws + O(n²) for b. Space: O(n²).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/relax/matrix"
)

const (
	defaultDominantMin = -1.0
	defaultDominantMax = 1.0
)

func buildDiagonallyDominant(n int, cfg builderConfig) (*System, error) {
	if err := validateMin(MethodDiagonallyDominant, n, MinSystemSize); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", MethodDiagonallyDominant, ErrNeedRandSource)
	}
	if err := validateSolution(MethodDiagonallyDominant, cfg.solution, n); err != nil {
		return nil, err
	}

	draw := cfg.resolveValueFn(UniformValueFn(defaultDominantMin, defaultDominantMax))
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(MethodDiagonallyDominant, err, "NewDense(%d)", n)
	}
	var (
		i, j int
		v    float64
		mass float64 // Σ|off-diagonal| of the current row
	)
	for i = 0; i < n; i++ {
		mass = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = draw(cfg.rng)
			mass += math.Abs(v)
			if err = a.Set(i, j, v); err != nil {
				return nil, builderErrorf(MethodDiagonallyDominant, err, "Set(%d,%d)", i, j)
			}
		}
		v = cfg.dominance * mass
		if v == 0 {
			v = emptyRowDiagonal
		}
		if err = a.Set(i, i, v); err != nil {
			return nil, builderErrorf(MethodDiagonallyDominant, err, "Set(%d,%d)", i, i)
		}
	}

	x := cfg.solution
	if x == nil {
		x = make([]float64, n)
		for i = range x {
			x[i] = draw(cfg.rng)
		}
	}

	return complete(MethodDiagonallyDominant, a, x)
}
