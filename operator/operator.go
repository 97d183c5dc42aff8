// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/relax/matrix"
)

const (
	opJacobi      = "NewJacobi"
	opGaussSeidel = "NewGaussSeidel"
)

// one is the numerator of the diagonal inverse.
const one = 1.0

// operatorErrorf wraps err with a constructor tag.
func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Jacobi holds the Jacobi splitting of A.
// Both fields are read-only after construction.
type Jacobi struct {
	N []float64     // N[i] = 1/A[i][i]
	M *matrix.Dense // M[i][j] = -A[i][j]*N[i], zero diagonal
}

// NewJacobi decomposes a into the Jacobi operators.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(a).
//   - Stage 2: N[i] = 1/A[i][i] (division by zero yields ±Inf, never an error).
//   - Stage 3: fill M row by row; M is built with WithNoValidateNaNInf so a
//     singular diagonal surfaces as non-finite entries.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewJacobi(a matrix.Matrix) (*Jacobi, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, operatorErrorf(opJacobi, err)
	}
	diag, err := matrix.Diagonal(a)
	if err != nil {
		return nil, operatorErrorf(opJacobi, err)
	}
	n := len(diag)
	inv := make([]float64, n)
	for i, d := range diag {
		inv[i] = one / d
	}

	m, err := matrix.NewDense(n, n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, operatorErrorf(opJacobi, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays zero
			}
			if v, err = a.At(i, j); err != nil {
				return nil, operatorErrorf(opJacobi, err)
			}
			if err = m.Set(i, j, -v*inv[i]); err != nil {
				return nil, operatorErrorf(opJacobi, err)
			}
		}
	}

	return &Jacobi{N: inv, M: m}, nil
}

// Size returns n.
func (op *Jacobi) Size() int { return len(op.N) }

// Update computes x[i] = N[i]*bi + Σ_j M[i][j]*prev[j].
// prev must have length n. Safe for concurrent use.
func (op *Jacobi) Update(i int, bi float64, prev []float64) float64 {
	return op.N[i]*bi + floats.Dot(op.M.RawRow(i), prev)
}

// GaussSeidel holds the Gauss-Seidel splitting of A.
type GaussSeidel struct {
	N  *matrix.Dense // diag(1/A[i][i])
	L  *matrix.Dense // strictly lower part of A
	U  *matrix.Dense // strictly upper part of A
	NL *matrix.Dense // N·L
	NU *matrix.Dense // N·U

	inv []float64 // diagonal of N, cached for the kernel
}

// NewGaussSeidel decomposes a into N, L, U, N·L and N·U.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(a).
//   - Stage 2: inverse diagonal → N via matrix.NewDiagonal (policy off).
//   - Stage 3: L, U via matrix.StrictLower / matrix.StrictUpper.
//   - Stage 4: NL = N·L and NU = N·U via matrix.Mul; the products inherit
//     N's relaxed numeric policy.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(n³) for the two products (the zero-skip in Mul makes it O(n²)
//     in practice since N is diagonal), Space O(n²).
func NewGaussSeidel(a matrix.Matrix) (*GaussSeidel, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, operatorErrorf(opGaussSeidel, err)
	}
	diag, err := matrix.Diagonal(a)
	if err != nil {
		return nil, operatorErrorf(opGaussSeidel, err)
	}
	inv := make([]float64, len(diag))
	for i, d := range diag {
		inv[i] = one / d
	}

	gs := &GaussSeidel{inv: inv}
	if gs.N, err = matrix.NewDiagonal(inv, matrix.WithNoValidateNaNInf()); err != nil {
		return nil, operatorErrorf(opGaussSeidel, err)
	}
	if gs.L, err = matrix.StrictLower(a); err != nil {
		return nil, operatorErrorf(opGaussSeidel, err)
	}
	if gs.U, err = matrix.StrictUpper(a); err != nil {
		return nil, operatorErrorf(opGaussSeidel, err)
	}
	if gs.NL, err = mulDense(gs.N, gs.L); err != nil {
		return nil, operatorErrorf(opGaussSeidel, err)
	}
	if gs.NU, err = mulDense(gs.N, gs.U); err != nil {
		return nil, operatorErrorf(opGaussSeidel, err)
	}

	return gs, nil
}

// Size returns n.
func (op *GaussSeidel) Size() int { return len(op.inv) }

// Update computes
//
//	x[i] = N[i][i]*bi - Σ_{j<i} NL[i][j]*cur[j] - Σ_{j>i} NU[i][j]*prev[j]
//
// Only cur[0:i) and prev[i+1:n) are read; the other cells may hold anything.
// Safe for concurrent use.
func (op *GaussSeidel) Update(i int, bi float64, cur, prev []float64) float64 {
	nl := op.NL.RawRow(i)
	nu := op.NU.RawRow(i)
	n := len(nu)

	return op.inv[i]*bi - floats.Dot(nl[:i], cur[:i]) - floats.Dot(nu[i+1:n], prev[i+1:n])
}

// mulDense narrows matrix.Mul's result; both operands are *Dense so the
// product always is too.
func mulDense(a, b *matrix.Dense) (*matrix.Dense, error) {
	p, err := matrix.Mul(a, b)
	if err != nil {
		return nil, err
	}
	d, ok := p.(*matrix.Dense)
	if !ok {
		return nil, fmt.Errorf("Mul returned %T: %w", p, matrix.ErrDimensionMismatch)
	}

	return d, nil
}
