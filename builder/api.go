// SPDX-License-Identifier: MIT
// Package: relax/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Every constructor returns a *System: A, b and the exact solution X.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical systems.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Use WithSeed(...) to freeze DiagonallyDominant.
//   - Pair WithSolution(...) with any constructor to choose the exact answer.

package builder

import (
	"github.com/katalvlaran/relax/matrix"
)

// System is a square linear system A·X = B with its known exact solution.
type System struct {
	A *matrix.Dense // n×n coefficients
	B []float64     // right-hand side, B = A·X
	X []float64     // exact solution
}

// Size returns n.
func (s *System) Size() int { return len(s.X) }

// Tridiagonal returns the n×n band system [-1, 2·d, -1] with d the dominance
// factor. X defaults to all DefaultValue; WithSolution overrides it.
// Errors: ErrTooSmall (n < MinTridiagonalSize), ErrSolutionLength.
// Complexity: O(n²) (dense storage).
func Tridiagonal(n int, opts ...BuilderOption) (*System, error) {
	return buildTridiagonal(n, newBuilderConfig(opts...))
}

// DiagonallyDominant returns a dense random n×n system whose diagonal is
// d·Σ|off-diagonal| per row. Requires an RNG (WithSeed/WithRand).
// Off-diagonal entries and the default X are drawn from the configured
// ValueFn (default U[-1,1)).
// Errors: ErrTooSmall (n < MinSystemSize), ErrNeedRandSource, ErrSolutionLength.
// Complexity: O(n²).
func DiagonallyDominant(n int, opts ...BuilderOption) (*System, error) {
	return buildDiagonallyDominant(n, newBuilderConfig(opts...))
}

// FromSolution completes a system for a caller-supplied A and x by computing
// b = A·x. A is cloned when it is a *Dense, or copied otherwise.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrSolutionLength.
// Complexity: O(n²).
func FromSolution(a matrix.Matrix, x []float64) (*System, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, builderErrorf(MethodFromSolution, err, "A")
	}
	if x == nil || len(x) != a.Rows() {
		return nil, builderErrorf(MethodFromSolution, ErrSolutionLength, "len(x)=%d, n=%d", len(x), a.Rows())
	}
	rows, err := matrix.ToRows(a)
	if err != nil {
		return nil, builderErrorf(MethodFromSolution, err, "copy A")
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, builderErrorf(MethodFromSolution, err, "copy A")
	}

	return complete(MethodFromSolution, d, append([]float64(nil), x...))
}

// complete computes B = A·X and packs the System.
func complete(method string, a *matrix.Dense, x []float64) (*System, error) {
	b, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, builderErrorf(method, err, "A·x")
	}

	return &System{A: a, B: b, X: x}, nil
}
