// SPDX-License-Identifier: MIT

package solver

import (
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/relax/matrix"
)

const opResidual = "Residual"

// Residual returns Σ_i (Σ_j A[i][j]·x[j] - b[i])².
// A NaN anywhere in x or A yields NaN.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n²).
func Residual(a matrix.Matrix, x, b []float64) (float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, solverErrorf(opResidual, err)
	}
	if err = matrix.ValidateVecLen(b, len(ax)); err != nil {
		return 0, solverErrorf(opResidual, err)
	}
	floats.Sub(ax, b)

	return floats.Dot(ax, ax), nil
}

// Monitor decides convergence once per fully resolved iteration and keeps
// the residual trace.
type Monitor struct {
	a   matrix.Matrix
	b   []float64
	tol float64

	mu          sync.Mutex // guards the fields below
	residuals   []float64  // residuals[k-1] belongs to iteration k
	convergedAt int        // 0 while not converged
}

// NewMonitor binds a monitor to the system and tolerance.
func NewMonitor(a matrix.Matrix, b []float64, tol float64) *Monitor {
	return &Monitor{a: a, b: b, tol: tol}
}

// Observe records the residual of x, the fully resolved row of iteration k,
// and reports it together with whether it is below the tolerance.
// NaN never converges. The first converged iteration is kept.
func (m *Monitor) Observe(k int, x []float64) (float64, bool, error) {
	r, err := Residual(m.a, x, m.b)
	if err != nil {
		return 0, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.residuals = append(m.residuals, r)
	converged := r < m.tol
	if converged && m.convergedAt == 0 {
		m.convergedAt = k
	}

	return r, converged, nil
}

// Residuals returns a copy of the per-iteration residual trace.
func (m *Monitor) Residuals() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]float64(nil), m.residuals...)
}

// ConvergedAt returns the first iteration whose residual met the tolerance.
func (m *Monitor) ConvergedAt() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.convergedAt, m.convergedAt > 0
}
