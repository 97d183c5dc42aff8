// SPDX-License-Identifier: MIT
package solver_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/relax/builder"
	"github.com/katalvlaran/relax/history"
	"github.com/katalvlaran/relax/matrix"
	"github.com/katalvlaran/relax/solver"
)

// solveTimeout bounds every solve in this file so a broken dependency
// protocol fails the test instead of hanging it.
const solveTimeout = 10 * time.Second

// SolveSuite exercises Solve end to end on small systems.
type SolveSuite struct {
	suite.Suite
	a *matrix.Dense
	b []float64
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func (s *SolveSuite) SetupTest() {
	a, err := matrix.NewDenseFromRows([][]float64{{4, 1}, {2, 3}})
	s.Require().NoError(err)
	s.a = a
	s.b = []float64{1, 2}
}

func (s *SolveSuite) solve(opts ...solver.Option) *solver.Result {
	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()
	res, err := solver.Solve(ctx, s.a, s.b, opts...)
	s.Require().NoError(err)
	s.Require().NotNil(res)

	return res
}

// TestJacobiTwoByTwo solves 4x+y=1, 2x+3y=2 (x = 0.1, y = 0.6) on one thread.
func (s *SolveSuite) TestJacobiTwoByTwo() {
	res := s.solve(solver.WithMaxIterations(50), solver.WithThreads(1))

	s.True(res.Converged)
	s.Equal(res.ConvergedAt, res.Iteration)
	s.Equal(8, res.Iteration)
	s.InDelta(0.1, res.X[0], 2e-3)
	s.InDelta(0.6, res.X[1], 2e-3)
	s.Less(res.Residual, solver.DefaultTolerance)
	s.Len(res.Residuals, res.Iteration)
	s.Equal(uint64(res.Iteration), res.Generations)
	s.Equal(solver.Jacobi, res.Method)
	s.Equal(history.KindLocked, res.History)
	_, err := uuid.Parse(res.RunID)
	s.NoError(err)
}

// TestGaussSeidelTwoThreads checks the same fixed point is reached in fewer
// iterations with one row per worker.
func (s *SolveSuite) TestGaussSeidelTwoThreads() {
	const tol = 1e-10
	jac := s.solve(solver.WithMaxIterations(50), solver.WithTolerance(tol))
	gs := s.solve(
		solver.WithMethod(solver.GaussSeidel),
		solver.WithThreads(2),
		solver.WithMaxIterations(50),
		solver.WithTolerance(tol),
	)

	s.True(jac.Converged)
	s.True(gs.Converged)
	s.InDeltaSlice(jac.X, gs.X, 1e-4)
	s.InDeltaSlice([]float64{0.1, 0.6}, gs.X, 1e-5)
	s.Less(gs.ConvergedAt, jac.ConvergedAt)
	s.Equal(history.KindAtomic, gs.History)
	s.Zero(gs.Generations)
}

// TestGaussSeidelDefaultTolerance pins the iteration count of the 2×2 case.
func (s *SolveSuite) TestGaussSeidelDefaultTolerance() {
	res := s.solve(solver.WithMethod(solver.GaussSeidel), solver.WithThreads(2), solver.WithMaxIterations(50))
	s.True(res.Converged)
	s.Equal(4, res.Iteration)
	s.InDelta(0.1, res.X[0], 2e-3)
	s.InDelta(0.6, res.X[1], 2e-3)
}

// TestMoreThreadsThanRows runs 4 workers on 2 rows for both methods.
func (s *SolveSuite) TestMoreThreadsThanRows() {
	for _, m := range []solver.Method{solver.Jacobi, solver.GaussSeidel} {
		res := s.solve(solver.WithMethod(m), solver.WithThreads(solver.MaxThreads))
		s.True(res.Converged, m.String())
		s.Equal(solver.MaxThreads, res.Threads)
	}
}

// TestMaxIterationsOne returns the initial guess untouched.
func (s *SolveSuite) TestMaxIterationsOne() {
	res := s.solve(solver.WithMaxIterations(1))
	s.Equal(0, res.Iteration)
	s.False(res.Converged)
	s.Equal([]float64{0, 0}, res.X)
	s.Empty(res.Residuals)
	s.InDelta(5.0, res.Residual, 1e-15) // 1² + 2²

	res = s.solve(solver.WithMaxIterations(1), solver.WithInitialGuess([]float64{0.5, 0.5}))
	s.Equal([]float64{0.5, 0.5}, res.X)
}

// TestInitialGuessAtSolution converges on the first iteration.
func (s *SolveSuite) TestInitialGuessAtSolution() {
	for _, m := range []solver.Method{solver.Jacobi, solver.GaussSeidel} {
		res := s.solve(solver.WithMethod(m), solver.WithInitialGuess([]float64{0.1, 0.6}))
		s.True(res.Converged)
		s.Equal(1, res.ConvergedAt, m.String())
	}
}

// TestExhaustedIterations keeps the deepest row when the tolerance is not met.
func (s *SolveSuite) TestExhaustedIterations() {
	res := s.solve(solver.WithMaxIterations(3), solver.WithTolerance(1e-300))
	s.False(res.Converged)
	s.Equal(0, res.ConvergedAt)
	s.Equal(2, res.Iteration)
	s.Len(res.Residuals, 2)
	s.Less(res.Residuals[1], res.Residuals[0])
}

// TestHistoryOverride swaps the history implementation for both methods.
func (s *SolveSuite) TestHistoryOverride() {
	jl := s.solve(solver.WithHistory(history.KindAtomic))
	s.Equal(history.KindAtomic, jl.History)
	gl := s.solve(solver.WithMethod(solver.GaussSeidel), solver.WithHistory(history.KindLocked), solver.WithThreads(2))
	s.Equal(history.KindLocked, gl.History)
	s.True(jl.Converged)
	s.True(gl.Converged)
}

func TestSolve_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	sq, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	wide, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	var typedNil *matrix.Dense

	tests := []struct {
		name string
		a    matrix.Matrix
		b    []float64
		opts []solver.Option
		want error
	}{
		{"nil matrix", nil, []float64{1, 2}, nil, solver.ErrNilSystem},
		{"typed nil matrix", typedNil, []float64{1, 2}, nil, solver.ErrNilSystem},
		{"nil rhs", sq, nil, nil, solver.ErrNilSystem},
		{"non-square", wide, []float64{1, 2}, nil, matrix.ErrNonSquare},
		{"rhs length", sq, []float64{1}, nil, matrix.ErrDimensionMismatch},
		{"guess length", sq, []float64{1, 2}, []solver.Option{solver.WithInitialGuess([]float64{1})}, matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, err := solver.Solve(ctx, tc.a, tc.b, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, res)
		})
	}
}

// TestSolve_SingularDiagonal checks a zero pivot yields an unconverged run
// with non-finite values rather than a panic or a hang.
func TestSolve_SingularDiagonal(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 2}})
	require.NoError(t, err)

	for _, m := range []solver.Method{solver.Jacobi, solver.GaussSeidel} {
		ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
		res, err := solver.Solve(ctx, a, []float64{1, 1},
			solver.WithMethod(m), solver.WithThreads(2), solver.WithMaxIterations(10))
		cancel()
		require.NoError(t, err, m.String())
		require.False(t, res.Converged)
		require.Equal(t, 9, res.Iteration, "non-finite cells still count as resolved")
		require.True(t, math.IsNaN(res.Residual))
		for _, r := range res.Residuals {
			require.True(t, math.IsNaN(r))
		}
	}
}

// TestSolve_Canceled returns the initial guess and the context error.
func TestSolve_Canceled(t *testing.T) {
	sys, err := builder.Tridiagonal(6)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, m := range []solver.Method{solver.Jacobi, solver.GaussSeidel} {
		res, err := solver.Solve(ctx, sys.A, sys.B, solver.WithMethod(m), solver.WithThreads(3))
		require.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, res)
		require.Equal(t, 0, res.Iteration)
		require.False(t, res.Converged)
	}
}

// TestSolve_MatchesDirectSolve compares both methods against gonum's LU solve
// on a random strictly dominant system, for every worker count.
func TestSolve_MatchesDirectSolve(t *testing.T) {
	const n = 12
	sys, err := builder.DiagonallyDominant(n, builder.WithSeed(2024))
	require.NoError(t, err)

	rows, err := matrix.ToRows(sys.A)
	require.NoError(t, err)
	flat := make([]float64, 0, n*n)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	var want mat.VecDense
	require.NoError(t, want.SolveVec(mat.NewDense(n, n, flat), mat.NewVecDense(n, append([]float64(nil), sys.B...))))

	for _, m := range []solver.Method{solver.Jacobi, solver.GaussSeidel} {
		for threads := 1; threads <= solver.MaxThreads; threads++ {
			ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
			res, err := solver.Solve(ctx, sys.A, sys.B,
				solver.WithMethod(m),
				solver.WithThreads(threads),
				solver.WithMaxIterations(500),
				solver.WithTolerance(1e-20),
			)
			cancel()
			require.NoError(t, err)
			require.True(t, res.Converged, "%s/%d", m, threads)
			for i := 0; i < n; i++ {
				require.InDelta(t, want.AtVec(i), res.X[i], 1e-8, "%s/%d x[%d]", m, threads, i)
				require.InDelta(t, sys.X[i], res.X[i], 1e-8)
			}
		}
	}
}

// TestSolve_ThreadCountInvariant requires 1 and 4 workers to produce the same
// iterate: the dependency rules make the arithmetic order independent of T.
func TestSolve_ThreadCountInvariant(t *testing.T) {
	sys, err := builder.Tridiagonal(9, builder.WithSolution([]float64{1, -2, 3, -4, 5, -6, 7, -8, 9}))
	require.NoError(t, err)

	for _, m := range []solver.Method{solver.Jacobi, solver.GaussSeidel} {
		var ref *solver.Result
		for _, threads := range []int{1, 4} {
			ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
			res, err := solver.Solve(ctx, sys.A, sys.B, solver.WithMethod(m), solver.WithThreads(threads))
			cancel()
			require.NoError(t, err)
			if ref == nil {
				ref = res
				continue
			}
			require.Equal(t, ref.Iteration, res.Iteration, m.String())
			require.InDeltaSlice(t, ref.X, res.X, 1e-12, m.String())
			require.InDeltaSlice(t, ref.Residuals, res.Residuals, 1e-12)
		}
	}
}
