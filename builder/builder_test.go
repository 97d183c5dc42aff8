// SPDX-License-Identifier: MIT

// Package builder_test contains functional tests for the system constructors,
// verifying shape, dominance, determinism and the exact-solution contract.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relax/builder"
	"github.com/katalvlaran/relax/matrix"
)

// assertPanics fails the test if the provided function does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// requireStrictlyDominant checks |A[i][i]| > Σ_{j≠i} |A[i][j]| for every row.
func requireStrictlyDominant(t *testing.T, a *matrix.Dense) {
	t.Helper()
	n := a.Rows()
	for i := 0; i < n; i++ {
		row := a.RawRow(i)
		var off float64
		for j, v := range row {
			if j != i {
				off += math.Abs(v)
			}
		}
		require.Greater(t, math.Abs(row[i]), off, "row %d", i)
	}
}

// requireConsistent checks B == A·X.
func requireConsistent(t *testing.T, s *builder.System) {
	t.Helper()
	ax, err := matrix.MatVec(s.A, s.X)
	require.NoError(t, err)
	require.InDeltaSlice(t, s.B, ax, 1e-12)
}

func TestTridiagonal(t *testing.T) {
	t.Parallel()

	s, err := builder.Tridiagonal(4)
	require.NoError(t, err)
	require.Equal(t, 4, s.Size())
	rows, err := matrix.ToRows(s.A)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{4, -1, 0, 0},
		{-1, 4, -1, 0},
		{0, -1, 4, -1},
		{0, 0, -1, 4},
	}, rows)
	require.Equal(t, []float64{1, 1, 1, 1}, s.X)
	require.Equal(t, []float64{3, 2, 2, 3}, s.B)
	requireStrictlyDominant(t, s.A)

	s, err = builder.Tridiagonal(3, builder.WithDominance(3), builder.WithSolution([]float64{1, 2, 3}))
	require.NoError(t, err)
	require.Equal(t, 6.0, s.A.RawRow(1)[1])
	requireConsistent(t, s)
}

func TestTridiagonal_Errors(t *testing.T) {
	t.Parallel()
	_, err := builder.Tridiagonal(1)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.Tridiagonal(3, builder.WithSolution([]float64{1}))
	require.ErrorIs(t, err, builder.ErrSolutionLength)
}

func TestDiagonallyDominant(t *testing.T) {
	t.Parallel()

	_, err := builder.DiagonallyDominant(5)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.DiagonallyDominant(0, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooSmall)

	s1, err := builder.DiagonallyDominant(8, builder.WithSeed(42))
	require.NoError(t, err)
	s2, err := builder.DiagonallyDominant(8, builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	same, err := matrix.AllClose(s1.A, s2.A, 0, 0)
	require.NoError(t, err)
	require.True(t, same, "same seed must give the same system")
	require.Equal(t, s1.X, s2.X)

	requireStrictlyDominant(t, s1.A)
	requireConsistent(t, s1)
	require.NoError(t, matrix.ValidateNonZeroDiagonal(s1.A))

	one, err := builder.DiagonallyDominant(1, builder.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, 1.0, one.A.RawRow(0)[0], "a row without off-diagonal mass gets a unit pivot")
}

func TestDiagonallyDominant_ValueOptions(t *testing.T) {
	t.Parallel()
	s, err := builder.DiagonallyDominant(6,
		builder.WithSeed(7),
		builder.WithUniformValues(2, 3),
		builder.WithDominance(1.5),
	)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		for j, v := range s.A.RawRow(i) {
			if i != j {
				require.GreaterOrEqual(t, v, 2.0)
				require.Less(t, v, 3.0)
			}
		}
	}
	requireStrictlyDominant(t, s.A)

	s, err = builder.DiagonallyDominant(4, builder.WithSeed(7), builder.WithNormalValues(0, 0.5))
	require.NoError(t, err)
	requireConsistent(t, s)
}

func TestFromSolution(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewDenseFromRows([][]float64{{4, 1}, {2, 3}})
	require.NoError(t, err)

	s, err := builder.FromSolution(a, []float64{0.1, 0.6})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2}, s.B, 1e-15)
	require.NoError(t, a.Set(0, 0, 99))
	require.Equal(t, 4.0, s.A.RawRow(0)[0], "A must be copied")

	_, err = builder.FromSolution(a, []float64{1})
	require.ErrorIs(t, err, builder.ErrSolutionLength)
	_, err = builder.FromSolution(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	for name, fn := range map[string]func(){
		"WithRand(nil)":         func() { builder.WithRand(nil) },
		"WithValueFn(nil)":      func() { builder.WithValueFn(nil) },
		"WithDominance(1)":      func() { builder.WithDominance(1) },
		"WithDominance(NaN)":    func() { builder.WithDominance(math.NaN()) },
		"UniformValueFn(3,2)":   func() { builder.UniformValueFn(3, 2) },
		"NormalValueFn(0,-1)":   func() { builder.NormalValueFn(0, -1) },
		"ConstantValueFn(+Inf)": func() { builder.ConstantValueFn(math.Inf(1)) },
	} {
		assertPanics(t, fn, name)
	}
}

func TestValueFns(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))

	require.Equal(t, builder.DefaultValue, builder.DefaultValueFn(rng))
	require.Equal(t, -2.5, builder.ConstantValueFn(-2.5)(rng))
	require.Equal(t, builder.DefaultValue, builder.UniformValueFn(-1, 1)(nil))
	require.Equal(t, 5.0, builder.UniformValueFn(5, 5)(rng))
	require.Equal(t, builder.DefaultValue, builder.NormalValueFn(0, 1)(nil))
	require.Equal(t, 3.0, builder.NormalValueFn(3, 0)(rng))

	u := builder.UniformValueFn(-1, 1)
	for i := 0; i < 100; i++ {
		v := u(rng)
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}
}
