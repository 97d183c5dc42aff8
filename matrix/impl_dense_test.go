// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relax/matrix"
)

func TestNewDense_DefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j), "[%d,%d]", i, j)
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	t.Run("copies values", func(t *testing.T) {
		src := [][]float64{{1, 2}, {3, 4}}
		m := MustRows(t, src)
		src[0][0] = 99 // must not alias
		require.Equal(t, 1.0, MustAt(t, m, 0, 0))
		require.Equal(t, 4.0, MustAt(t, m, 1, 1))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows(nil)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		_, err = matrix.NewDenseFromRows([][]float64{{}})
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrRaggedRows)
	})

	t.Run("nan rejected by default", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	})

	t.Run("inf allowed when policy off", func(t *testing.T) {
		m, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
		require.NoError(t, err)
		require.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))
	})
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange)
	}

	MustSet(t, m, 1, 2, 7.5)
	require.Equal(t, 7.5, MustAt(t, m, 1, 2))

	err := m.Set(0, 0, math.Inf(-1))
	require.True(t, errors.Is(err, matrix.ErrNaNInf))
}

func TestDense_RowAndRawRow(t *testing.T) {
	t.Parallel()
	m := sample3(t)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 5, -3}, row)
	row[0] = 42
	require.Equal(t, 1.0, MustAt(t, m, 1, 0), "Row must return a copy")

	raw := m.RawRow(2)
	require.Equal(t, []float64{0, 2, 6}, raw)
	require.Equal(t, 3, cap(raw), "RawRow must not expose the next row via append")

	require.Nil(t, m.RawRow(3))
	require.Nil(t, m.RawRow(-1))
	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()
	m := sample3(t)
	c := m.Clone()
	MustSet(t, c, 0, 0, -100)
	require.Equal(t, 4.0, MustAt(t, m, 0, 0))
	require.Equal(t, -100.0, MustAt(t, c, 0, 0))
}

func TestDense_String(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

func TestOptions_NaNInfPolicy(t *testing.T) {
	t.Parallel()
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	// Last writer wins.
	lax, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, lax.Set(0, 0, math.Inf(-1)))

	again, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, again.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}
