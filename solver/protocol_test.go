// SPDX-License-Identifier: MIT
package solver_test

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relax/history"
	"github.com/katalvlaran/relax/matrix"
	"github.com/katalvlaran/relax/solver"
)

func TestNewAssignment(t *testing.T) {
	tests := []struct {
		id, threads, n int
		want           []int
	}{
		{0, 1, 3, []int{0, 1, 2}},
		{1, 3, 7, []int{1, 4}},
		{2, 3, 7, []int{2, 5}},
		{0, 3, 7, []int{0, 3, 6}},
		{3, 4, 2, nil},
		{5, 4, 9, nil},
	}
	for _, tc := range tests {
		a := solver.NewAssignment(tc.id, tc.threads, tc.n)
		require.Equal(t, tc.want, a.Rows, "id=%d T=%d n=%d", tc.id, tc.threads, tc.n)
		require.Equal(t, tc.want == nil, a.Empty())
		for _, i := range a.Rows {
			require.Equal(t, tc.id, solver.Owner(i, tc.threads))
		}
	}
}

// TestBarrier_Generations runs several rendezvous rounds and checks the
// action runs once per round before any party is released.
func TestBarrier_Generations(t *testing.T) {
	const parties, rounds = 3, 5
	var actions atomic.Int64
	var passed atomic.Int64
	bar := solver.NewBarrier(parties, func(gen uint64) error {
		// Every party of this round has arrived, none has passed yet.
		if passed.Load() != int64(gen)*parties {
			return errors.New("party released before the action")
		}
		actions.Add(1)
		return nil
	})

	var wg sync.WaitGroup
	errs := make(chan error, parties*rounds)
	for p := 0; p < parties; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				if err := bar.Wait(); err != nil {
					errs <- err
					return
				}
				passed.Add(1)
				// Hold the next round until every party passed this one.
				for passed.Load() < int64(r+1)*parties {
					time.Sleep(time.Microsecond)
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, int64(rounds), actions.Load())
	require.Equal(t, uint64(rounds), bar.Generation())
}

func TestBarrier_Break(t *testing.T) {
	bar := solver.NewBarrier(2, nil)
	done := make(chan error, 1)
	go func() { done <- bar.Wait() }()

	require.Eventually(t, func() bool {
		bar.Break()
		select {
		case err := <-done:
			return errors.Is(err, solver.ErrBarrierBroken)
		default:
			return false
		}
	}, 5*time.Second, time.Millisecond)
	require.ErrorIs(t, bar.Wait(), solver.ErrBarrierBroken)
}

func TestBarrier_ActionError(t *testing.T) {
	boom := errors.New("boom")
	bar := solver.NewBarrier(1, func(uint64) error { return boom })
	require.ErrorIs(t, bar.Wait(), boom)
	require.ErrorIs(t, bar.Wait(), solver.ErrBarrierBroken)
	require.Panics(t, func() { solver.NewBarrier(0, nil) })
}

func TestSelect(t *testing.T) {
	h, err := history.NewAtomic(4, 2, []float64{7, 8})
	require.NoError(t, err)

	k, x := solver.Select(h)
	require.Equal(t, 0, k, "nothing resolved falls back to the initial guess")
	require.Equal(t, []float64{7, 8}, x)

	require.NoError(t, h.Store(1, 0, 1))
	require.NoError(t, h.Store(1, 1, 2))
	require.NoError(t, h.Store(2, 0, 3)) // row 2 only partially resolved
	k, x = solver.Select(h)
	require.Equal(t, 1, k)
	require.Equal(t, []float64{1, 2}, x)
}

func TestMonitor(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
	require.NoError(t, err)
	m := solver.NewMonitor(a, []float64{2, 2}, 1e-6)

	r, ok, err := m.Observe(1, []float64{0, 0})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 8.0, r)

	_, ok, err = m.Observe(2, []float64{math.NaN(), 1})
	require.NoError(t, err)
	require.False(t, ok, "NaN never converges")

	_, ok, err = m.Observe(3, []float64{1, 1})
	require.NoError(t, err)
	require.True(t, ok)
	_, _, err = m.Observe(4, []float64{1, 1})
	require.NoError(t, err)

	at, converged := m.ConvergedAt()
	require.True(t, converged)
	require.Equal(t, 3, at, "first converged iteration is kept")
	res := m.Residuals()
	require.Len(t, res, 4)
	require.True(t, math.IsNaN(res[1]))

	_, _, err = m.Observe(5, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestResidual(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{4, 1}, {2, 3}})
	require.NoError(t, err)
	r, err := solver.Residual(a, []float64{0.1, 0.6}, []float64{1, 2})
	require.NoError(t, err)
	require.InDelta(t, 0, r, 1e-25)

	_, err = solver.Residual(a, []float64{1, 1}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestOptions(t *testing.T) {
	o := solver.DefaultOptions()
	require.Equal(t, solver.Jacobi, o.Method)
	require.Equal(t, solver.DefaultThreads, o.Threads)
	require.Equal(t, solver.DefaultMaxIterations, o.MaxIterations)
	require.Equal(t, solver.DefaultTolerance, o.Tolerance)
	require.NotNil(t, o.Logger)

	require.Panics(t, func() { solver.WithThreads(0) })
	require.Panics(t, func() { solver.WithThreads(solver.MaxThreads + 1) })
	require.Panics(t, func() { solver.WithMaxIterations(0) })
	require.Panics(t, func() { solver.WithTolerance(0) })
	require.Panics(t, func() { solver.WithTolerance(math.Inf(1)) })
	require.Panics(t, func() { solver.WithMethod(solver.Method(7)) })
	require.Panics(t, func() { solver.WithHistory(history.Kind(7)) })

	for in, want := range map[string]solver.Method{
		"jacobi": solver.Jacobi, "Gauss-Seidel": solver.GaussSeidel, "gs": solver.GaussSeidel, " seidel ": solver.GaussSeidel,
	} {
		got, err := solver.ParseMethod(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := solver.ParseMethod("sor")
	require.Error(t, err)
	require.Equal(t, "gauss-seidel", solver.GaussSeidel.String())
}
