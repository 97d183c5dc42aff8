// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relax/history"
	"github.com/katalvlaran/relax/operator"
)

const opGaussSeidel = "GaussSeidel"

// solveGaussSeidel runs the polling Gauss-Seidel pool.
func (r *run) solveGaussSeidel(ctx context.Context) error {
	op, err := operator.NewGaussSeidel(r.a)
	if err != nil {
		return solverErrorf(opGaussSeidel, err)
	}
	if r.hist.Depth() == 1 {
		return nil
	}

	r.live = make([]atomic.Bool, r.threads)
	for i := range r.live {
		r.live[i].Store(true)
	}
	g, gctx := errgroup.WithContext(ctx)
	for id := 0; id < r.threads; id++ {
		asg := NewAssignment(id, r.threads, r.n)
		g.Go(func() error { return r.gaussSeidelWorker(gctx, asg, op) })
	}

	return g.Wait()
}

// gaussSeidelWorker walks iterations 1..Depth-1 over its own rows, waiting
// for each row's dependencies before computing it.
//
// Implementation:
//   - Stage 1: await H[k][0..i) and H[k-1][i+1..n) (spin with recheck).
//   - Stage 2: gather both ranges and apply the row update.
//   - Stage 3: store H[k][i]; the owner of row n-1 then runs the check,
//     since that write completes iteration k.
//
// The worker marks itself dead on return, which lets waiters on its rows
// give up instead of spinning forever.
func (r *run) gaussSeidelWorker(ctx context.Context, asg Assignment, op *operator.GaussSeidel) error {
	defer r.live[asg.ID].Store(false)
	if asg.Empty() {
		r.log.Debug("worker idle", slog.Int("worker", asg.ID))
		return nil
	}

	cur := make([]float64, r.n)
	prev := make([]float64, r.n)
	last := r.n - 1
	depth := r.hist.Depth()
	var (
		ready bool
		err   error
		x     []float64
	)
	for k := 1; k < depth; k++ {
		for _, i := range asg.Rows {
			if ready, err = r.await(ctx, k, i); err != nil || !ready {
				r.log.Debug("worker left", slog.Int("worker", asg.ID), slog.Int("iteration", k))
				return err
			}
			if !r.hist.Gather(k, 0, i, cur) || !r.hist.Gather(k-1, i+1, r.n, prev) {
				return fmt.Errorf("%s: row %d iteration %d: %w", opGaussSeidel, i, k, ErrUnresolvedDependency)
			}
			if err = r.hist.Store(k, i, op.Update(i, r.b[i], cur, prev)); err != nil {
				return err
			}
			if i != last {
				continue
			}
			if x, ready = history.Row(r.hist, k); !ready {
				return fmt.Errorf("%s: iteration %d: %w", opGaussSeidel, k, ErrUnresolvedDependency)
			}
			if err = r.iterationDone(k, x); err != nil {
				return err
			}
		}
	}
	r.log.Debug("worker done", slog.Int("worker", asg.ID))

	return nil
}

// await spins until row i of iteration k has all its inputs.
//
// Returns (true,nil) when ready, (false,nil) when the worker should leave
// quietly (stop flag raised, or the owner of a missing cell has exited and
// the cell is still unknown), (false,err) when ctx ended.
func (r *run) await(ctx context.Context, k, i int) (bool, error) {
	var spins uint64
	defer func() {
		if spins > 0 {
			r.spins.Add(spins)
		}
	}()

	var row, j int
	for {
		if r.stop.Load() {
			return false, nil
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}
		row, j = r.pending(k, i)
		if j == history.NotFound {
			return true, nil
		}
		if !r.live[Owner(j, r.threads)].Load() {
			// Liveness first, then the cell: a dead owner wrote everything it ever will.
			if _, ok := r.hist.Load(row, j); !ok {
				return false, nil
			}
			continue
		}
		spins++
		runtime.Gosched()
	}
}

// pending returns the first unknown input of row i at iteration k as
// (history row, column), with column NotFound when all are resolved.
func (r *run) pending(k, i int) (int, int) {
	if j := r.hist.FirstUnresolved(k, 0, i); j != history.NotFound {
		return k, j
	}

	return k - 1, r.hist.FirstUnresolved(k-1, i+1, r.n)
}
