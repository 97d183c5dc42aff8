// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relax/history"
	"github.com/katalvlaran/relax/operator"
)

const opJacobi = "Jacobi"

// solveJacobi runs the barrier-synchronized Jacobi pool.
//
// Only workers that own rows take part in the barrier, so threads > n never
// leaves a party missing. A watcher breaks the barrier when the group context
// ends (ctx canceled or a worker failed) so no one waits forever.
func (r *run) solveJacobi(ctx context.Context) error {
	op, err := operator.NewJacobi(r.a)
	if err != nil {
		return solverErrorf(opJacobi, err)
	}
	if r.hist.Depth() == 1 {
		return nil
	}

	bar := NewBarrier(activeWorkers(r.threads, r.n), r.jacobiIteration)
	g, gctx := errgroup.WithContext(ctx)
	go func() {
		<-gctx.Done()
		bar.Break()
	}()
	for id := 0; id < r.threads; id++ {
		asg := NewAssignment(id, r.threads, r.n)
		g.Go(func() error { return r.jacobiWorker(gctx, asg, op, bar) })
	}

	return g.Wait()
}

// jacobiIteration is the barrier action: generation g completes iteration g+1.
func (r *run) jacobiIteration(generation uint64) error {
	k := int(generation) + 1
	r.generations.Add(1)
	barrierGenerations.Inc()
	x, ok := history.Row(r.hist, k)
	if !ok {
		return fmt.Errorf("%s: iteration %d: %w", opJacobi, k, ErrUnresolvedDependency)
	}

	return r.iterationDone(k, x)
}

// jacobiWorker computes the owned rows of every iteration from one snapshot
// of the previous row, then waits at the barrier.
func (r *run) jacobiWorker(ctx context.Context, asg Assignment, op *operator.Jacobi, bar *Barrier) error {
	if asg.Empty() {
		r.log.Debug("worker idle", slog.Int("worker", asg.ID))
		return nil
	}
	prev := make([]float64, r.n)
	depth := r.hist.Depth()
	var err error
	for k := 1; k < depth; k++ {
		if r.stop.Load() {
			break
		}
		if err = ctx.Err(); err != nil {
			return err
		}
		if !r.hist.Gather(k-1, 0, r.n, prev) {
			return fmt.Errorf("%s: worker %d iteration %d: %w", opJacobi, asg.ID, k-1, ErrUnresolvedDependency)
		}
		for _, i := range asg.Rows {
			if err = r.hist.Store(k, i, op.Update(i, r.b[i], prev)); err != nil {
				return err
			}
		}
		if err = bar.Wait(); err != nil {
			if errors.Is(err, ErrBarrierBroken) {
				return ctx.Err()
			}

			return err
		}
	}
	r.log.Debug("worker done", slog.Int("worker", asg.ID))

	return nil
}
