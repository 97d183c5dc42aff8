// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/relax/history"
	"github.com/katalvlaran/relax/matrix"
)

const opSolve = "Solve"

var tracer = otel.Tracer("github.com/katalvlaran/relax/solver")

// Result is the outcome of one Solve.
type Result struct {
	X           []float64     // selected fully resolved history row
	Iteration   int           // history index of X (0 = initial guess)
	Converged   bool          // residual fell below the tolerance
	ConvergedAt int           // first converged iteration, 0 if none
	Residual    float64       // Σ(A·X - b)²
	Residuals   []float64     // residual of every resolved iteration, in order
	Method      Method        // scheme used
	Threads     int           // workers started
	History     history.Kind  // history implementation used
	Spins       uint64        // Gauss-Seidel dependency re-checks
	Generations uint64        // Jacobi barrier generations
	Elapsed     time.Duration // wall time of the worker phase
	RunID       string        // unique id, also attached to logs and the span
}

// run is the shared state of one solve.
type run struct {
	a       matrix.Matrix
	b       []float64
	n       int
	threads int
	method  Method
	hist    history.History
	mon     *Monitor
	log     *slog.Logger

	stop        atomic.Bool   // raised by the convergence check
	live        []atomic.Bool // per-worker liveness (Gauss-Seidel)
	spins       atomic.Uint64
	generations atomic.Uint64
}

// Solve relaxes A·x = b with the configured method and worker count.
//
// MAIN DESCRIPTION:
//   - Validates the system, decomposes A once, seeds the history, starts the
//     workers and returns the deepest fully resolved iterate.
//
// Implementation:
//   - Stage 1: structural validation (nil, square, len(b), len(x0)).
//   - Stage 2: open the span, build the history (Locked/Atomic) and monitor.
//   - Stage 3: run the method's worker pool (errgroup) until convergence,
//     exhaustion of MaxIterations or ctx end.
//   - Stage 4: Select, compute the final residual, record metrics.
//
// Behavior highlights:
//   - Non-convergence is not an error: Converged=false, best row returned.
//   - A zero diagonal is not trapped; the run is simply unconverged.
//   - When ctx ends the Result is still returned, with the ctx error.
//
// Errors:
//   - ErrNilSystem, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
//     ErrUnresolvedDependency, history errors, context errors.
//
// Complexity:
//   - Time O(K·n²/T) for K iterations on T workers, Space O(K·n + n²).
func Solve(ctx context.Context, a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if matrix.ValidateNotNil(a) != nil || b == nil {
		return nil, solverErrorf(opSolve, ErrNilSystem)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, solverErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, solverErrorf(opSolve, err)
	}
	if o.InitialGuess != nil && len(o.InitialGuess) != n {
		return nil, solverErrorf(opSolve, matrix.ErrDimensionMismatch)
	}

	runID := uuid.NewString()
	ctx, span := tracer.Start(ctx, "solver.Solve", trace.WithAttributes(
		attribute.String("relax.run_id", runID),
		attribute.String("relax.method", o.Method.String()),
		attribute.Int("relax.threads", o.Threads),
		attribute.Int("relax.n", n),
		attribute.Int("relax.max_iterations", o.MaxIterations),
	))
	defer span.End()

	hist, err := history.New(o.History, o.MaxIterations, n, o.InitialGuess)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "history")
		return nil, solverErrorf(opSolve, err)
	}
	r := &run{
		a:       a,
		b:       b,
		n:       n,
		threads: o.Threads,
		method:  o.Method,
		hist:    hist,
		mon:     NewMonitor(a, b, o.Tolerance),
		log: o.Logger.With(
			slog.String("run_id", runID),
			slog.String("method", o.Method.String()),
			slog.Int("threads", o.Threads),
		),
	}
	r.log.Info("solve started",
		slog.Int("n", n),
		slog.Int("max_iterations", o.MaxIterations),
		slog.Float64("tolerance", o.Tolerance),
		slog.String("history", o.History.String()),
	)

	start := time.Now()
	switch o.Method {
	case GaussSeidel:
		err = r.solveGaussSeidel(ctx)
	default:
		err = r.solveJacobi(ctx)
	}
	elapsed := time.Since(start)

	k, x := Select(hist)
	convergedAt, converged := r.mon.ConvergedAt()
	res := &Result{
		X:           x,
		Iteration:   k,
		Converged:   converged,
		ConvergedAt: convergedAt,
		Residuals:   r.mon.Residuals(),
		Method:      o.Method,
		Threads:     o.Threads,
		History:     o.History,
		Spins:       r.spins.Load(),
		Generations: r.generations.Load(),
		Elapsed:     elapsed,
		RunID:       runID,
	}
	res.Residual, _ = Residual(a, x, b) // shapes validated in Stage 1

	outcome := outcomeExhausted
	switch {
	case err != nil && isContextErr(err):
		outcome = outcomeCanceled
	case err != nil:
		outcome = outcomeError
	case converged:
		outcome = outcomeConverged
	}
	recordSolve(o.Method, strconv.Itoa(o.Threads), outcome, elapsed, res.Spins)
	span.SetAttributes(
		attribute.Int("relax.iteration", k),
		attribute.Bool("relax.converged", converged),
		attribute.String("relax.outcome", outcome),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		r.log.Warn("solve stopped", slog.String("outcome", outcome), slog.Any("error", err))
		if isContextErr(err) {
			return res, solverErrorf(opSolve, err)
		}

		return nil, solverErrorf(opSolve, err)
	}

	r.log.Info("solve finished",
		slog.String("outcome", outcome),
		slog.Int("iteration", k),
		slog.Float64("residual", res.Residual),
		slog.Duration("elapsed", elapsed),
	)

	return res, nil
}

// iterationDone runs the convergence check for the fully resolved row x of
// iteration k and raises the stop flag on convergence.
func (r *run) iterationDone(k int, x []float64) error {
	residual, converged, err := r.mon.Observe(k, x)
	if err != nil {
		return err
	}
	recordIteration(r.method)
	r.log.Debug("iteration resolved", slog.Int("iteration", k), slog.Float64("residual", residual))
	if converged {
		r.stop.Store(true)
		r.log.Debug("converged", slog.Int("iteration", k))
	}

	return nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
