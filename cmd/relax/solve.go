// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relax/solver"
	"github.com/katalvlaran/relax/textio"
)

type solveFlags struct {
	tolerance float64
	history   string
	timeout   time.Duration
}

func (a *app) newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve <coefficients> <rhs> <threads> <max-iterations> <output> [method]",
		Short: "Solve A·x = b and write x to <output>, one value per line",
		Long: `Solve reads the coefficient matrix and the right-hand side, relaxes the
system with the chosen method (jacobi or gauss-seidel, default from the config)
and writes the deepest fully resolved iterate to <output>.

<max-iterations> is the history depth including the initial guess, so 1 writes
the initial guess back unchanged.`,
		Args: cobra.RangeArgs(5, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args, f)
		},
	}
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", solver.DefaultTolerance, "squared-residual convergence threshold")
	cmd.Flags().StringVar(&f.history, "history", "", "history implementation: locked or atomic (default per method)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "abort the solve after this duration (0 disables)")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string, f solveFlags) error {
	cfg := a.cfg
	threads, err := strconv.Atoi(args[2])
	if err != nil {
		return usageErrorf("threads %q is not an integer", args[2])
	}
	maxIter, err := strconv.Atoi(args[3])
	if err != nil {
		return usageErrorf("max-iterations %q is not an integer", args[3])
	}
	cfg.Threads, cfg.MaxIterations = threads, maxIter
	if len(args) == 6 {
		cfg.Method = args[5]
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance = f.tolerance
	}
	if cmd.Flags().Changed("history") {
		cfg.History = f.history
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	opts, err := cfg.SolverOptions()
	if err != nil {
		return usageError(err)
	}

	coef, b, err := textio.LoadSystem(args[0], args[1])
	if err != nil {
		return dataError(err)
	}
	a.log.Info("system loaded", slog.Int("n", coef.Rows()), slog.String("coefficients", args[0]))

	ctx := cmd.Context()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	res, solveErr := solver.Solve(ctx, coef, b, append(opts, solver.WithLogger(a.log))...)
	if res == nil {
		return dataError(solveErr)
	}
	// An interrupted solve still writes its best fully resolved iterate.
	if err = textio.WriteVectorFile(args[4], res.X); err != nil {
		return dataError(err)
	}
	fmt.Fprintf(a.stdout, "method=%s threads=%d iteration=%d converged=%t residual=%g elapsed=%s run=%s\n",
		res.Method, res.Threads, res.Iteration, res.Converged, res.Residual,
		res.Elapsed.Round(time.Microsecond), res.RunID)
	if solveErr != nil {
		return dataError(solveErr)
	}

	return nil
}
