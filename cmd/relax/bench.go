// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relax/bench"
	"github.com/katalvlaran/relax/solver"
	"github.com/katalvlaran/relax/textio"
)

type benchFlags struct {
	attempts   int
	iterations int
	maxThreads int
	methods    []string
}

func (a *app) newBenchCmd() *cobra.Command {
	var f benchFlags
	def := bench.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "bench <coefficients> <rhs>",
		Short: "Time both methods on 1..max-threads workers and print a speedup table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBench(cmd, args, f)
		},
	}
	cmd.Flags().IntVar(&f.attempts, "attempts", def.Attempts, "solves per method and thread count")
	cmd.Flags().IntVar(&f.iterations, "iterations", def.MaxIterations, "history depth of every solve")
	cmd.Flags().IntVar(&f.maxThreads, "max-threads", solver.MaxThreads, "largest worker count")
	cmd.Flags().StringSliceVar(&f.methods, "method", []string{solver.Jacobi.String(), solver.GaussSeidel.String()}, "methods to time")

	return cmd
}

func (a *app) runBench(cmd *cobra.Command, args []string, f benchFlags) error {
	if f.maxThreads < 1 || f.maxThreads > solver.MaxThreads {
		return usageErrorf("max-threads %d not in [1, %d]", f.maxThreads, solver.MaxThreads)
	}
	cfg := bench.Config{
		Attempts:      f.attempts,
		MaxIterations: f.iterations,
		Tolerance:     a.cfg.Tolerance,
		Logger:        a.log,
	}
	for _, s := range f.methods {
		m, err := solver.ParseMethod(s)
		if err != nil {
			return usageError(err)
		}
		cfg.Methods = append(cfg.Methods, m)
	}
	for t := 1; t <= f.maxThreads; t++ {
		cfg.Threads = append(cfg.Threads, t)
	}

	coef, b, err := textio.LoadSystem(args[0], args[1])
	if err != nil {
		return dataError(err)
	}
	results, err := bench.Run(cmd.Context(), coef, b, cfg)
	if errors.Is(err, bench.ErrConfig) {
		return usageError(err)
	}
	if err != nil {
		return dataError(err)
	}

	return bench.Table(a.stdout, results)
}
