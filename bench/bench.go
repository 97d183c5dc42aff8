// SPDX-License-Identifier: MIT

// Package bench times relaxation solves across methods and worker counts.
//
// For every (method, threads) pair the same system is solved Attempts times
// and the wall time of each Solve is recorded. Speedup is the mean time of
// the same method at one thread divided by the pair's mean; efficiency is
// speedup divided by threads.
//
//	results, err := bench.Run(ctx, a, b, bench.DefaultConfig())
//	_ = bench.Table(os.Stdout, results)
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/relax/logging"
	"github.com/katalvlaran/relax/matrix"
	"github.com/katalvlaran/relax/solver"
)

// ErrConfig indicates an unusable benchmark configuration.
var ErrConfig = errors.New("bench: invalid config")

// Config controls which solves are timed.
type Config struct {
	Methods       []solver.Method
	Threads       []int // each in [1, solver.MaxThreads]
	Attempts      int   // solves per (method, threads)
	MaxIterations int
	Tolerance     float64
	Logger        *slog.Logger // nil discards
}

// DefaultConfig times both methods on 1..MaxThreads workers, 5 attempts of
// 30 iterations each.
func DefaultConfig() Config {
	threads := make([]int, 0, solver.MaxThreads)
	for t := 1; t <= solver.MaxThreads; t++ {
		threads = append(threads, t)
	}

	return Config{
		Methods:       []solver.Method{solver.Jacobi, solver.GaussSeidel},
		Threads:       threads,
		Attempts:      5,
		MaxIterations: 30,
		Tolerance:     solver.DefaultTolerance,
	}
}

// Result holds the timings of one (method, threads) pair.
type Result struct {
	Method     solver.Method
	Threads    int
	N          int
	Attempts   int
	Mean       time.Duration
	StdDev     time.Duration
	Min        time.Duration
	Max        time.Duration
	Iteration  int  // history index of the last attempt's answer
	Converged  bool // last attempt converged
	Speedup    float64
	Efficiency float64
}

func (c Config) validate() error {
	if len(c.Methods) == 0 || len(c.Threads) == 0 {
		return fmt.Errorf("%w: no methods or thread counts", ErrConfig)
	}
	if c.Attempts < 1 || c.MaxIterations < 1 {
		return fmt.Errorf("%w: attempts and max iterations must be >= 1", ErrConfig)
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance %g must be finite and > 0", ErrConfig, c.Tolerance)
	}
	for _, t := range c.Threads {
		if t < 1 || t > solver.MaxThreads {
			return fmt.Errorf("%w: threads %d not in [1, %d]", ErrConfig, t, solver.MaxThreads)
		}
	}
	for _, m := range c.Methods {
		if m != solver.Jacobi && m != solver.GaussSeidel {
			return fmt.Errorf("%w: %s", ErrConfig, m)
		}
	}

	return nil
}

// Run times every configured pair on A·x = b, methods in order, threads in
// order. The first failing solve aborts the run.
func Run(ctx context.Context, a matrix.Matrix, b []float64, cfg Config) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}

	results := make([]Result, 0, len(cfg.Methods)*len(cfg.Threads))
	samples := make([]float64, cfg.Attempts)
	for _, m := range cfg.Methods {
		var base time.Duration // mean at one thread for m, 0 if not measured
		for _, t := range cfg.Threads {
			r := Result{Method: m, Threads: t, N: a.Rows(), Attempts: cfg.Attempts}
			for i := 0; i < cfg.Attempts; i++ {
				res, err := solver.Solve(ctx, a, b,
					solver.WithMethod(m),
					solver.WithThreads(t),
					solver.WithMaxIterations(cfg.MaxIterations),
					solver.WithTolerance(cfg.Tolerance),
				)
				if err != nil {
					return nil, fmt.Errorf("bench: %s threads=%d attempt %d: %w", m, t, i+1, err)
				}
				samples[i] = res.Elapsed.Seconds()
				if i == 0 || res.Elapsed < r.Min {
					r.Min = res.Elapsed
				}
				if res.Elapsed > r.Max {
					r.Max = res.Elapsed
				}
				r.Iteration, r.Converged = res.Iteration, res.Converged
			}
			mean, std := stat.MeanStdDev(samples, nil)
			if cfg.Attempts == 1 {
				std = 0
			}
			r.Mean = seconds(mean)
			r.StdDev = seconds(std)
			if t == 1 {
				base = r.Mean
			}
			if base > 0 && r.Mean > 0 {
				r.Speedup = float64(base) / float64(r.Mean)
				r.Efficiency = r.Speedup / float64(t)
			}
			log.Info("bench pair done",
				slog.String("method", m.String()),
				slog.Int("threads", t),
				slog.Duration("mean", r.Mean),
				slog.Float64("speedup", r.Speedup),
			)
			results = append(results, r)
		}
	}

	return results, nil
}

// Table writes results as an aligned text table.
// Speedup and efficiency print "-" when no one-thread baseline exists.
func Table(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "method\tthreads\tn\tattempts\tmean\tstddev\tmin\tmax\titeration\tspeedup\tefficiency\t")
	for _, r := range results {
		speedup, eff := "-", "-"
		if r.Speedup > 0 {
			speedup = fmt.Sprintf("%.2f", r.Speedup)
			eff = fmt.Sprintf("%.2f", r.Efficiency)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t\n",
			r.Method, r.Threads, r.N, r.Attempts,
			r.Mean.Round(time.Microsecond), r.StdDev.Round(time.Microsecond),
			r.Min.Round(time.Microsecond), r.Max.Round(time.Microsecond),
			r.Iteration, speedup, eff)
	}

	return tw.Flush()
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
