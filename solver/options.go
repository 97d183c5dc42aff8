// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/relax/history"
)

// Method selects the relaxation scheme.
type Method int

const (
	// Jacobi updates every row from the previous iterate only.
	Jacobi Method = iota
	// GaussSeidel uses current-iteration values for rows above i.
	GaussSeidel
)

// String returns the canonical spelling used by config files and the CLI.
func (m Method) String() string {
	switch m {
	case Jacobi:
		return "jacobi"
	case GaussSeidel:
		return "gauss-seidel"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts "jacobi" and the Gauss-Seidel spellings "gauss-seidel",
// "gauss_seidel", "gauss", "seidel" and "gs" (case-insensitive).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jacobi":
		return Jacobi, nil
	case "gauss-seidel", "gauss_seidel", "gauss", "seidel", "gs":
		return GaussSeidel, nil
	default:
		return 0, fmt.Errorf("solver: unknown method %q", s)
	}
}

// Defaults (single source of truth).
const (
	// MaxThreads bounds the worker pool.
	MaxThreads = 4

	// DefaultThreads is the worker count when WithThreads is not given.
	DefaultThreads = 1

	// DefaultMaxIterations is the history depth (row 0 included).
	DefaultMaxIterations = 100

	// DefaultTolerance is the squared-residual threshold for convergence.
	DefaultTolerance = 1e-5
)

// Options is the resolved configuration of one Solve call.
// Build it through Option setters; the zero value is not meaningful.
type Options struct {
	Method        Method
	Threads       int
	MaxIterations int
	Tolerance     float64
	History       history.Kind
	InitialGuess  []float64
	Logger        *slog.Logger

	historySet bool // History was chosen explicitly
}

// Option configures Solve.
type Option func(*Options)

// DefaultOptions returns the documented defaults. History is resolved per
// method at Solve time unless WithHistory is given.
func DefaultOptions() Options {
	return Options{
		Method:        Jacobi,
		Threads:       DefaultThreads,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		History:       history.KindLocked,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMethod selects Jacobi or GaussSeidel. Panics on an unknown method.
func WithMethod(m Method) Option {
	if m != Jacobi && m != GaussSeidel {
		panic(panicMethod)
	}

	return func(o *Options) { o.Method = m }
}

// WithThreads sets the worker count. Panics outside [1, MaxThreads].
func WithThreads(t int) Option {
	if t < 1 || t > MaxThreads {
		panic(panicThreads)
	}

	return func(o *Options) { o.Threads = t }
}

// WithMaxIterations sets the history depth. With 1 only the initial guess
// exists and it is returned unchanged. Panics on k < 1.
func WithMaxIterations(k int) Option {
	if k < 1 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.MaxIterations = k }
}

// WithTolerance sets the squared-residual convergence threshold.
// Panics unless eps is finite and positive.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicTolerance)
	}

	return func(o *Options) { o.Tolerance = eps }
}

// WithHistory overrides the per-method default history implementation.
func WithHistory(k history.Kind) Option {
	if k != history.KindLocked && k != history.KindAtomic {
		panic(panicHistory)
	}

	return func(o *Options) {
		o.History = k
		o.historySet = true
	}
}

// WithInitialGuess seeds H[0]. The slice is copied; its length is checked
// by Solve (matrix.ErrDimensionMismatch).
func WithInitialGuess(x0 []float64) Option {
	cp := append([]float64(nil), x0...)

	return func(o *Options) { o.InitialGuess = cp }
}

// WithLogger routes solver logs to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// gatherOptions applies user setters on top of DefaultOptions and resolves
// the history default for the chosen method.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if !o.historySet {
		o.History = defaultHistory(o.Method)
	}

	return o
}

// defaultHistory maps a method to its default history implementation.
func defaultHistory(m Method) history.Kind {
	if m == GaussSeidel {
		return history.KindAtomic
	}

	return history.KindLocked
}
