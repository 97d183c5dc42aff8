// SPDX-License-Identifier: MIT

package solver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for relaxation solves, registered on the default registry.
var (
	// solvesTotal counts finished solves.
	// Labels: method, outcome (converged, exhausted, canceled, error)
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relax",
		Subsystem: "solver",
		Name:      "solves_total",
		Help:      "Total relaxation solves by method and outcome",
	}, []string{"method", "outcome"})

	// iterationsTotal counts fully resolved iterations.
	// Labels: method
	iterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relax",
		Subsystem: "solver",
		Name:      "iterations_total",
		Help:      "Fully resolved iterations observed by the convergence monitor",
	}, []string{"method"})

	// spinsTotal counts Gauss-Seidel dependency re-checks.
	spinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "relax",
		Subsystem: "solver",
		Name:      "dependency_spins_total",
		Help:      "Gauss-Seidel polling re-checks on unresolved dependencies",
	})

	// barrierGenerations counts completed Jacobi barrier generations.
	barrierGenerations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "relax",
		Subsystem: "solver",
		Name:      "barrier_generations_total",
		Help:      "Completed Jacobi barrier generations",
	})

	// solveDuration measures wall time per solve.
	// Labels: method, threads
	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "relax",
		Subsystem: "solver",
		Name:      "duration_seconds",
		Help:      "Wall time of one solve",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"method", "threads"})
)

// Solve outcomes used as metric labels.
const (
	outcomeConverged = "converged"
	outcomeExhausted = "exhausted"
	outcomeCanceled  = "canceled"
	outcomeError     = "error"
)

// recordSolve records the end of one solve.
func recordSolve(method Method, threads, outcome string, elapsed time.Duration, spins uint64) {
	solvesTotal.WithLabelValues(method.String(), outcome).Inc()
	solveDuration.WithLabelValues(method.String(), threads).Observe(elapsed.Seconds())
	if spins > 0 {
		spinsTotal.Add(float64(spins))
	}
}

// recordIteration records one fully resolved iteration.
func recordIteration(method Method) {
	iterationsTotal.WithLabelValues(method.String()).Inc()
}
