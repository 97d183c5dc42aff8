// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilSystem indicates a nil coefficient matrix or right-hand side.
	ErrNilSystem = errors.New("solver: nil matrix or right-hand side")

	// ErrUnresolvedDependency indicates a worker read a history cell that
	// was unknown although the synchronization protocol reported it ready.
	ErrUnresolvedDependency = errors.New("solver: dependency read before it was resolved")

	// ErrBarrierBroken is returned by Barrier.Wait once the barrier is broken.
	ErrBarrierBroken = errors.New("solver: barrier broken")
)

// Panic messages of option constructors.
const (
	panicThreads       = "solver: WithThreads: threads must be in [1, MaxThreads]"
	panicMaxIterations = "solver: WithMaxIterations: max iterations must be >= 1"
	panicTolerance     = "solver: WithTolerance: tolerance must be finite and > 0"
	panicMethod        = "solver: WithMethod: unknown method"
	panicHistory       = "solver: WithHistory: unknown history kind"
	panicParties       = "solver: NewBarrier: parties must be >= 1"
)

// solverErrorf wraps err with an operation tag.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
