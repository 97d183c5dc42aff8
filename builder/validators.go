// SPDX-License-Identifier: MIT

// Package builder provides validation helpers to enforce
// parameter contracts in system constructors.
//
// Each function returns a wrapped sentinel via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that the system size n is ≥ min.
// Returns "<Method>: n=<n> < min=<min>: builder: system size too small" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, n, min int) error {
	if n < min {
		return builderErrorf(method, ErrTooSmall, "n=%d < min=%d", n, min)
	}

	return nil
}

// validateSolution checks a pinned solution (if any) has n entries.
// Complexity: O(1) time and space.
func validateSolution(method string, x []float64, n int) error {
	if x != nil && len(x) != n {
		return builderErrorf(method, ErrSolutionLength, "len(x)=%d, n=%d", len(x), n)
	}

	return nil
}
