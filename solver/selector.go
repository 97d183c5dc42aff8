// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/relax/history"

// Select returns the deepest fully resolved history row and its index,
// scanning from Depth-1 down to 1. When no computed row is complete it falls
// back to H[0], the initial guess.
// Complexity: O(Depth·n) worst case.
func Select(h history.History) (int, []float64) {
	var (
		x  []float64
		ok bool
	)
	for k := h.Depth() - 1; k >= 1; k-- {
		if x, ok = history.Row(h, k); ok {
			return k, x
		}
	}
	x, _ = history.Row(h, 0)

	return 0, x
}
