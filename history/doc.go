// SPDX-License-Identifier: MIT

// Package history stores the iteration history H[k][i] shared by the
// relaxation workers.
//
// H has Depth rows (one per iteration, row 0 is the initial guess) and Width
// columns (one per unknown). Every cell of rows 1..Depth-1 starts UNKNOWN and
// is resolved exactly once by its owning worker. The unknown state is kept out
// of band, next to the value, so a legitimately non-finite result (a divergent
// run) is still a resolved cell.
//
// Two implementations are provided:
//
//	Locked  - one sync.RWMutex guards the whole table; every read, write and
//	          snapshot is a short critical section.
//	Atomic  - per-cell write-once slots driven by compare-and-swap; readers
//	          never block and a resolved cell is immutable.
//
// Guarantees common to both:
//   - Store on an already resolved cell fails with ErrAlreadyResolved.
//   - Once Load reports a cell as resolved it never reports it unknown again.
//   - A value observed through Load/Gather is the one and only value ever
//     stored in that cell.
package history
