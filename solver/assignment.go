// SPDX-License-Identifier: MIT

package solver

// Assignment is the immutable set of rows owned by one worker.
// Worker ID owns rows ID, ID+Threads, ID+2·Threads, ... below N.
type Assignment struct {
	ID      int
	Threads int
	N       int
	Rows    []int
}

// NewAssignment computes the strided rows of worker id among threads
// workers for an n-row system. Computed once per solve.
// Complexity: O(n/threads).
func NewAssignment(id, threads, n int) Assignment {
	a := Assignment{ID: id, Threads: threads, N: n}
	if threads <= 0 || id < 0 || id >= threads {
		return a
	}
	for i := id; i < n; i += threads {
		a.Rows = append(a.Rows, i)
	}

	return a
}

// Empty reports whether the worker owns no rows (threads > n).
func (a Assignment) Empty() bool { return len(a.Rows) == 0 }

// Owner returns the worker owning row i under the same striding.
func Owner(i, threads int) int { return i % threads }

// activeWorkers is the number of workers that own at least one row.
func activeWorkers(threads, n int) int {
	if threads < n {
		return threads
	}

	return n
}
