// SPDX-License-Identifier: MIT

package history

import (
	"fmt"
	"strings"
)

const (
	opNew   = "New"
	opStore = "Store"
)

// NotFound is returned by FirstUnresolved when every cell in range is resolved.
const NotFound = -1

// History is the shared iteration table H[k][i].
//
// All methods are safe for concurrent use. Indices outside the table never
// panic: Load reports (0,false), FirstUnresolved reports the first index,
// Gather reports false and Store returns ErrOutOfRange.
type History interface {
	// Depth returns the number of iteration rows (row 0 included).
	Depth() int

	// Width returns the number of unknowns per row.
	Width() int

	// Load returns H[k][i] and whether it is resolved.
	Load(k, i int) (float64, bool)

	// Store resolves H[k][i] to v. Each cell accepts exactly one Store;
	// row 0 is fixed at construction and rejects all stores.
	Store(k, i int, v float64) error

	// FirstUnresolved returns the smallest j in [from, to) with H[k][j]
	// unknown, or NotFound when the whole range is resolved.
	FirstUnresolved(k, from, to int) int

	// Gather copies H[k][from:to) into dst[from:to) and reports whether
	// every copied cell was resolved. dst must have length ≥ to.
	// On false the contents of dst[from:to) are unspecified.
	Gather(k, from, to int, dst []float64) bool
}

// Kind selects a History implementation.
type Kind int

const (
	// KindLocked selects the coarse-lock table.
	KindLocked Kind = iota
	// KindAtomic selects the per-cell compare-and-swap table.
	KindAtomic
)

// String returns the configuration spelling of k.
func (k Kind) String() string {
	switch k {
	case KindLocked:
		return "locked"
	case KindAtomic:
		return "atomic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "locked" / "atomic" to a Kind, ignoring case and
// surrounding space.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "locked":
		return KindLocked, nil
	case "atomic":
		return KindAtomic, nil
	default:
		return 0, fmt.Errorf("ParseKind: %q: %w", s, ErrUnknownKind)
	}
}

// New builds an empty History of the given kind.
// x0 seeds row 0; nil means all zeros.
func New(kind Kind, depth, width int, x0 []float64) (History, error) {
	switch kind {
	case KindLocked:
		return NewLocked(depth, width, x0)
	case KindAtomic:
		return NewAtomic(depth, width, x0)
	default:
		return nil, fmt.Errorf("%s: %s: %w", opNew, kind, ErrUnknownKind)
	}
}

// Resolved reports whether row k is fully resolved.
func Resolved(h History, k int) bool {
	if k < 0 || k >= h.Depth() {
		return false
	}

	return h.FirstUnresolved(k, 0, h.Width()) == NotFound
}

// Row returns an owned copy of row k, or (nil,false) if any cell is unknown.
func Row(h History, k int) ([]float64, bool) {
	dst := make([]float64, h.Width())
	if !h.Gather(k, 0, len(dst), dst) {
		return nil, false
	}

	return dst, true
}

// checkShape validates constructor arguments shared by both implementations.
func checkShape(depth, width int, x0 []float64) error {
	if depth <= 0 || width <= 0 {
		return fmt.Errorf("%s: depth=%d width=%d: %w", opNew, depth, width, ErrInvalidShape)
	}
	if x0 != nil && len(x0) != width {
		return fmt.Errorf("%s: len(x0)=%d width=%d: %w", opNew, len(x0), width, ErrInitialGuess)
	}

	return nil
}

// inRange reports whether (k,i) addresses a cell.
func inRange(depth, width, k, i int) bool {
	return k >= 0 && k < depth && i >= 0 && i < width
}

// clampRange trims [from,to) to [0,width) and reports whether k is valid.
func clampRange(depth, width, k, from, to int) (int, int, bool) {
	if k < 0 || k >= depth {
		return 0, 0, false
	}
	if from < 0 {
		from = 0
	}
	if to > width {
		to = width
	}

	return from, to, true
}
