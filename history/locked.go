// SPDX-License-Identifier: MIT

package history

import "sync"

// Locked is a History guarded by a single RWMutex.
// values and known are flat row-major tables of Depth*Width cells.
type Locked struct {
	mu     sync.RWMutex // guards values and known
	depth  int
	width  int
	values []float64
	known  []bool
}

var _ History = (*Locked)(nil)

// NewLocked allocates a depth×width table with row 0 seeded from x0
// (zeros when x0 is nil).
// Errors: ErrInvalidShape, ErrInitialGuess.
// Complexity: O(depth*width).
func NewLocked(depth, width int, x0 []float64) (*Locked, error) {
	if err := checkShape(depth, width, x0); err != nil {
		return nil, err
	}
	h := &Locked{
		depth:  depth,
		width:  width,
		values: make([]float64, depth*width),
		known:  make([]bool, depth*width),
	}
	copy(h.values[:width], x0)
	for i := 0; i < width; i++ {
		h.known[i] = true
	}

	return h, nil
}

// Depth implements History.
func (h *Locked) Depth() int { return h.depth }

// Width implements History.
func (h *Locked) Width() int { return h.width }

// Load implements History.
func (h *Locked) Load(k, i int) (float64, bool) {
	if !inRange(h.depth, h.width, k, i) {
		return 0, false
	}
	off := k*h.width + i
	h.mu.RLock()
	v, ok := h.values[off], h.known[off]
	h.mu.RUnlock()

	return v, ok
}

// Store implements History.
func (h *Locked) Store(k, i int, v float64) error {
	if !inRange(h.depth, h.width, k, i) {
		return cellErrorf(opStore, k, i, ErrOutOfRange)
	}
	off := k*h.width + i
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.known[off] {
		return cellErrorf(opStore, k, i, ErrAlreadyResolved)
	}
	h.values[off] = v
	h.known[off] = true

	return nil
}

// FirstUnresolved implements History. An invalid k reports from.
func (h *Locked) FirstUnresolved(k, from, to int) int {
	lo, hi, ok := clampRange(h.depth, h.width, k, from, to)
	if !ok {
		return from
	}
	base := k * h.width
	h.mu.RLock()
	defer h.mu.RUnlock()
	for j := lo; j < hi; j++ {
		if !h.known[base+j] {
			return j
		}
	}

	return NotFound
}

// Gather implements History. The copy is one critical section, so the
// caller sees a consistent point-in-time view of the range.
func (h *Locked) Gather(k, from, to int, dst []float64) bool {
	lo, hi, ok := clampRange(h.depth, h.width, k, from, to)
	if !ok || lo != from || hi != to || from > to || len(dst) < to {
		return false
	}
	base := k * h.width
	h.mu.RLock()
	defer h.mu.RUnlock()
	for j := lo; j < hi; j++ {
		if !h.known[base+j] {
			return false
		}
	}
	copy(dst[lo:hi], h.values[base+lo:base+hi])

	return true
}
