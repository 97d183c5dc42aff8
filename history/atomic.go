// SPDX-License-Identifier: MIT

package history

import (
	"math"
	"sync/atomic"
)

// Slot states. A slot moves unknown → writing → resolved exactly once.
const (
	stateUnknown uint32 = iota
	stateWriting
	stateResolved
)

// slot is one write-once cell. bits is published before state flips to
// resolved, so a reader that observes stateResolved also observes the value.
type slot struct {
	state atomic.Uint32
	bits  atomic.Uint64
}

// Atomic is a History of per-cell write-once slots.
// Readers never block; writers claim a slot with a single CompareAndSwap.
type Atomic struct {
	depth int
	width int
	cells []slot
}

var _ History = (*Atomic)(nil)

// NewAtomic allocates a depth×width table with row 0 seeded from x0
// (zeros when x0 is nil).
// Errors: ErrInvalidShape, ErrInitialGuess.
// Complexity: O(depth*width).
func NewAtomic(depth, width int, x0 []float64) (*Atomic, error) {
	if err := checkShape(depth, width, x0); err != nil {
		return nil, err
	}
	h := &Atomic{
		depth: depth,
		width: width,
		cells: make([]slot, depth*width),
	}
	var v float64
	for i := 0; i < width; i++ {
		v = 0
		if x0 != nil {
			v = x0[i]
		}
		h.cells[i].bits.Store(math.Float64bits(v))
		h.cells[i].state.Store(stateResolved)
	}

	return h, nil
}

// Depth implements History.
func (h *Atomic) Depth() int { return h.depth }

// Width implements History.
func (h *Atomic) Width() int { return h.width }

// Load implements History.
func (h *Atomic) Load(k, i int) (float64, bool) {
	if !inRange(h.depth, h.width, k, i) {
		return 0, false
	}
	c := &h.cells[k*h.width+i]
	if c.state.Load() != stateResolved {
		return 0, false
	}

	return math.Float64frombits(c.bits.Load()), true
}

// Store implements History.
func (h *Atomic) Store(k, i int, v float64) error {
	if !inRange(h.depth, h.width, k, i) {
		return cellErrorf(opStore, k, i, ErrOutOfRange)
	}
	c := &h.cells[k*h.width+i]
	if !c.state.CompareAndSwap(stateUnknown, stateWriting) {
		return cellErrorf(opStore, k, i, ErrAlreadyResolved)
	}
	c.bits.Store(math.Float64bits(v))
	c.state.Store(stateResolved)

	return nil
}

// FirstUnresolved implements History. An invalid k reports from.
func (h *Atomic) FirstUnresolved(k, from, to int) int {
	lo, hi, ok := clampRange(h.depth, h.width, k, from, to)
	if !ok {
		return from
	}
	base := k * h.width
	for j := lo; j < hi; j++ {
		if h.cells[base+j].state.Load() != stateResolved {
			return j
		}
	}

	return NotFound
}

// Gather implements History. Resolved cells are immutable, so copying them
// one by one yields a consistent view.
func (h *Atomic) Gather(k, from, to int, dst []float64) bool {
	lo, hi, ok := clampRange(h.depth, h.width, k, from, to)
	if !ok || lo != from || hi != to || from > to || len(dst) < to {
		return false
	}
	base := k * h.width
	var c *slot
	for j := lo; j < hi; j++ {
		c = &h.cells[base+j]
		if c.state.Load() != stateResolved {
			return false
		}
		dst[j] = math.Float64frombits(c.bits.Load())
	}

	return true
}
