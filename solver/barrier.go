// SPDX-License-Identifier: MIT

package solver

import "sync"

// Barrier is a cyclic rendezvous for a fixed number of parties.
//
// Each generation completes when the last party arrives. That party runs the
// action (if any) while the others are still held, then releases everyone
// and the barrier resets for the next generation. Break releases all current
// and future waiters with ErrBarrierBroken.
type Barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int
	arrived    int
	generation uint64
	broken     bool
	action     func(generation uint64) error
}

// NewBarrier creates a barrier for parties goroutines. action may be nil;
// it receives the index of the completing generation (0-based).
// Panics if parties < 1.
func NewBarrier(parties int, action func(generation uint64) error) *Barrier {
	if parties < 1 {
		panic(panicParties)
	}
	b := &Barrier{parties: parties, action: action}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// Wait blocks until all parties have arrived in the current generation.
//
// Returns:
//   - nil once the generation completes.
//   - the action's error, for the last arriver, when the action fails; the
//     barrier is broken and the other parties get ErrBarrierBroken.
//   - ErrBarrierBroken if the barrier is or becomes broken.
func (b *Barrier) Wait() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return ErrBarrierBroken
	}

	gen := b.generation
	b.arrived++
	if b.arrived == b.parties {
		if b.action != nil {
			if err := b.action(gen); err != nil {
				b.breakLocked()
				return err
			}
		}
		b.arrived = 0
		b.generation++
		b.cond.Broadcast()

		return nil
	}

	for gen == b.generation && !b.broken {
		b.cond.Wait()
	}
	if gen == b.generation {
		return ErrBarrierBroken
	}

	return nil
}

// Break marks the barrier broken and wakes every waiter. Idempotent.
func (b *Barrier) Break() {
	b.mu.Lock()
	b.breakLocked()
	b.mu.Unlock()
}

// Generation returns the number of completed generations.
func (b *Barrier) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.generation
}

func (b *Barrier) breakLocked() {
	b.broken = true
	b.cond.Broadcast()
}
