package orchestrator

import "sync/atomic"

// Generation identifies one render pass. Ids are unique and strictly
// increasing for the lifetime of a Coordinator.
type Generation uint64

// Coordinator issues render-generation ids and tracks the youngest committed
// one. Interactive callers fire overlapping renders; whichever commits with
// the highest id wins, and anything older is reported stale so its output is
// discarded instead of overwriting a newer result.
type Coordinator struct {
	counter   atomic.Uint64
	committed atomic.Uint64
}

// NewCoordinator returns a Coordinator with no generations issued.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Begin issues the next generation id.
func (c *Coordinator) Begin() Generation {
	return Generation(c.counter.Add(1))
}

// Commit records a finished generation. It returns false when a younger
// generation has already committed, in which case the caller's result is
// stale.
func (c *Coordinator) Commit(g Generation) bool {
	for {
		current := c.committed.Load()
		if uint64(g) <= current {
			return false
		}
		if c.committed.CompareAndSwap(current, uint64(g)) {
			return true
		}
	}
}

// Latest reports the youngest committed generation, zero when none has
// committed yet.
func (c *Coordinator) Latest() Generation {
	return Generation(c.committed.Load())
}
