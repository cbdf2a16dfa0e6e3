package engine

import "sync/atomic"

// sharedBounds are the root's min/max shared by all workers of one
// iteration. max only rises and min only falls, so a stale read can cost
// pruning but never causes a wrong cut.
type sharedBounds struct {
	min atomic.Int32
	max atomic.Int32
}

func (b *sharedBounds) reset() {
	b.min.Store(Infinity)
	b.max.Store(NegInfinity)
}

func (b *sharedBounds) raiseMax(v int32) {
	for {
		cur := b.max.Load()
		if v <= cur || b.max.CompareAndSwap(cur, v) {
			return
		}
	}
}

func (b *sharedBounds) lowerMin(v int32) {
	for {
		cur := b.min.Load()
		if v >= cur || b.min.CompareAndSwap(cur, v) {
			return
		}
	}
}

// tighten narrows a local window with the shared one.
func (b *sharedBounds) tighten(min, max int32) (int32, int32) {
	if b == nil {
		return min, max
	}
	if g := b.min.Load(); g < min {
		min = g
	}
	if g := b.max.Load(); g > max {
		max = g
	}
	return min, max
}
