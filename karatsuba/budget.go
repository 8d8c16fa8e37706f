package karatsuba

import (
	"golang.org/x/sync/semaphore"
)

// NumThreads is the default Karatsuba recursion budget: the maximum
// number of concurrently live recursive worker goroutines a single
// top-level Mul call may have outstanding.
var NumThreads = 16

// MinParallelN2 is the per-frame size cutoff below which a recursive
// frame never attempts to spawn, regardless of remaining budget.
var MinParallelN2 = 64

// BNMulRecursiveSizeNormal is the n2 threshold below which MulRecursive
// bottoms out on the sequential schoolbook multiplier instead of
// recursing further.
var BNMulRecursiveSizeNormal = 32

// Budget is a process-wide cap on concurrently live Karatsuba worker
// goroutines for one top-level Mul call, implemented as a non-blocking
// try-acquire semaphore so recursion never deadlocks waiting on its own
// children's budget.
type Budget struct {
	sem *semaphore.Weighted
}

// NewBudget returns a Budget admitting up to capacity concurrently live
// workers.
func NewBudget(capacity int) *Budget {
	if capacity < 1 {
		capacity = 1
	}
	return &Budget{sem: semaphore.NewWeighted(int64(capacity))}
}

// TryAcquire reserves one worker slot without blocking, reporting whether
// a slot was available.
func (b *Budget) TryAcquire() bool {
	return b.sem.TryAcquire(1)
}

// Release returns a worker slot a prior successful TryAcquire reserved.
func (b *Budget) Release() {
	b.sem.Release(1)
}
