package karatsuba

import "sync"

// recursiveArgs is the per-worker record a spawned or inline Karatsuba
// subproblem runs from: which recursive routine to call, its destination
// and operand slices, its n2/dna/dnb shape, and its own private scratch.
type recursiveArgs struct {
	r, a, b       []uint64
	n2, dna, dnb  int
	t             []uint64
	budget        *Budget
	partRecursive bool
}

func (ra *recursiveArgs) run() {
	if ra.partRecursive {
		MulPartRecursive(ra.r, ra.a, ra.b, ra.n2, ra.dna, ra.dnb, ra.t, ra.budget)
	} else {
		MulRecursive(ra.r, ra.a, ra.b, ra.n2, ra.dna, ra.dnb, ra.t, ra.budget)
	}
}

// spawner fans out up to three sibling subproblems of a single recursive
// frame, spawning each as its own goroutine when the frame is large
// enough to bother and the shared budget has a slot free, and running it
// inline (reusing the frame's own tail scratch) otherwise. Inline calls
// never run concurrently with each other, so they can safely share one
// reused tail buffer.
type spawner struct {
	wg       sync.WaitGroup
	budget   *Budget
	eligible bool // this frame's own n2 clears MinParallelN2
	tail     []uint64
}

func newSpawner(budget *Budget, frameN2 int, tail []uint64) *spawner {
	return &spawner{budget: budget, eligible: frameN2 >= MinParallelN2, tail: tail}
}

// run schedules one subproblem. childN2 is the child recursive call's own
// n2 (always half of the enclosing frame's, per the Karatsuba split), and
// freshScratch sizes the buffer given to a spawned (non-inline) child.
func (s *spawner) run(r, a, b []uint64, childN2, dna, dnb int, partRecursive bool, freshScratch int) {
	if s.eligible && s.budget.TryAcquire() {
		ra := &recursiveArgs{
			r: r, a: a, b: b,
			n2: childN2, dna: dna, dnb: dnb,
			t:             make([]uint64, freshScratch),
			budget:        s.budget,
			partRecursive: partRecursive,
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.budget.Release()
			ra.run()
		}()
		return
	}
	ra := &recursiveArgs{
		r: r, a: a, b: b,
		n2: childN2, dna: dna, dnb: dnb,
		t:             s.tail,
		budget:        s.budget,
		partRecursive: partRecursive,
	}
	ra.run()
}

func (s *spawner) wait() { s.wg.Wait() }
