// Package karatsuba implements the recursive Karatsuba multiplier and
// its budgeted fan-out/join scheduler: balanced power-of-two operands go
// through MulRecursive, mixed-size operands through MulPartRecursive,
// and both bottom out on schoolbook.MulSeq or kernel.MulComba8 below a
// size cutoff.
//
// Recursive spawning is gated by a Budget, a try-acquire semaphore of
// concurrently live workers: a frame whose own n2 is below MinParallelN2,
// or that cannot get a slot, runs the subproblem inline on its
// own goroutine with its own scratch, so exhaustion degrades to
// ordinary sequential recursion rather than blocking. The numeric
// result is identical either way; the budget only decides where the
// work runs.
package karatsuba
