// Package schoolbook implements the parallel "normal" (schoolbook)
// multiplier: for operands at or below the parallelization threshold it runs a
// single sequential digit-by-digit accumulation; above it, it partitions
// the shorter operand's digits into K chunks, multiplies each chunk
// against the full longer operand into a private buffer concurrently,
// then folds the buffers into the destination at staggered offsets with
// an inter-chunk carry.
//
// This is also the base case the Karatsuba scheduler in parbig/karatsuba
// bottoms out on for operand sizes below its own recursion cutoff, via
// MulSeq.
package schoolbook
