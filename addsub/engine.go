package addsub

import (
	"errors"
	"sync"
)

// ErrArg2LessThanArg3 is returned by USub when a's magnitude is smaller
// than b's: the unsigned-subtract contract requires the first argument
// be at least the second.
var ErrArg2LessThanArg3 = errors.New("addsub: usub requires a >= b")

// NumThreads is the default worker fan-out for UAdd/USub.
var NumThreads = 16

// UAdd computes r = a + b for unsigned little-endian word magnitudes and
// returns the number of significant words the (unnormalized) result
// occupies in r. r must have length at least max(len(a),len(b))+1. r may
// alias a or b.
func UAdd(r, a, b []uint64, numWorkers int) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	maxN, minN := len(a), len(b)

	chunks := partition(minN, numWorkers)
	args := make([]Args, len(chunks))
	var wg sync.WaitGroup
	for i, c := range chunks {
		args[i] = Args{A: a[c.lo:c.hi], B: b[c.lo:c.hi], R: r[c.lo:c.hi], N: c.hi - c.lo, Op: OpAdd}
		wg.Add(1)
		go func(ar *Args) {
			defer wg.Done()
			ar.run()
		}(&args[i])
	}
	wg.Wait()

	for i := 0; i < len(args)-1; i++ {
		resolveCarry(args[i].Carry, r[chunks[i+1].lo:chunks[i+1].hi], &args[i+1].Carry)
	}
	var carry uint64
	if len(args) > 0 {
		carry = args[len(args)-1].Carry
	}

	if maxN > minN {
		carry = rippleTrailingAdd(r[minN:maxN], a[minN:maxN], carry)
	}
	r[maxN] = carry
	top := maxN
	if carry != 0 {
		top++
	}
	return top
}

// USub computes r = a - b for unsigned little-endian word magnitudes,
// requiring a >= b, and returns the result's trimmed top. r must have
// length at least len(a) and is indeterminate when USub errors. r may
// alias a or b.
func USub(r, a, b []uint64, numWorkers int) (int, error) {
	maxN, minN := len(a), len(b)
	if maxN < minN {
		return 0, ErrArg2LessThanArg3
	}

	chunks := partition(minN, numWorkers)
	args := make([]Args, len(chunks))
	var wg sync.WaitGroup
	for i, c := range chunks {
		args[i] = Args{A: a[c.lo:c.hi], B: b[c.lo:c.hi], R: r[c.lo:c.hi], N: c.hi - c.lo, Op: OpSub}
		wg.Add(1)
		go func(ar *Args) {
			defer wg.Done()
			ar.run()
		}(&args[i])
	}
	wg.Wait()

	for i := 0; i < len(args)-1; i++ {
		resolveBorrow(args[i].Carry, r[chunks[i+1].lo:chunks[i+1].hi], &args[i+1].Carry)
	}
	var borrow uint64
	if len(args) > 0 {
		borrow = args[len(args)-1].Carry
	}

	if maxN > minN {
		borrow = rippleTrailingSub(r[minN:maxN], a[minN:maxN], borrow)
	}
	if borrow != 0 {
		return 0, ErrArg2LessThanArg3
	}

	top := maxN
	for top > 0 && r[top-1] == 0 {
		top--
	}
	return top, nil
}

// resolveCarry ripples a chunk-boundary carry into the start of the next
// chunk's already-computed words, stopping as soon as a word doesn't
// overflow. If the carry survives the whole segment it is folded into
// outCarry for the next boundary (or the final carry-out).
func resolveCarry(carryIn uint64, seg []uint64, outCarry *uint64) {
	carry := carryIn
	i := 0
	for carry != 0 && i < len(seg) {
		seg[i] += carry
		if seg[i] < carry {
			carry = 1
		} else {
			carry = 0
		}
		i++
	}
	if i == len(seg) {
		*outCarry += carry
	}
}

// resolveBorrow is resolveCarry's subtraction counterpart.
func resolveBorrow(borrowIn uint64, seg []uint64, outBorrow *uint64) {
	borrow := borrowIn
	i := 0
	for borrow != 0 && i < len(seg) {
		old := seg[i]
		seg[i] = old - borrow
		if seg[i] > old {
			borrow = 1
		} else {
			borrow = 0
		}
		i++
	}
	if i == len(seg) {
		*outBorrow += borrow
	}
}

// rippleTrailingAdd folds a carry through the longer operand's trailing
// words once the shorter operand has been exhausted.
func rippleTrailingAdd(r, aTail []uint64, carry uint64) uint64 {
	for i := range aTail {
		t := aTail[i] + carry
		r[i] = t
		if t != 0 {
			carry = 0
		}
	}
	return carry
}

// rippleTrailingSub is rippleTrailingAdd's subtraction counterpart. The
// continuation test is on the *pre-subtraction* word, unlike the add
// case, because underflow here only depends on whether the operand word
// was zero.
func rippleTrailingSub(r, aTail []uint64, borrow uint64) uint64 {
	for i := range aTail {
		t := aTail[i]
		r[i] = t - borrow
		if t != 0 {
			borrow = 0
		}
	}
	return borrow
}
