package kernel

import "math/bits"

// MulWords computes r[i] = low64(a[i]*w) for i in [0,n) with the resulting
// high-word carry propagated into the next word, returning the final carry
// out.
func MulWords(r, a []uint64, n int, w uint64) uint64 {
	var carry uint64
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul64(a[i], w)
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		r[i] = lo
		carry = hi + c
	}
	return carry
}

// MulAddWords computes r[i] += a[i]*w for i in [0,n), propagating both the
// multiply's high-word carry and r's own addition carry, and returns the
// final carry out.
func MulAddWords(r, a []uint64, n int, w uint64) uint64 {
	var carry uint64
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul64(a[i], w)
		var c1, c2 uint64
		lo, c1 = bits.Add64(lo, carry, 0)
		lo, c2 = bits.Add64(lo, r[i], 0)
		r[i] = lo
		carry = hi + c1 + c2
	}
	return carry
}

// MulComba8 computes the full 16-word product of two fixed 8-word
// operands into r. It is the fixed-size leaf multiplier the recursive
// Karatsuba scheduler bottoms out on: the result is identical to the
// column sum a register-blocked Comba kernel would produce, just
// expressed as the schoolbook recurrence rather than an unrolled,
// column-ordered accumulation.
func MulComba8(r, a, b []uint64) {
	_ = a[:8]
	_ = b[:8]
	_ = r[:16]
	r[8] = MulWords(r[:8], a[:8], 8, b[0])
	for j := 1; j < 8; j++ {
		r[8+j] = MulAddWords(r[j:j+8], a[:8], 8, b[j])
	}
}

// MulLowNormal computes only the low n words of the n-by-n product a*b,
// discarding everything at or above position n. Each successive digit of
// b contributes over a shrinking window of a so that no word beyond the
// low n of the result is ever touched.
func MulLowNormal(r, a, b []uint64, n int) {
	MulWords(r, a, n, b[0])
	rem := n
	offset := 1
	for {
		rem--
		if rem <= 0 {
			return
		}
		MulAddWords(r[offset:offset+rem], a[:rem], rem, b[offset])
		offset++
	}
}
