package kernel

import "math/bits"

// AddWords computes r[i] = a[i] + b[i] for i in [0,n) with carry
// propagation across the slice, returning the final carry out (0 or 1).
// r may alias a or b.
func AddWords(r, a, b []uint64, n int) uint64 {
	var carry uint64
	for i := 0; i < n; i++ {
		r[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return carry
}

// SubWords computes r[i] = a[i] - b[i] for i in [0,n) with borrow
// propagation across the slice, returning the final borrow out (0 or 1).
// r may alias a or b.
func SubWords(r, a, b []uint64, n int) uint64 {
	var borrow uint64
	for i := 0; i < n; i++ {
		r[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return borrow
}

// cmpWords compares two n-word arrays from the most significant word down,
// returning -1, 0 or 1.
func cmpWords(a, b []uint64, n int) int {
	for i := n - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// CmpPartWords compares two operands of potentially unequal length that
// share a common prefix length cl, with dl = len(a)-len(b) describing
// which side carries the extra dl trailing (more significant) words.
//
// When dl<0, b has -dl extra high words that decide the comparison if
// any are nonzero; when dl>0, a does. Falling through to a plain
// cl-word comparison handles the dl==0 case and the case where the
// extra high words are all zero.
func CmpPartWords(a, b []uint64, cl, dl int) int {
	n := cl - 1
	if dl < 0 {
		for i := dl; i < 0; i++ {
			if b[n-i] != 0 {
				return -1
			}
		}
	}
	if dl > 0 {
		for i := dl; i > 0; i-- {
			if a[n+i] != 0 {
				return 1
			}
		}
	}
	return cmpWords(a, b, cl)
}

// SubPartWords computes r = a - b where a and b share a common prefix of
// length cl and then diverge by dl extra trailing words (dl<0: b has
// -dl extra words subtracted from an implicit zero; dl>0: a has dl extra
// words copied through, folding the outstanding borrow). Returns the
// final borrow out.
func SubPartWords(r, a, b []uint64, cl, dl int) uint64 {
	borrow := SubWords(r, a, b, cl)
	if dl == 0 {
		return borrow
	}
	r, a, b = r[cl:], a[cl:], b[cl:]
	if dl < 0 {
		n := -dl
		for i := 0; i < n; i++ {
			t := b[i]
			r[i] = 0 - t - borrow
			if t != 0 {
				borrow = 1
			}
		}
		return borrow
	}
	n := dl
	i := 0
	for ; borrow != 0 && i < n; i++ {
		t := a[i]
		r[i] = t - borrow
		if t != 0 {
			borrow = 0
		}
	}
	for ; i < n; i++ {
		r[i] = a[i]
	}
	return borrow
}
