package karatsuba

import (
	"github.com/rezaramadhan/parbig/kernel"
	"github.com/rezaramadhan/parbig/schoolbook"
)

// MulRecursive computes the 2*n2-word product r = a*b for a balanced
// power-of-two split: a and b are each n2 words, except their high halves
// may fall short by dna and dnb words respectively (both <= 0). t is
// scratch of at least 2*n2 words; budget gates how many of this frame's
// up-to-three subproblems spawn a goroutine instead of running inline.
func MulRecursive(r, a, b []uint64, n2, dna, dnb int, t []uint64, budget *Budget) {
	n := n2 / 2
	tna, tnb := n+dna, n+dnb

	if n2 == 8 && dna == 0 && dnb == 0 {
		kernel.MulComba8(r, a, b)
		return
	}
	if n2 < BNMulRecursiveSizeNormal {
		na, nb := n2+dna, n2+dnb
		schoolbook.MulSeq(r[:na+nb], a[:na], b[:nb])
		for i := na + nb; i < 2*n2; i++ {
			r[i] = 0
		}
		return
	}

	neg, zero := middleTermDiff(t, a, b, n, tna, tnb)

	sp := newSpawner(budget, n2, make([]uint64, 2*n))
	if !zero {
		sp.run(t[n2:2*n2], t[:n], t[n:n2], n, 0, 0, false, 2*n)
	} else {
		for i := n2; i < 2*n2; i++ {
			t[i] = 0
		}
	}
	sp.run(r[:n2], a[:n], b[:n], n, 0, 0, false, 2*n)
	sp.run(r[n2:2*n2], a[n:], b[n:], n, dna, dnb, false, 2*n)
	sp.wait()

	combine(r, t, n, n2, neg)
}

// MulPartRecursive computes the product r = a*b into the 4*n words
// r[:2*n2] (n2 = 2*n, zero-padded above the product) for operands
// whose high halves are n words wide but only carry tna and tnb
// significant words respectively (0 <= tna,tnb < n), the shape the
// top-level dispatch uses whenever the operands aren't an even
// power-of-two multiple of each other. The two tail lengths must not
// differ by more than one. t is scratch of at least 4*n words. Unlike
// MulRecursive, the cross-term "zero" shortcut is never taken here.
func MulPartRecursive(r, a, b []uint64, n, tna, tnb int, t []uint64, budget *Budget) {
	n2 := n * 2

	if n < 8 {
		na, nb := n+tna, n+tnb
		schoolbook.MulSeq(r[:na+nb], a[:na], b[:nb])
		return
	}

	neg := middleTermDiffAlways(t, a, b, n, tna, tnb)

	if n == 8 {
		kernel.MulComba8(t[n2:], t[:n], t[n:n2])
		kernel.MulComba8(r, a[:8], b[:8])
		schoolbook.MulSeq(r[n2:n2+tna+tnb], a[n:n+tna], b[n:n+tnb])
		for i := n2 + tna + tnb; i < 2*n2; i++ {
			r[i] = 0
		}
		combine(r, t, n, n2, neg)
		return
	}

	sp := newSpawner(budget, n2, make([]uint64, 2*n))
	sp.run(t[n2:2*n2], t[:n], t[n:n2], n, 0, 0, false, 2*n)
	sp.run(r[:n2], a[:n], b[:n], n, 0, 0, false, 2*n)

	i := n / 2
	j := tnb - i
	if tna > tnb {
		j = tna - i
	}
	switch {
	case j == 0:
		sp.run(r[n2:], a[n:], b[n:], i, tna-i, tnb-i, false, 2*i)
		sp.wait()
		for k := n2 + i*2; k < 2*n2; k++ {
			r[k] = 0
		}
	case j > 0:
		sp.run(r[n2:], a[n:], b[n:], i, tna-i, tnb-i, true, 4*i)
		sp.wait()
		for k := n2 + tna + tnb; k < 2*n2; k++ {
			r[k] = 0
		}
	default: // j < 0
		for k := n2; k < 2*n2; k++ {
			r[k] = 0
		}
		if tna < BNMulRecursiveSizeNormal && tnb < BNMulRecursiveSizeNormal {
			schoolbook.MulNormal(r[n2:n2+tna+tnb], a[n:n+tna], b[n:n+tnb], 1)
			sp.wait()
		} else {
			for {
				i /= 2
				if i < tna || i < tnb {
					sp.run(r[n2:], a[n:], b[n:], i, tna-i, tnb-i, true, 4*i)
					break
				} else if i == tna || i == tnb {
					sp.run(r[n2:], a[n:], b[n:], i, tna-i, tnb-i, false, 2*i)
					break
				}
			}
			sp.wait()
		}
	}

	combine(r, t, n, n2, neg)
}

// middleTermDiff computes t[0:n] = the larger-magnitude of (a_L,a_H) minus
// the other, and t[n:2n] likewise for (b_H,b_L), choosing the subtraction
// order so the product of the two differences comes out with the right
// sign for the cross term (a_L-a_H)*(b_H-b_L). It reports that sign (neg)
// and, for the balanced MulRecursive caller only, whether the cross term
// collapses to zero because a_L==a_H or b_L==b_H.
func middleTermDiff(t, a, b []uint64, n, tna, tnb int) (neg, zero bool) {
	c1 := kernel.CmpPartWords(a, a[n:], tna, n-tna)
	c2 := kernel.CmpPartWords(b[n:], b, tnb, tnb-n)
	switch c1*3 + c2 {
	case -4:
		kernel.SubPartWords(t, a[n:], a, tna, tna-n)
		kernel.SubPartWords(t[n:], b, b[n:], tnb, n-tnb)
	case -3, -1, 0, 1, 3:
		zero = true
	case -2:
		kernel.SubPartWords(t, a[n:], a, tna, tna-n)
		kernel.SubPartWords(t[n:], b[n:], b, tnb, tnb-n)
		neg = true
	case 2:
		kernel.SubPartWords(t, a, a[n:], tna, n-tna)
		kernel.SubPartWords(t[n:], b, b[n:], tnb, n-tnb)
		neg = true
	case 4:
		kernel.SubPartWords(t, a, a[n:], tna, n-tna)
		kernel.SubPartWords(t[n:], b[n:], b, tnb, tnb-n)
	}
	return neg, zero
}

// middleTermDiffAlways is middleTermDiff's counterpart for
// MulPartRecursive: it always computes the cross-term difference, never
// taking the zero shortcut, which shifts which sign combinations fall
// into the "a_L,a_H" vs "a_H,a_L" ordering.
func middleTermDiffAlways(t, a, b []uint64, n, tna, tnb int) (neg bool) {
	c1 := kernel.CmpPartWords(a, a[n:], tna, n-tna)
	c2 := kernel.CmpPartWords(b[n:], b, tnb, tnb-n)
	switch c1*3 + c2 {
	case -4:
		kernel.SubPartWords(t, a[n:], a, tna, tna-n)
		kernel.SubPartWords(t[n:], b, b[n:], tnb, n-tnb)
	case -3, -2:
		kernel.SubPartWords(t, a[n:], a, tna, tna-n)
		kernel.SubPartWords(t[n:], b[n:], b, tnb, tnb-n)
		neg = true
	case -1, 0, 1, 2:
		kernel.SubPartWords(t, a, a[n:], tna, n-tna)
		kernel.SubPartWords(t[n:], b, b[n:], tnb, n-tnb)
		neg = true
	case 3, 4:
		kernel.SubPartWords(t, a, a[n:], tna, n-tna)
		kernel.SubPartWords(t[n:], b[n:], b, tnb, tnb-n)
	}
	return neg
}

// combine folds the low-half product r[:full], high-half product
// r[full:2*full] and middle cross-term t[full:2*full] into the final
// 2*full-word result: t[:full] first takes the sum of the two half
// products, the cross-term is subtracted from or added to it (per neg)
// with the result left in t[full:2*full], and that is added in at
// r[half:], rippling any resulting carry from r[half+full] upward. half
// and full are MulRecursive's (n, n2) or MulPartRecursive's (n, n*2).
func combine(r, t []uint64, half, full int, neg bool) {
	c1 := int(kernel.AddWords(t[:full], r[:full], r[full:2*full], full))
	if neg {
		c1 -= int(kernel.SubWords(t[full:2*full], t[:full], t[full:2*full], full))
	} else {
		c1 += int(kernel.AddWords(t[full:2*full], t[full:2*full], t[:full], full))
	}
	c1 += int(kernel.AddWords(r[half:half+full], r[half:half+full], t[full:2*full], full))
	rippleSigned(r[half+full:], c1)
}

// rippleSigned folds a signed correction c into r: the full magnitude of
// c is applied to r[0] in a single step, and only if that step itself
// overflows (c > 0) or underflows (c < 0) does a plain +-1 carry/borrow
// propagate into successive words, continuing only while each word wraps
// in turn. c's magnitude can exceed 1 because the combine step chains
// three carry-producing kernel calls into it.
func rippleSigned(r []uint64, c int) {
	if c == 0 {
		return
	}
	if c > 0 {
		cu := uint64(c)
		old := r[0]
		r[0] = old + cu
		if r[0] >= old {
			return
		}
		for i := 1; ; i++ {
			r[i]++
			if r[i] != 0 {
				return
			}
		}
	}
	cu := uint64(-c)
	old := r[0]
	r[0] = old - cu
	if old >= cu {
		return
	}
	for i := 1; ; i++ {
		if r[i] != 0 {
			r[i]--
			return
		}
		r[i]--
	}
}
