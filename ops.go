package parbig

import (
	"math/bits"

	"github.com/rezaramadhan/parbig/addsub"
	"github.com/rezaramadhan/parbig/arena"
	"github.com/rezaramadhan/parbig/karatsuba"
	"github.com/rezaramadhan/parbig/kernel"
	"github.com/rezaramadhan/parbig/schoolbook"
)

// UAdd computes r = |a| + |b|, ignoring any sign a and b carry, and
// returns r with neg cleared. r may alias a or b.
func UAdd(r, a, b *Int) *Int {
	aw := append([]Word(nil), a.d[:a.top]...)
	bw := append([]Word(nil), b.d[:b.top]...)
	maxN := max(len(aw), len(bw))

	r.expand(maxN + 1)
	top := addsub.UAdd(r.d, aw, bw, addsub.NumThreads)
	r.top = top
	r.neg = false
	r.flags = 0
	return r
}

// USub computes r = |a| - |b|, requiring |a| >= |b|, and returns r with
// neg cleared. On error r is untouched. r may alias a or b.
func USub(r, a, b *Int) error {
	if a.CmpAbs(b) < 0 {
		return ErrArg2LessThanArg3
	}
	aw := append([]Word(nil), a.d[:a.top]...)
	bw := append([]Word(nil), b.d[:b.top]...)

	r.expand(len(aw))
	top, err := addsub.USub(r.d, aw, bw, addsub.NumThreads)
	if err != nil {
		return argError("usub requires |a| >= |b|", err)
	}
	r.top = top
	r.neg = false
	r.flags = 0
	return nil
}

// Add computes the signed sum r = a + b.
func Add(r, a, b *Int) *Int {
	if a.neg == b.neg {
		sign := a.neg
		UAdd(r, a, b)
		r.neg = sign && r.top > 0
		return r
	}
	if a.CmpAbs(b) >= 0 {
		sign := a.neg
		_ = USub(r, a, b)
		r.neg = sign && r.top > 0
	} else {
		sign := b.neg
		_ = USub(r, b, a)
		r.neg = sign && r.top > 0
	}
	return r
}

// Sub computes the signed difference r = a - b. It is equivalent to
// add(a, -b) but realised directly from a's and b's signs and |a|
// vs |b|, deriving r's sign from the value a-b itself rather than from
// an intermediate case flag.
func Sub(r, a, b *Int) *Int {
	if a.neg != b.neg {
		sign := a.neg
		UAdd(r, a, b)
		r.neg = sign && r.top > 0
		return r
	}
	if a.CmpAbs(b) >= 0 {
		sign := a.neg
		_ = USub(r, a, b)
		r.neg = sign && r.top > 0
	} else {
		sign := !a.neg
		_ = USub(r, b, a)
		r.neg = sign && r.top > 0
	}
	return r
}

// Mul computes r = a*b, using ctx for scratch whenever r aliases a or b
// or the dispatched algorithm needs working memory it doesn't own. It
// picks, in order: the 8-word Comba kernel for two exactly-8-word
// operands, budgeted recursive Karatsuba for large near-balanced
// operands, and the parallel schoolbook multiplier otherwise.
func Mul(r, a, b *Int, ctx *arena.Context) error {
	al, bl := a.top, b.top
	if al == 0 || bl == 0 {
		r.zero()
		return nil
	}
	top := al + bl
	aw, bw := a.d[:al], b.d[:bl]
	i := al - bl

	ctx.Start()
	defer ctx.End()

	rr := r
	aliased := r == a || r == b
	if aliased {
		rr = &Int{}
	}
	growDest := func(n int) error {
		if aliased {
			return rr.expandFromArena(ctx, n)
		}
		rr.expand(n)
		return nil
	}

	switch {
	case al == 8 && bl == 8:
		if err := growDest(16); err != nil {
			return resourceError("scratch allocation failed", err)
		}
		kernel.MulComba8(rr.d, aw, bw)

	case al >= BNMullSizeNormal && bl >= BNMullSizeNormal && i >= -1 && i <= 1:
		j := highestPowerOfTwoLE(max(al, bl))
		k := j + j
		budget := karatsuba.NewBudget(karatsuba.NumThreads)
		budget.TryAcquire() // the calling goroutine itself occupies one slot
		tScratch, err := ctx.Get()
		if err != nil {
			return resourceError("scratch allocation failed", err)
		}
		if al > j || bl > j {
			if err := growDest(k * 4); err != nil {
				return resourceError("scratch allocation failed", err)
			}
			t := tScratch.Words(k * 4)
			karatsuba.MulPartRecursive(rr.d, aw, bw, j, al-j, bl-j, t, budget)
		} else {
			if err := growDest(k * 2); err != nil {
				return resourceError("scratch allocation failed", err)
			}
			t := tScratch.Words(k * 2)
			karatsuba.MulRecursive(rr.d, aw, bw, j, al-j, bl-j, t, budget)
		}

	default:
		if err := growDest(top); err != nil {
			return resourceError("scratch allocation failed", err)
		}
		schoolbook.MulNormal(rr.d, aw, bw, schoolbook.NumThreads)
	}

	rr.top = top
	rr.neg = a.neg != b.neg
	rr.flags = FlagFixedTop

	if rr != r {
		// rr's words live in arena scratch that is recycled at End, so
		// they are copied back rather than aliased.
		r.expand(rr.top)
		copy(r.d[:rr.top], rr.d[:rr.top])
		r.top, r.neg, r.flags = rr.top, rr.neg, rr.flags
	}
	r.normalise()
	r.flags &^= FlagFixedTop
	return nil
}

// highestPowerOfTwoLE returns the largest power of two <= n (n > 0).
func highestPowerOfTwoLE(n int) int {
	return 1 << (bits.Len(uint(n)) - 1)
}
