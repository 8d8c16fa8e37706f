package schoolbook

import (
	"sync"

	"github.com/rezaramadhan/parbig/kernel"
	"github.com/samber/lo"
)

// NumThreads is the default worker fan-out for MulNormal. The window in
// which parallel schoolbook beats sequential schoolbook without beating
// Karatsuba is narrow, so the fan-out stays small.
var NumThreads = 2

// MinParallelWords is the threshold (in words of the shorter operand)
// at or below which MulNormal always runs sequentially.
var MinParallelWords = 32

// MulSeq computes the full len(a)+len(b)-word product r = a*b by
// repeatedly calling the multiply-and-accumulate word kernel, one digit
// of b at a time. An empty operand zeroes the product region. This is
// what the Karatsuba scheduler calls directly for its sequential base
// case.
func MulSeq(r, a, b []uint64) {
	na, nb := len(a), len(b)
	if na == 0 || nb == 0 {
		for i := range r[:na+nb] {
			r[i] = 0
		}
		return
	}
	r[na] = kernel.MulWords(r[:na], a, na, b[0])
	for j := 1; j < nb; j++ {
		r[na+j] = kernel.MulAddWords(r[j:j+na], a, na, b[j])
	}
}

// MulNormal computes r = a*b, dispatching to a K-way parallel digit-chunk
// multiply once the shorter operand is longer than MinParallelWords words
// and numWorkers > 1, falling back to MulSeq otherwise. r must have
// length len(a)+len(b) and must not alias a or b.
func MulNormal(r, a, b []uint64, numWorkers int) {
	if len(a) < len(b) {
		a, b = b, a
	}
	na, nb := len(a), len(b)
	if nb <= MinParallelWords || numWorkers <= 1 {
		MulSeq(r[:na+nb], a, b)
		return
	}

	chunks := partitionDigits(nb, numWorkers)
	bufs := make([][]uint64, len(chunks))
	var wg sync.WaitGroup
	for i, c := range chunks {
		i, c := i, c
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := c.hi - c.lo
			buf := make([]uint64, na+n)
			MulSeq(buf, a, b[c.lo:c.hi])
			bufs[i] = buf
		}()
	}
	wg.Wait()

	for i := range r[:na+nb] {
		r[i] = 0
	}
	offset := 0
	for i, c := range chunks {
		n := c.hi - c.lo
		nr := na + n
		carry := kernel.AddWords(r[offset:offset+nr], r[offset:offset+nr], bufs[i], nr)
		if i != len(chunks)-1 {
			r[offset+nr] = carry
		}
		offset += n
	}
}

type digitChunk struct{ lo, hi int }

// partitionDigits splits b's nb digits into k contiguous chunks, the
// last absorbing the remainder, the same chunking the addsub engine
// applies to its shared prefix.
func partitionDigits(nb, k int) []digitChunk {
	k = lo.Ternary(k < 1, 1, k)
	k = lo.Ternary(k > nb, nb, k)
	size := nb / k
	chunks := make([]digitChunk, k)
	start := 0
	for i := 0; i < k; i++ {
		hi := start + size
		if i == k-1 {
			hi = nb
		}
		chunks[i] = digitChunk{start, hi}
		start = hi
	}
	return chunks
}
