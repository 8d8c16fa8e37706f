package addsub

import "github.com/samber/lo"

// chunk is a half-open index range [lo,hi) of the shared [0,min) prefix
// two operands both have words in.
type chunk struct{ lo, hi int }

// partition splits [0,n) into at most k contiguous chunks of floor(n/k)
// words, with the last chunk absorbing the remainder. When there are
// fewer words than requested workers, k is clipped down to n so no chunk
// is empty.
func partition(n, k int) []chunk {
	if n <= 0 {
		return nil
	}
	k = lo.Ternary(k < 1, 1, k)
	k = lo.Ternary(k > n, n, k)
	size := n / k
	chunks := make([]chunk, k)
	start := 0
	for i := 0; i < k; i++ {
		hi := start + size
		if i == k-1 {
			hi = n
		}
		chunks[i] = chunk{start, hi}
		start = hi
	}
	return chunks
}
