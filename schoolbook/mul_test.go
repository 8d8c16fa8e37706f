package schoolbook

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func wordsToBig(w []uint64) *big.Int {
	z := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), 64)
	for i := len(w) - 1; i >= 0; i-- {
		z.Mul(z, base)
		z.Add(z, new(big.Int).SetUint64(w[i]))
	}
	return z
}

func bigToWords(x *big.Int, n int) []uint64 {
	w := make([]uint64, n)
	tmp := new(big.Int).Set(x)
	mask := new(big.Int).SetUint64(^uint64(0))
	for i := 0; i < n; i++ {
		word := new(big.Int).And(tmp, mask)
		w[i] = word.Uint64()
		tmp.Rsh(tmp, 64)
	}
	return w
}

func TestMulSeqMatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := randomWords(rng, 5)
	b := randomWords(rng, 3)
	r := make([]uint64, len(a)+len(b))
	MulSeq(r, a, b)

	want := new(big.Int).Mul(wordsToBig(a), wordsToBig(b))
	require.Equal(t, bigToWords(want, len(r)), r)
}

func TestMulNormalMatchesSequentialAcrossWorkerCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := randomWords(rng, 200)
	b := randomWords(rng, 180)

	rSeq := make([]uint64, len(a)+len(b))
	MulSeq(rSeq, a, b)

	for _, workers := range []int{1, 2, 4, 16} {
		r := make([]uint64, len(a)+len(b))
		MulNormal(r, a, b, workers)
		require.Equal(t, rSeq, r, "workers=%d", workers)
	}
}

func TestMulNormalSwapsToPutLongerOperandFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	a := randomWords(rng, 4)
	b := randomWords(rng, 50)

	r := make([]uint64, len(a)+len(b))
	MulNormal(r, a, b, 8)

	want := new(big.Int).Mul(wordsToBig(a), wordsToBig(b))
	require.Equal(t, bigToWords(want, len(r)), r)
}

func randomWords(rng *rand.Rand, n int) []uint64 {
	w := make([]uint64, n)
	for i := range w {
		w[i] = rng.Uint64()
	}
	if w[n-1] == 0 {
		w[n-1] = 1
	}
	return w
}
