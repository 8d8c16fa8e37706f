package parbig

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/remyoudompheng/bigfft"
	"github.com/rezaramadhan/parbig/addsub"
	"github.com/rezaramadhan/parbig/arena"
	"github.com/rezaramadhan/parbig/karatsuba"
	"github.com/stretchr/testify/require"
)

const maxWord = ^uint64(0)

func wordsToBig(w []Word) *big.Int {
	z := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), 64)
	for i := len(w) - 1; i >= 0; i-- {
		z.Mul(z, base)
		z.Add(z, new(big.Int).SetUint64(w[i]))
	}
	return z
}

func bigToWords(x *big.Int, n int) []Word {
	w := make([]Word, n)
	tmp := new(big.Int).Set(x)
	mask := new(big.Int).SetUint64(maxWord)
	for i := 0; i < n; i++ {
		w[i] = new(big.Int).And(tmp, mask).Uint64()
		tmp.Rsh(tmp, 64)
	}
	return w
}

func intFromBig(x *big.Int) *Int {
	neg := x.Sign() < 0
	abs := new(big.Int).Abs(x)
	top := (abs.BitLen() + 63) / 64
	return NewInt().SetWords(bigToWords(abs, top), neg)
}

func bigFromInt(x *Int) *big.Int {
	v := wordsToBig(x.Words())
	if x.Neg() {
		v.Neg(v)
	}
	return v
}

func randomWords(rng *rand.Rand, n int) []Word {
	w := make([]Word, n)
	for i := range w {
		w[i] = rng.Uint64()
	}
	if w[n-1] == 0 {
		w[n-1] = 1
	}
	return w
}

// S1 at the Int level: SetWords normalises a to two words and b to one,
// so the shared prefix is a single chunk and the carry ripples through
// a's trailing words (addsub's own S1 test covers chunk boundaries).
func TestUAddCarryChainThroughTrailingWords(t *testing.T) {
	orig := addsub.NumThreads
	addsub.NumThreads = 4
	defer func() { addsub.NumThreads = orig }()

	a := NewInt().SetWords([]Word{maxWord, maxWord, 0, 0}, false)
	b := NewInt().SetUint64(1)
	r := NewInt()

	UAdd(r, a, b)
	require.Equal(t, []Word{0, 0, 1}, r.Words())
	require.Equal(t, 3, r.Top())
}

// S2 at the Int level: SetWords normalises b to one word, so the shared
// prefix is a single chunk and the borrow ripples through a's trailing
// words (addsub's own S2 test covers chunk boundaries).
func TestUSubBorrowThroughTrailingWords(t *testing.T) {
	orig := addsub.NumThreads
	addsub.NumThreads = 4
	defer func() { addsub.NumThreads = orig }()

	a := NewInt().SetWords([]Word{0, 0, 0, 1}, false)
	b := NewInt().SetWords([]Word{1, 0, 0, 0}, false)
	r := NewInt()

	require.NoError(t, USub(r, a, b))
	require.Equal(t, []Word{maxWord, maxWord, maxWord}, r.Words())
	require.Equal(t, 3, r.Top())
}

// S3: unequal-sign cancellation yields canonical +0.
func TestAddUnequalSignCancelsToZero(t *testing.T) {
	a := NewInt().SetUint64(5)
	b := NewInt().SetWords([]Word{5}, true)
	r := NewInt()

	Add(r, a, b)
	require.Equal(t, 0, r.Top())
	require.False(t, r.Neg())
}

func TestSubEquivalentToAddNegated(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		a := intFromBig(big.NewInt(rng.Int63()))
		bv := big.NewInt(rng.Int63())
		b := intFromBig(bv)
		negB := intFromBig(new(big.Int).Neg(bv))

		viaSub := NewInt()
		Sub(viaSub, a, b)
		viaAdd := NewInt()
		Add(viaAdd, a, negB)

		require.Equal(t, bigFromInt(viaAdd), bigFromInt(viaSub))
	}
}

func TestUSubRejectsSmallerFirstOperand(t *testing.T) {
	a := NewInt().SetUint64(1)
	b := NewInt().SetUint64(2)
	err := USub(NewInt(), a, b)
	require.ErrorIs(t, err, ErrArg2LessThanArg3)
	require.Equal(t, ErrKindArgument, err.(*Error).Kind)
}

func TestZeroLaws(t *testing.T) {
	x := intFromBig(big.NewInt(123456789))
	zero := NewInt()
	one := NewInt().SetUint64(1)
	ctx := arena.New()

	sum := NewInt()
	Add(sum, x, zero)
	require.Equal(t, bigFromInt(x), bigFromInt(sum))

	diff := NewInt()
	Sub(diff, x, zero)
	require.Equal(t, bigFromInt(x), bigFromInt(diff))

	prod := NewInt()
	require.NoError(t, Mul(prod, x, zero, ctx))
	require.Equal(t, 0, prod.Top())

	prodOne := NewInt()
	require.NoError(t, Mul(prodOne, x, one, ctx))
	require.Equal(t, bigFromInt(x), bigFromInt(prodOne))
}

// S4: two 8-word operands take the Comba8 dispatch branch.
func TestMulEightWordOperandsMatchBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	a := NewInt().SetWords(randomWords(rng, 8), false)
	b := NewInt().SetWords(randomWords(rng, 8), true)

	r := NewInt()
	ctx := arena.New()
	require.NoError(t, Mul(r, a, b, ctx))
	require.Equal(t, 16, r.Top())
	require.True(t, r.Neg())

	want := new(big.Int).Mul(bigFromInt(a), bigFromInt(b))
	require.Equal(t, want, bigFromInt(r))
}

func TestMulLargeBalancedOperandsMatchBigIntAndBigfft(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	av := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 8192))
	bv := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 8192))
	a := intFromBig(av)
	b := intFromBig(bv)

	r := NewInt()
	ctx := arena.New()
	require.NoError(t, Mul(r, a, b, ctx))

	want := new(big.Int).Mul(av, bv)
	require.Equal(t, want, bigFromInt(r))
	require.Equal(t, want, bigfft.Mul(av, bv))
}

// S6: a tight thread budget degrades to inline recursion without
// changing the numeric result.
func TestMulThreadBudgetDegradation(t *testing.T) {
	orig := karatsuba.NumThreads
	karatsuba.NumThreads = 2
	defer func() { karatsuba.NumThreads = orig }()

	rng := rand.New(rand.NewSource(6))
	a := NewInt().SetWords(randomWords(rng, 1024), false)
	b := NewInt().SetWords(randomWords(rng, 1024), false)

	r := NewInt()
	ctx := arena.New()
	require.NoError(t, Mul(r, a, b, ctx))

	want := new(big.Int).Mul(bigFromInt(a), bigFromInt(b))
	require.Equal(t, want, bigFromInt(r))
}

// Operand lengths just past a power of two (130 and 129 words) route through the mixed-size
// recursion instead of the balanced one.
func TestMulJustPastPowerOfTwoSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	a := NewInt().SetWords(randomWords(rng, 130), false)
	b := NewInt().SetWords(randomWords(rng, 129), false)

	r := NewInt()
	ctx := arena.New()
	require.NoError(t, Mul(r, a, b, ctx))

	want := new(big.Int).Mul(bigFromInt(a), bigFromInt(b))
	require.Equal(t, want, bigFromInt(r))
}

func TestMulAliasingMatchesDisjointResult(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a := NewInt().SetWords(randomWords(rng, 300), false)
	b := NewInt().SetWords(randomWords(rng, 300), false)

	disjoint := NewInt()
	ctx := arena.New()
	require.NoError(t, Mul(disjoint, a, b, ctx))

	aliasA := a.Copy()
	require.NoError(t, Mul(aliasA, aliasA, b, ctx))
	require.Equal(t, bigFromInt(disjoint), bigFromInt(aliasA))

	aliasB := b.Copy()
	require.NoError(t, Mul(aliasB, a, aliasB, ctx))
	require.Equal(t, bigFromInt(disjoint), bigFromInt(aliasB))
}

func TestMulSignXOR(t *testing.T) {
	ctx := arena.New()
	cases := []struct{ negA, negB, want bool }{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, false},
	}
	for _, c := range cases {
		a := NewInt().SetWords([]Word{7}, c.negA)
		b := NewInt().SetWords([]Word{9}, c.negB)
		r := NewInt()
		require.NoError(t, Mul(r, a, b, ctx))
		require.Equal(t, c.want, r.Neg())
	}
}
