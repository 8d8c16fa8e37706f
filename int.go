package parbig

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/rezaramadhan/parbig/arena"
)

// Word is the machine-word type the representation is built from; the
// digit base is 2^64.
type Word = uint64

// Flag is a bitset of per-Int representation flags.
type Flag uint32

const (
	// FlagFixedTop marks a result whose top may be over-reported: words
	// at index >= top are zero-padded out to cap rather than trimmed.
	// Mul sets it on its raw product, normalises, then clears it.
	FlagFixedTop Flag = 1 << iota
)

// Int is a multi-precision integer: an ordered, least-significant-word-first
// slice of words, a sign, and a flag bitset. The zero value is a valid
// representation of 0.
type Int struct {
	d     []Word
	top   int
	neg   bool
	flags Flag
}

// NewInt returns a new Int representing zero.
func NewInt() *Int { return &Int{} }

// Top reports the number of significant words.
func (x *Int) Top() int { return x.top }

// Neg reports whether x is negative. A zero Int is never negative.
func (x *Int) Neg() bool { return x.neg }

// Words returns x's significant words, least-significant first. The
// returned slice aliases x's storage and must not be retained past the
// next mutation of x.
func (x *Int) Words() []Word { return x.d[:x.top] }

// expand grows x's backing array to at least capWords words without
// changing x's numeric value.
func (x *Int) expand(capWords int) {
	if cap(x.d) >= capWords {
		if len(x.d) < capWords {
			x.d = x.d[:cap(x.d)]
		}
		return
	}
	grown := make([]Word, capWords)
	copy(grown, x.d)
	x.d = grown
}

// expandFromArena points x's backing array at an n-word scratch buffer
// vended by ctx, for use as the multiply destination when it must not
// alias an operand.
func (x *Int) expandFromArena(ctx *arena.Context, n int) error {
	s, err := ctx.Get()
	if err != nil {
		return err
	}
	x.d = s.Words(n)
	return nil
}

// normalise trims trailing zero words and clears neg on zero. It leaves
// flags alone; clearing FlagFixedTop afterwards is the caller's job.
func (x *Int) normalise() {
	for x.top > 0 && x.d[x.top-1] == 0 {
		x.top--
	}
	if x.top == 0 {
		x.neg = false
	}
}

// zero resets x to the canonical representation of 0.
func (x *Int) zero() {
	x.top = 0
	x.neg = false
	x.flags = 0
}

// Copy returns an independent copy of x.
func (x *Int) Copy() *Int {
	c := &Int{d: make([]Word, x.top), top: x.top, neg: x.neg}
	copy(c.d, x.d[:x.top])
	return c
}

// SetUint64 sets x to the unsigned value v and returns x.
func (x *Int) SetUint64(v uint64) *Int {
	x.expand(1)
	x.d[0] = v
	x.top = 1
	x.neg = false
	x.flags = 0
	x.normalise()
	return x
}

// SetWords sets x's magnitude to words (least-significant first, copied
// rather than aliased) with the given sign, and returns x.
func (x *Int) SetWords(words []Word, neg bool) *Int {
	x.expand(len(words))
	n := copy(x.d, words)
	for i := n; i < len(x.d); i++ {
		x.d[i] = 0
	}
	x.top = len(words)
	x.neg = neg
	x.flags = 0
	x.normalise()
	return x
}

// CmpAbs compares the magnitudes of x and y, ignoring sign, returning -1,
// 0, or 1. Both must be normalised (top has no trailing zero word).
func (x *Int) CmpAbs(y *Int) int {
	if x.top != y.top {
		if x.top > y.top {
			return 1
		}
		return -1
	}
	for i := x.top - 1; i >= 0; i-- {
		if x.d[i] != y.d[i] {
			if x.d[i] > y.d[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// SetHex sets x from a sign-prefixed integer literal such as "-0x2a"
// (any base prefix math/big accepts; bare digits parse as decimal). It
// borrows math/big's string parser rather than hand-rolling one, then
// drains the result into x's own word representation.
func (x *Int) SetHex(s string) error {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return argError("invalid hex literal: "+s, nil)
	}
	neg := v.Sign() < 0
	v.Abs(v)
	bits := v.Bits()
	words := make([]Word, len(bits))
	for i, b := range bits {
		words[i] = Word(b)
	}
	x.SetWords(words, neg)
	return nil
}

// String renders x as a sign-prefixed hexadecimal literal, most
// significant word first.
func (x *Int) String() string {
	if x.top == 0 {
		return "0x0"
	}
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	sb.WriteString("0x")
	sb.WriteString(strconv.FormatUint(x.d[x.top-1], 16))
	for i := x.top - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", x.d[i])
	}
	return sb.String()
}
