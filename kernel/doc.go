// Package kernel implements the fixed-width word primitives the rest of
// parbig is built on: carry/borrow-producing add and subtract, the
// partial-length comparison and subtraction used by the Karatsuba sign
// dispatch, and the multiply-and-accumulate primitives the schoolbook
// and Karatsuba schedulers drive in parallel.
//
// The functions here are the full word-level contract: everything above
// this package runs its segment arithmetic through these signatures,
// touching individual limbs only in the carry/borrow ripple and zeroing
// steps of addsub and karatsuba. The implementation is pure Go on top
// of math/bits.
package kernel
