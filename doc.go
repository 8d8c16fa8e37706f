// Package parbig implements a parallelized arbitrary-precision integer
// arithmetic core: signed and unsigned addition, subtraction, and
// multiplication over word-vector BigInts, built on a carry/borrow
// reconciliation protocol for parallel add/sub (parbig/addsub) and a
// budgeted fan-out/join scheduler for recursive Karatsuba multiplication
// (parbig/karatsuba), falling back to a parallel schoolbook multiplier
// (parbig/schoolbook) for operands too small or too unbalanced for
// Karatsuba to pay for itself.
//
// The public surface is Int (the word-vector representation) and the
// five dispatch functions Add, Sub, UAdd, USub, and Mul. Mul is the only
// operation that needs a scratch arena, vended by parbig/arena, because
// Karatsuba recursion needs working buffers whose lifetime it controls
// independently of the caller's.
//
// This package deliberately contains none of the word-level or
// parallel-engine algorithms itself: those live in kernel, addsub,
// schoolbook, and karatsuba, each importable on its own for callers that
// want the raw little-endian []uint64 contract without the Int wrapper.
package parbig
