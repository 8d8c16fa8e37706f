// Package addsub implements the parallel unsigned add/subtract engine:
// partition the shared [0,min) range of two word slices into K
// contiguous chunks, run the add or subtract word kernel on each chunk
// concurrently, then resolve the carry or borrow produced at each chunk
// boundary strictly sequentially before rippling through whatever
// trailing words the longer operand has beyond min. The sequential
// resolution order makes the result independent of goroutine
// scheduling.
//
// The package operates on raw little-endian word slices rather than on
// parbig.Int, so that it has no dependency back on the root package; the
// root package is responsible for sign handling and for trimming the
// result's top.
package addsub
