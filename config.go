package parbig

// Tunables controlling worker fan-out and recursion cutoffs. Each knob
// lives as an exported var next to the component it governs rather than
// behind a single options struct:
//
//   - addsub.NumThreads            — add/sub chunk fan-out
//   - schoolbook.NumThreads        — schoolbook digit-chunk fan-out
//   - schoolbook.MinParallelWords  — schoolbook parallelization floor
//   - karatsuba.NumThreads         — recursive-multiply thread budget
//   - karatsuba.MinParallelN2      — per-frame spawn floor
//   - karatsuba.BNMulRecursiveSizeNormal — recursion cutoff to schoolbook
//
// kernel.MulLowNormal has no cutoff knob: it is a standalone contract
// primitive with no caller-configurable dispatch (see DESIGN.md).

// BNMullSizeNormal is the operand-size floor below which Mul never uses
// Karatsuba, regardless of how evenly the two operand lengths balance:
// such operands go to the schoolbook multiplier, except that two
// exactly-8-word operands take the Comba kernel.
var BNMullSizeNormal = 32
