package addsub

import "github.com/rezaramadhan/parbig/kernel"

// Op selects which word-kernel primitive a chunk worker runs.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
)

// Args is the per-chunk work record a worker goroutine executes: it names
// the chunk's slice of each operand and destination, and on return carries
// the carry or borrow the chunk produced.
type Args struct {
	A, B, R []uint64
	N       int
	Op      Op
	Carry   uint64
}

func (a *Args) run() {
	switch a.Op {
	case OpAdd:
		a.Carry = kernel.AddWords(a.R, a.A, a.B, a.N)
	case OpSub:
		a.Carry = kernel.SubWords(a.R, a.A, a.B, a.N)
	}
}
