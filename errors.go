package parbig

import "fmt"

//go:generate stringer -type=ErrorKind -trimprefix=ErrKind

// ErrorKind distinguishes the two failure classes the library reports.
type ErrorKind int

const (
	// ErrKindArgument marks a caller contract violation, such as USub's
	// a < b precondition: the result is left untouched.
	ErrKindArgument ErrorKind = iota

	// ErrKindResource marks a failure to obtain a resource the
	// operation needed to proceed, such as scratch allocation or
	// worker-thread spawning: the result is left in a well-formed but
	// possibly stale state.
	ErrKindResource
)

// Error is the error type every parbig public operation returns on
// failure. Kind lets callers distinguish argument errors (their mistake,
// retryable only by changing the call) from resource errors (the
// environment's, retryable as-is) via errors.Is against the package's
// sentinel *Error values.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("parbig: %s: %v", e.msg, e.err)
	}
	return fmt.Sprintf("parbig: %s", e.msg)
}

// Unwrap exposes the underlying cause, if any, for errors.As/errors.Is.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is a sentinel *Error of the same kind and
// message, so callers can write errors.Is(err, parbig.ErrArg2LessThanArg3)
// even though the returned error wraps a lower-level cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.msg == e.msg
}

func argError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindArgument, msg: msg, err: cause}
}

func resourceError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindResource, msg: msg, err: cause}
}

// ErrArg2LessThanArg3 is the sentinel USub returns when the first
// operand's magnitude is smaller than the second's.
var ErrArg2LessThanArg3 = argError("usub requires |a| >= |b|", nil)

// ErrScratchExhausted is the sentinel Mul returns when the arena cannot
// vend a scratch buffer a Karatsuba or aliasing-safe dispatch needed.
var ErrScratchExhausted = resourceError("scratch allocation failed", nil)
