package arena

import (
	"errors"
	"sync"
)

// ErrNoScope is returned by Get when called outside any Start/End bracket.
var ErrNoScope = errors.New("arena: Get called outside Start/End scope")

// ErrBudgetExhausted is returned by Get when a scope-local scratch budget
// (set via NewBounded) has been used up.
var ErrBudgetExhausted = errors.New("arena: scratch budget exhausted")

// Scratch is a resizable, zero-on-grow word buffer vended by a Context.
// Its Words method is the "resizable BigInt" the Arena contract
// describes: callers view it purely as storage for word slices, leaving
// the BigInt-shaped wrapping to the parbig package so this package stays
// free of a dependency back on the root package.
type Scratch struct {
	words []uint64
}

// Words returns a slice of exactly n words, growing and zeroing the
// backing array if needed. The returned slice aliases the Scratch's
// storage and is only valid until the enclosing scope's End.
func (s *Scratch) Words(n int) []uint64 {
	if cap(s.words) < n {
		s.words = make([]uint64, n)
	} else {
		s.words = s.words[:n]
		for i := range s.words {
			s.words[i] = 0
		}
	}
	return s.words
}

type scope struct {
	scratches []*Scratch
}

// Context is a pooled scratch-buffer arena. The zero value is not usable;
// construct one with New or NewBounded.
type Context struct {
	mu      sync.Mutex
	pool    sync.Pool
	scopes  []*scope
	maxLive int
}

// New returns a Context with no per-scope scratch limit.
func New() *Context {
	return &Context{pool: sync.Pool{New: func() any { return new(Scratch) }}}
}

// NewBounded returns a Context that fails Get with ErrBudgetExhausted once
// more than maxLive scratches are outstanding within a single scope.
func NewBounded(maxLive int) *Context {
	c := New()
	c.maxLive = maxLive
	return c
}

// Start opens a new nested scratch scope.
func (c *Context) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scopes = append(c.scopes, &scope{})
}

// Get vends a zero-initialized scratch buffer scoped to the innermost
// open Start/End bracket.
func (c *Context) Get() (*Scratch, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.scopes) == 0 {
		return nil, ErrNoScope
	}
	top := c.scopes[len(c.scopes)-1]
	if c.maxLive > 0 && len(top.scratches) >= c.maxLive {
		return nil, ErrBudgetExhausted
	}
	s := c.pool.Get().(*Scratch)
	top.scratches = append(top.scratches, s)
	return s, nil
}

// End closes the innermost open scope, returning all of its scratches to
// the pool for reuse by a later Start/Get.
func (c *Context) End() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.scopes) == 0 {
		return
	}
	top := c.scopes[len(c.scopes)-1]
	c.scopes = c.scopes[:len(c.scopes)-1]
	for _, s := range top.scratches {
		c.pool.Put(s)
	}
}
