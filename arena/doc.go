// Package arena implements the scratch-buffer contract parbig's multiply
// dispatch uses for Karatsuba working memory and for a stand-in
// destination when its destination aliases one of its operands: a
// Start/End bracketed scope vends zero-on-first-use word buffers via Get
// and releases them in bulk at End. Buffers are recycled across scopes
// with sync.Pool rather than reallocated per call.
package arena
