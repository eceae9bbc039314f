// Package matrix provides the in-memory dense and sparse containers the
// codecs read into and write from.
//
// Storage is deliberately simple: dense containers hold a flat column-major
// slice, sparse containers hold entries in insertion order with a position
// index for O(1) element access. Element access with out-of-range indices
// panics; the sequence constructors used by the codecs return errors
// instead, since their indices come from untrusted input.
package matrix
