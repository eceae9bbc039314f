package matrix

import (
	"fmt"
	"iter"

	"github.com/arloliu/matio/errs"
	"github.com/arloliu/matio/numfmt"
)

// Vector is the minimal one-dimensional container surface.
type Vector[T numfmt.Value] interface {
	// Len returns the element count.
	Len() int
	// At returns the element at i.
	At(i int) T
	// Set stores v at i.
	Set(i int, v T)
}

// Pair is one sparse vector entry with a 0-based index.
type Pair[T numfmt.Value] struct {
	Index int
	Val   T
}

// DenseVector is a dense vector backed by a flat slice.
type DenseVector[T numfmt.Value] struct {
	data []T
}

var _ Vector[float64] = (*DenseVector[float64])(nil)

// NewDenseVector creates a zero-filled vector of length n.
func NewDenseVector[T numfmt.Value](n int) *DenseVector[T] {
	if n < 0 {
		panic("matrix: negative length")
	}

	return &DenseVector[T]{data: make([]T, n)}
}

// NewDenseVectorFrom wraps data as a dense vector without copying.
func NewDenseVectorFrom[T numfmt.Value](data []T) *DenseVector[T] {
	return &DenseVector[T]{data: data}
}

// NewDenseVectorSeq builds an n-element dense vector from a value sequence.
// Exactly n values are consumed; a sequence that ends early fails with
// errs.ErrShortData.
func NewDenseVectorSeq[T numfmt.Value](n int, values iter.Seq2[T, error]) (*DenseVector[T], error) {
	v := NewDenseVector[T](n)
	if n == 0 {
		return v, nil
	}

	filled := 0
	for val, err := range values {
		if err != nil {
			return nil, err
		}
		v.data[filled] = val
		filled++
		if filled == n {
			break
		}
	}
	if filled < n {
		return nil, fmt.Errorf("%w: got %d of %d values", errs.ErrShortData, filled, n)
	}

	return v, nil
}

func (v *DenseVector[T]) Len() int { return len(v.data) }

func (v *DenseVector[T]) At(i int) T {
	v.checkBounds(i)

	return v.data[i]
}

func (v *DenseVector[T]) Set(i int, val T) {
	v.checkBounds(i)
	v.data[i] = val
}

func (v *DenseVector[T]) checkBounds(i int) {
	if i < 0 || len(v.data) <= i {
		panic("matrix: index out of range")
	}
}

// SparseVector is a sparse vector holding entries in insertion order, with
// the same last-write-wins overwrite rule as Sparse.
type SparseVector[T numfmt.Value] struct {
	n     int
	elems []Pair[T]
	pos   map[int]int
}

var _ Vector[float64] = (*SparseVector[float64])(nil)

// NewSparseVector creates an empty sparse vector of length n.
func NewSparseVector[T numfmt.Value](n int) *SparseVector[T] {
	if n < 0 {
		panic("matrix: negative length")
	}

	return &SparseVector[T]{n: n, pos: make(map[int]int)}
}

// NewSparseVectorFromPairs builds an n-element sparse vector from an entry
// sequence. Indices outside [0, n) fail with errs.ErrIndexOutOfRange.
func NewSparseVectorFromPairs[T numfmt.Value](n int, entries iter.Seq2[Pair[T], error]) (*SparseVector[T], error) {
	v := NewSparseVector[T](n)

	for e, err := range entries {
		if err != nil {
			return nil, err
		}
		if e.Index < 0 || n <= e.Index {
			return nil, fmt.Errorf("%w: entry %d outside length %d",
				errs.ErrIndexOutOfRange, e.Index, n)
		}
		v.store(e)
	}

	return v, nil
}

func (v *SparseVector[T]) store(e Pair[T]) {
	if i, ok := v.pos[e.Index]; ok {
		v.elems[i].Val = e.Val
		return
	}
	v.pos[e.Index] = len(v.elems)
	v.elems = append(v.elems, e)
}

func (v *SparseVector[T]) Len() int { return v.n }

// NNZ returns the number of explicitly stored entries.
func (v *SparseVector[T]) NNZ() int { return len(v.elems) }

// At returns the element at i, the zero value when unset.
func (v *SparseVector[T]) At(i int) T {
	v.checkBounds(i)
	if p, ok := v.pos[i]; ok {
		return v.elems[p].Val
	}

	var zero T

	return zero
}

func (v *SparseVector[T]) Set(i int, val T) {
	v.checkBounds(i)
	v.store(Pair[T]{Index: i, Val: val})
}

// Pairs yields the stored entries in insertion order.
func (v *SparseVector[T]) Pairs() iter.Seq[Pair[T]] {
	return func(yield func(Pair[T]) bool) {
		for _, e := range v.elems {
			if !yield(e) {
				return
			}
		}
	}
}

func (v *SparseVector[T]) checkBounds(i int) {
	if i < 0 || v.n <= i {
		panic("matrix: index out of range")
	}
}
