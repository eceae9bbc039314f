package matrix

import (
	"fmt"
	"iter"

	"github.com/arloliu/matio/errs"
	"github.com/arloliu/matio/numfmt"
)

// Triple is one sparse matrix entry with 0-based indices.
type Triple[T numfmt.Value] struct {
	Row, Col int
	Val      T
}

type sparseKey struct {
	row, col int
}

// Sparse is a sparse matrix holding entries in insertion order.
// Setting an already-present coordinate overwrites the stored value in
// place (last write wins); the codecs never deduplicate on their own.
type Sparse[T numfmt.Value] struct {
	rows, cols int
	elems      []Triple[T]
	pos        map[sparseKey]int
}

var _ Matrix[float64] = (*Sparse[float64])(nil)

// NewSparse creates an empty rows×cols sparse matrix.
func NewSparse[T numfmt.Value](rows, cols int) *Sparse[T] {
	if rows < 0 || cols < 0 {
		panic("matrix: negative dimension")
	}

	return &Sparse[T]{
		rows: rows,
		cols: cols,
		pos:  make(map[sparseKey]int),
	}
}

// NewSparseFromTriples builds a rows×cols sparse matrix from an entry
// sequence. Entries arrive in stream order; indices outside the declared
// dimensions fail with errs.ErrIndexOutOfRange.
func NewSparseFromTriples[T numfmt.Value](rows, cols int, entries iter.Seq2[Triple[T], error]) (*Sparse[T], error) {
	m := NewSparse[T](rows, cols)

	for e, err := range entries {
		if err != nil {
			return nil, err
		}
		if e.Row < 0 || rows <= e.Row || e.Col < 0 || cols <= e.Col {
			return nil, fmt.Errorf("%w: entry (%d, %d) outside %dx%d",
				errs.ErrIndexOutOfRange, e.Row, e.Col, rows, cols)
		}
		m.store(e)
	}

	return m, nil
}

func (m *Sparse[T]) store(e Triple[T]) {
	key := sparseKey{row: e.Row, col: e.Col}
	if i, ok := m.pos[key]; ok {
		m.elems[i].Val = e.Val
		return
	}
	m.pos[key] = len(m.elems)
	m.elems = append(m.elems, e)
}

// Dims returns the row and column counts.
func (m *Sparse[T]) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// NNZ returns the number of explicitly stored entries.
func (m *Sparse[T]) NNZ() int {
	return len(m.elems)
}

// At returns the element at (i, j), the zero value when unset.
func (m *Sparse[T]) At(i, j int) T {
	m.checkBounds(i, j)
	if p, ok := m.pos[sparseKey{row: i, col: j}]; ok {
		return m.elems[p].Val
	}

	var zero T

	return zero
}

// Set stores v at (i, j).
func (m *Sparse[T]) Set(i, j int, v T) {
	m.checkBounds(i, j)
	m.store(Triple[T]{Row: i, Col: j, Val: v})
}

// Triples yields the stored entries in insertion order.
func (m *Sparse[T]) Triples() iter.Seq[Triple[T]] {
	return func(yield func(Triple[T]) bool) {
		for _, e := range m.elems {
			if !yield(e) {
				return
			}
		}
	}
}

func (m *Sparse[T]) checkBounds(i, j int) {
	if i < 0 || m.rows <= i {
		panic("matrix: row index out of range")
	}
	if j < 0 || m.cols <= j {
		panic("matrix: column index out of range")
	}
}
