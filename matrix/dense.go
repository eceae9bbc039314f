package matrix

import (
	"fmt"
	"iter"

	"github.com/arloliu/matio/errs"
	"github.com/arloliu/matio/numfmt"
)

// Matrix is the minimal container surface both codecs depend on.
type Matrix[T numfmt.Value] interface {
	// Dims returns the row and column counts.
	Dims() (rows, cols int)
	// At returns the element at (i, j).
	At(i, j int) T
	// Set stores v at (i, j).
	Set(i, j int, v T)
}

// Dense is a dense matrix backed by a flat column-major slice.
type Dense[T numfmt.Value] struct {
	rows, cols int
	data       []T
}

var _ Matrix[float64] = (*Dense[float64])(nil)

// NewDense creates a zero-filled rows×cols dense matrix.
func NewDense[T numfmt.Value](rows, cols int) *Dense[T] {
	if rows < 0 || cols < 0 {
		panic("matrix: negative dimension")
	}

	return &Dense[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// NewDenseColMajor builds a rows×cols dense matrix from a column-major
// value sequence. Exactly rows*cols values are consumed; the sequence is
// not advanced past the last needed value. A sequence that ends early
// fails with errs.ErrShortData.
func NewDenseColMajor[T numfmt.Value](rows, cols int, values iter.Seq2[T, error]) (*Dense[T], error) {
	m := NewDense[T](rows, cols)

	need := rows * cols
	if need == 0 {
		return m, nil
	}

	n := 0
	for v, err := range values {
		if err != nil {
			return nil, err
		}
		m.data[n] = v
		n++
		if n == need {
			break
		}
	}
	if n < need {
		return nil, fmt.Errorf("%w: got %d of %d values", errs.ErrShortData, n, need)
	}

	return m, nil
}

// Dims returns the row and column counts.
func (m *Dense[T]) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the element at (i, j).
func (m *Dense[T]) At(i, j int) T {
	m.checkBounds(i, j)

	return m.data[j*m.rows+i]
}

// Set stores v at (i, j).
func (m *Dense[T]) Set(i, j int, v T) {
	m.checkBounds(i, j)
	m.data[j*m.rows+i] = v
}

func (m *Dense[T]) checkBounds(i, j int) {
	if i < 0 || m.rows <= i {
		panic("matrix: row index out of range")
	}
	if j < 0 || m.cols <= j {
		panic("matrix: column index out of range")
	}
}
