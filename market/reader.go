package market

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/arloliu/matio/errs"
	"github.com/arloliu/matio/format"
	"github.com/arloliu/matio/matrix"
	"github.com/arloliu/matio/numfmt"
)

// ReadMatrix reads one MatrixMarket matrix from r into the output kind T.
//
// Array streams produce a *matrix.Dense, coordinate streams a
// *matrix.Sparse with entries in stream order. Real targets read from a
// complex field discard the imaginary tokens; complex targets read from a
// real field get zero imaginary parts.
func ReadMatrix[T numfmt.Value](r io.Reader) (matrix.Matrix[T], error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", errs.ErrInvalidArgument)
	}

	sc := newScanner(r)
	h, err := scanHeader(sc, format.ObjectMatrix)
	if err != nil {
		return nil, err
	}
	rows, cols, err := matrixDims(sc)
	if err != nil {
		return nil, err
	}
	parse, err := numfmt.ParserFor[T](h.field == format.FieldComplex, numfmt.Invariant)
	if err != nil {
		return nil, err
	}

	if h.layout == format.LayoutCoordinate {
		return matrix.NewSparseFromTriples(rows, cols, coordEntries(sc, parse))
	}

	return matrix.NewDenseColMajor(rows, cols, denseValues(sc, parse))
}

// ReadVector reads one MatrixMarket vector from r into the output kind T.
// Array streams produce a *matrix.DenseVector, coordinate streams a
// *matrix.SparseVector.
func ReadVector[T numfmt.Value](r io.Reader) (matrix.Vector[T], error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", errs.ErrInvalidArgument)
	}

	sc := newScanner(r)
	h, err := scanHeader(sc, format.ObjectVector)
	if err != nil {
		return nil, err
	}
	n, err := vectorDims(sc)
	if err != nil {
		return nil, err
	}
	parse, err := numfmt.ParserFor[T](h.field == format.FieldComplex, numfmt.Invariant)
	if err != nil {
		return nil, err
	}

	if h.layout == format.LayoutCoordinate {
		return matrix.NewSparseVectorFromPairs(n, pairEntries(sc, parse))
	}

	return matrix.NewDenseVectorSeq(n, denseValues(sc, parse))
}

// denseValues yields the column-major value stream of an array body, one
// entry per non-comment line. The sequence is forward-only and ends at
// end of stream; the container constructor detects underflow.
func denseValues[T numfmt.Value](sc *bufio.Scanner, parse numfmt.ParseFunc[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "%") {
				continue
			}
			v, err := parse(strings.Fields(line), 0)
			if !yield(v, err) || err != nil {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(zero, err)
		}
	}
}

// coordEntries yields the entries of a coordinate matrix body in stream
// order, converting wire indices from 1-based to 0-based.
func coordEntries[T numfmt.Value](sc *bufio.Scanner, parse numfmt.ParseFunc[T]) iter.Seq2[matrix.Triple[T], error] {
	return func(yield func(matrix.Triple[T], error) bool) {
		var zero matrix.Triple[T]
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "%") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 3 {
				yield(zero, fmt.Errorf("%w: coordinate entry %q", errs.ErrNumberParse, line))
				return
			}
			i, err := parseIndex(fields[0])
			if err != nil {
				yield(zero, err)
				return
			}
			j, err := parseIndex(fields[1])
			if err != nil {
				yield(zero, err)
				return
			}
			v, err := parse(fields, 2)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(matrix.Triple[T]{Row: i - 1, Col: j - 1, Val: v}, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(zero, err)
		}
	}
}

// pairEntries yields the entries of a coordinate vector body in stream
// order, converting wire indices from 1-based to 0-based.
func pairEntries[T numfmt.Value](sc *bufio.Scanner, parse numfmt.ParseFunc[T]) iter.Seq2[matrix.Pair[T], error] {
	return func(yield func(matrix.Pair[T], error) bool) {
		var zero matrix.Pair[T]
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "%") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				yield(zero, fmt.Errorf("%w: coordinate entry %q", errs.ErrNumberParse, line))
				return
			}
			i, err := parseIndex(fields[0])
			if err != nil {
				yield(zero, err)
				return
			}
			v, err := parse(fields, 1)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(matrix.Pair[T]{Index: i - 1, Val: v}, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(zero, err)
		}
	}
}
