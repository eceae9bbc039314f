package market

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arloliu/matio/errs"
	"github.com/arloliu/matio/format"
	"github.com/arloliu/matio/internal/options"
	"github.com/arloliu/matio/matrix"
	"github.com/arloliu/matio/numfmt"
)

type writerConfig struct {
	numberFormat string
}

// WriteOption configures the MatrixMarket writer entry points.
type WriteOption = options.Option[*writerConfig]

// WithNumberFormat sets the fmt verb used for each numeric token.
// The default is numfmt.DefaultFormat.
func WithNumberFormat(verb string) WriteOption {
	return options.NoError(func(c *writerConfig) {
		c.numberFormat = verb
	})
}

// WriteMatrix writes m to w in MatrixMarket form: coordinate layout when m
// is a *matrix.Sparse, array layout otherwise; complex field when T is a
// complex kind. Number syntax is always invariant.
func WriteMatrix[T numfmt.Value](w io.Writer, m matrix.Matrix[T], opts ...WriteOption) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", errs.ErrInvalidArgument)
	}
	if m == nil {
		return fmt.Errorf("%w: nil matrix", errs.ErrInvalidArgument)
	}
	render, err := prepare[T](opts)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	rows, cols := m.Dims()

	if sm, ok := m.(*matrix.Sparse[T]); ok {
		writeBanner(bw, format.ObjectMatrix, format.LayoutCoordinate, fieldOf[T]())
		fmt.Fprintf(bw, "%d %d %d\n", rows, cols, sm.NNZ())
		for e := range sm.Triples() {
			fmt.Fprintf(bw, "%d %d %s\n", e.Row+1, e.Col+1, render(e.Val))
		}

		return bw.Flush()
	}

	writeBanner(bw, format.ObjectMatrix, format.LayoutArray, fieldOf[T]())
	fmt.Fprintf(bw, "%d %d\n", rows, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			fmt.Fprintf(bw, "%s\n", render(m.At(i, j)))
		}
	}

	return bw.Flush()
}

// WriteVector writes v to w in MatrixMarket form, mirroring WriteMatrix
// with a single index column for coordinate layouts.
func WriteVector[T numfmt.Value](w io.Writer, v matrix.Vector[T], opts ...WriteOption) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", errs.ErrInvalidArgument)
	}
	if v == nil {
		return fmt.Errorf("%w: nil vector", errs.ErrInvalidArgument)
	}
	render, err := prepare[T](opts)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	if sv, ok := v.(*matrix.SparseVector[T]); ok {
		writeBanner(bw, format.ObjectVector, format.LayoutCoordinate, fieldOf[T]())
		fmt.Fprintf(bw, "%d %d\n", v.Len(), sv.NNZ())
		for e := range sv.Pairs() {
			fmt.Fprintf(bw, "%d %s\n", e.Index+1, render(e.Val))
		}

		return bw.Flush()
	}

	writeBanner(bw, format.ObjectVector, format.LayoutArray, fieldOf[T]())
	fmt.Fprintf(bw, "%d\n", v.Len())
	for i := 0; i < v.Len(); i++ {
		fmt.Fprintf(bw, "%s\n", render(v.At(i)))
	}

	return bw.Flush()
}

func prepare[T numfmt.Value](opts []WriteOption) (renderFunc[T], error) {
	cfg := writerConfig{numberFormat: numfmt.DefaultFormat}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return renderFor[T](cfg.numberFormat)
}

func writeBanner(w io.Writer, obj format.ObjectType, layout format.LayoutType, field format.FieldType) {
	fmt.Fprintf(w, "%%%%MatrixMarket %s %s %s general\n", obj, layout, field)
}

func fieldOf[T numfmt.Value]() format.FieldType {
	if numfmt.IsComplex[T]() {
		return format.FieldComplex
	}

	return format.FieldReal
}

// renderFunc renders one value as its wire token(s): a single token for
// real kinds, "real imag" for complex kinds.
type renderFunc[T numfmt.Value] func(v T) string

func renderFor[T numfmt.Value](verb string) (renderFunc[T], error) {
	if verb == "" {
		verb = numfmt.DefaultFormat
	}

	var zero T
	switch any(zero).(type) {
	case float64:
		var fn renderFunc[float64] = func(v float64) string {
			return fmt.Sprintf(verb, v)
		}

		return any(fn).(renderFunc[T]), nil

	case float32:
		var fn renderFunc[float32] = func(v float32) string {
			return fmt.Sprintf(verb, v)
		}

		return any(fn).(renderFunc[T]), nil

	case complex128:
		var fn renderFunc[complex128] = func(v complex128) string {
			return fmt.Sprintf(verb+" "+verb, real(v), imag(v))
		}

		return any(fn).(renderFunc[T]), nil

	case complex64:
		var fn renderFunc[complex64] = func(v complex64) string {
			return fmt.Sprintf(verb+" "+verb, real(v), imag(v))
		}

		return any(fn).(renderFunc[T]), nil

	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedType, zero)
	}
}
