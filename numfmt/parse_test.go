package numfmt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/matio/errs"
)

func TestParserFor_Float64(t *testing.T) {
	parse, err := ParserFor[float64](false, Invariant)
	require.NoError(t, err)

	v, err := parse([]string{"-6.8596032449032e+06"}, 0)
	require.NoError(t, err)
	require.Equal(t, -6.8596032449032e+06, v)

	_, err = parse([]string{"not-a-number"}, 0)
	require.ErrorIs(t, err, errs.ErrNumberParse)
}

func TestParserFor_Float32(t *testing.T) {
	parse, err := ParserFor[float32](false, Invariant)
	require.NoError(t, err)

	v, err := parse([]string{"1.5"}, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1.5), v)
}

func TestParserFor_RealTargetDiscardsImaginary(t *testing.T) {
	// complex source, real target: the imaginary token is dropped silently
	parse, err := ParserFor[float64](true, Invariant)
	require.NoError(t, err)

	v, err := parse([]string{"2.5", "9.9"}, 0)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
}

func TestParserFor_ComplexFromComplexSource(t *testing.T) {
	parse, err := ParserFor[complex128](true, Invariant)
	require.NoError(t, err)

	v, err := parse([]string{"1", "2", "3.5", "-4.5"}, 2)
	require.NoError(t, err)
	require.Equal(t, complex(3.5, -4.5), v)

	// missing imaginary token
	_, err = parse([]string{"1", "2", "3.5"}, 2)
	require.ErrorIs(t, err, errs.ErrNumberParse)
}

func TestParserFor_ComplexFromRealSource(t *testing.T) {
	parse, err := ParserFor[complex128](false, Invariant)
	require.NoError(t, err)

	// plain real literal: imaginary part defaults to exactly zero
	v, err := parse([]string{"2.5"}, 0)
	require.NoError(t, err)
	require.Equal(t, complex(2.5, 0), v)

	// full complex literal form is accepted as well
	v, err = parse([]string{"(1.5+2i)"}, 0)
	require.NoError(t, err)
	require.Equal(t, complex(1.5, 2), v)
}

func TestParserFor_Complex64(t *testing.T) {
	parse, err := ParserFor[complex64](true, Invariant)
	require.NoError(t, err)

	v, err := parse([]string{"1.5", "-2.5"}, 0)
	require.NoError(t, err)
	require.Equal(t, complex64(complex(1.5, -2.5)), v)
}

type myFloat float64

func TestParserFor_UnsupportedKind(t *testing.T) {
	// defined types satisfy the constraint but have no registered parser;
	// the failure happens at dispatch construction, not per element
	_, err := ParserFor[myFloat](false, Invariant)
	require.ErrorIs(t, err, errs.ErrUnsupportedType)

	_, err = FormatterFor[myFloat]("%v", Invariant)
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
}

func TestIsComplex(t *testing.T) {
	require.False(t, IsComplex[float64]())
	require.False(t, IsComplex[float32]())
	require.True(t, IsComplex[complex128]())
	require.True(t, IsComplex[complex64]())
}
