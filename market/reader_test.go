package market

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/matio/errs"
	"github.com/arloliu/matio/matrix"
)

const denseReal = `%%MatrixMarket matrix array real general
% column-major: first column is 1 2, second 3 4, third 5 6
2 3
1
2
3
4

5
6
`

func TestReadMatrix_DenseReal(t *testing.T) {
	m, err := ReadMatrix[float64](strings.NewReader(denseReal))
	require.NoError(t, err)
	require.IsType(t, (*matrix.Dense[float64])(nil), m)

	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 2.0, m.At(1, 0))
	require.Equal(t, 3.0, m.At(0, 1))
	require.Equal(t, 5.0, m.At(0, 2))
	require.Equal(t, 6.0, m.At(1, 2))
}

func TestReadMatrix_SparseReal(t *testing.T) {
	src := `%%MatrixMarket matrix coordinate real general
% 1-based wire indices land 0-based in the container
2000 2000 3
1 1 2.5
1605 1632 -6.8596032449032e+06
2000 1999 0.125
`
	m, err := ReadMatrix[float64](strings.NewReader(src))
	require.NoError(t, err)

	sm, ok := m.(*matrix.Sparse[float64])
	require.True(t, ok)
	require.Equal(t, 3, sm.NNZ())
	require.Equal(t, 2.5, m.At(0, 0))
	require.Equal(t, -6.8596032449032e+06, m.At(1604, 1631))
	require.Equal(t, 0.125, m.At(1999, 1998))
}

func TestReadMatrix_SparseAsSingle(t *testing.T) {
	src := `%%MatrixMarket matrix coordinate real general
1605 1632 1
1605 1632 -6.8596032449032e+06
`
	m, err := ReadMatrix[float32](strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, float32(-6.8596032449032e+06), m.At(1604, 1631))
}

func TestReadMatrix_SparseAsComplex(t *testing.T) {
	src := `%%MatrixMarket matrix coordinate real general
1605 1632 1
1605 1632 -6.8596032449032e+06
`
	m, err := ReadMatrix[complex128](strings.NewReader(src))
	require.NoError(t, err)

	v := m.At(1604, 1631)
	require.Equal(t, -6.8596032449032e+06, real(v))
	require.Equal(t, 0.0, imag(v))
}

func TestReadMatrix_ComplexField(t *testing.T) {
	src := `%%MatrixMarket matrix coordinate complex general
2 2 2
1 1 1.5 2.5
2 2 -3.5 4.5
`
	m, err := ReadMatrix[complex128](strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, complex(1.5, 2.5), m.At(0, 0))
	require.Equal(t, complex(-3.5, 4.5), m.At(1, 1))
}

func TestReadMatrix_RealTargetFromComplexField(t *testing.T) {
	// imaginary tokens are discarded without error
	src := `%%MatrixMarket matrix coordinate complex general
2 2 1
1 2 1.5 99.9
`
	m, err := ReadMatrix[float64](strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1.5, m.At(0, 1))
}

func TestReadMatrix_DenseComplexField(t *testing.T) {
	src := `%%MatrixMarket matrix array complex general
2 1
1.5 2.5
-3.5 0
`
	m, err := ReadMatrix[complex64](strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, complex64(complex(1.5, 2.5)), m.At(0, 0))
	require.Equal(t, complex64(complex(-3.5, 0)), m.At(1, 0))
}

func TestReadMatrix_IntegerField(t *testing.T) {
	src := `%%MatrixMarket matrix coordinate integer general
2 2 1
2 1 42
`
	m, err := ReadMatrix[float64](strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 42.0, m.At(1, 0))
}

func TestReadMatrix_HeaderErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"missing header", "1 1\n1\n", errs.ErrMissingHeader},
		{"empty stream", "", errs.ErrMissingHeader},
		{"malformed header", "%%MatrixMarket matrix array real\n", errs.ErrMalformedHeader},
		{"too many tokens", "%%MatrixMarket matrix array real general extra\n", errs.ErrMalformedHeader},
		{"wrong object", "%%MatrixMarket vector array real general\n1\n1\n", errs.ErrWrongObjectKind},
		{"unknown object", "%%MatrixMarket tensor array real general\n", errs.ErrWrongObjectKind},
		{"symmetric", "%%MatrixMarket matrix coordinate real symmetric\n2 2 1\n1 1 1\n", errs.ErrUnsupportedSymmetry},
		{"hermitian", "%%MatrixMarket matrix coordinate complex hermitian\n2 2 1\n1 1 1 1\n", errs.ErrUnsupportedSymmetry},
		{"unsupported field", "%%MatrixMarket matrix coordinate pattern general\n2 2 1\n1 1\n", errs.ErrUnsupportedField},
		{"unsupported layout", "%%MatrixMarket matrix banded real general\n2 2\n", errs.ErrUnsupportedLayout},
		{"missing dimension line", "%%MatrixMarket matrix array real general\n% only comments follow\n", errs.ErrUnexpectedEOF},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadMatrix[float64](strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadMatrix_HeaderCaseInsensitive(t *testing.T) {
	src := "%%matrixmarket MATRIX Array REAL General\n1 1\n4.0\n"
	m, err := ReadMatrix[float64](strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4.0, m.At(0, 0))
}

func TestReadMatrix_BannerMustMatchExactly(t *testing.T) {
	// a longer first token is an ordinary comment, not a banner; without a
	// real banner the header is missing
	src := "%%MatrixMarketXyz matrix array real general\n1 1\n4.0\n"
	_, err := ReadMatrix[float64](strings.NewReader(src))
	require.ErrorIs(t, err, errs.ErrMissingHeader)
}

func TestReadMatrix_DenseZeroDims(t *testing.T) {
	// stray data lines after a zero-size dimension line are ignored
	src := "%%MatrixMarket matrix array real general\n2 0\n1.5\n"
	m, err := ReadMatrix[float64](strings.NewReader(src))
	require.NoError(t, err)

	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 0, cols)
}

func TestReadVector_DenseZeroLength(t *testing.T) {
	src := "%%MatrixMarket vector array real general\n0\n1.5\n"
	v, err := ReadVector[float64](strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 0, v.Len())
}

func TestReadMatrix_DenseUnderflow(t *testing.T) {
	src := "%%MatrixMarket matrix array real general\n2 2\n1\n2\n3\n"
	_, err := ReadMatrix[float64](strings.NewReader(src))
	require.ErrorIs(t, err, errs.ErrShortData)
}

func TestReadMatrix_SparseOutOfRange(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate real general\n2 2 1\n3 1 1.0\n"
	_, err := ReadMatrix[float64](strings.NewReader(src))
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestReadMatrix_BadValueToken(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 abc\n"
	_, err := ReadMatrix[float64](strings.NewReader(src))
	require.ErrorIs(t, err, errs.ErrNumberParse)
}

func TestReadMatrix_NilReader(t *testing.T) {
	_, err := ReadMatrix[float64](nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestReadVector_Dense(t *testing.T) {
	src := `%%MatrixMarket vector array real general
3
1.5
-2.5
0.5
`
	v, err := ReadVector[float64](strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.Equal(t, 1.5, v.At(0))
	require.Equal(t, -2.5, v.At(1))
	require.Equal(t, 0.5, v.At(2))
}

func TestReadVector_Sparse(t *testing.T) {
	src := `%%MatrixMarket vector coordinate real general
10 2
3 1.5
10 -0.5
`
	v, err := ReadVector[float64](strings.NewReader(src))
	require.NoError(t, err)

	sv, ok := v.(*matrix.SparseVector[float64])
	require.True(t, ok)
	require.Equal(t, 10, sv.Len())
	require.Equal(t, 2, sv.NNZ())
	require.Equal(t, 1.5, v.At(2))
	require.Equal(t, -0.5, v.At(9))
}

func TestReadVector_SparseComplex(t *testing.T) {
	src := `%%MatrixMarket vector coordinate complex general
5 1
2 1.5 -2.5
`
	v, err := ReadVector[complex128](strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, complex(1.5, -2.5), v.At(1))
}

func TestReadVector_WrongObject(t *testing.T) {
	_, err := ReadVector[float64](strings.NewReader(denseReal))
	require.ErrorIs(t, err, errs.ErrWrongObjectKind)
}
