// Package numfmt provides the shared numeric-kind dispatch used by both the
// MatrixMarket and delimited codecs, plus culture-aware literal handling.
//
// The output kind (float64, float32, complex128, complex64) is fixed at call
// time by a type parameter. ParserFor and FormatterFor select the concrete
// token conversion once, before any row is read; per-element work is a plain
// function call with no reflection.
package numfmt
