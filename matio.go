// Package matio reads and writes numeric matrices and vectors in two
// plain-text interchange formats: NIST MatrixMarket (dense array and
// sparse coordinate bodies, real or complex fields) and generic delimited
// text (CSV/TSV-like with optional header row and ragged-row padding).
//
// The output numeric kind is a type parameter, one of float64, float32,
// complex128 or complex64; dispatch happens once per call, never per
// element.
//
// # Basic Usage
//
// Reading a MatrixMarket file (transparently decompressed by extension):
//
//	m, err := matio.ReadMarketMatrixFile[float64]("bcsstk01.mtx.gz")
//	if err != nil {
//	    return err
//	}
//	rows, cols := m.Dims()
//
// Writing and reading delimited text:
//
//	w, _ := delimited.NewWriter[float64](delimited.WithDelimiter(";"))
//	err = w.Write(dst, m)
//
//	r, _ := delimited.NewReader[float64](delimited.WithDelimiter(";"))
//	m2, err := r.Read(src)
//
// # Package Structure
//
// This package provides file-path convenience wrappers with transparent
// compression (.gz, .zst, .s2, .lz4). For stream-level control use the
// market and delimited packages directly; containers live in matrix,
// numeric dispatch and cultures in numfmt.
package matio

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/matio/compress"
	"github.com/arloliu/matio/delimited"
	"github.com/arloliu/matio/errs"
	"github.com/arloliu/matio/market"
	"github.com/arloliu/matio/matrix"
	"github.com/arloliu/matio/numfmt"
)

// ReadMarketMatrixFile reads one MatrixMarket matrix from the named file,
// decompressing by extension.
func ReadMarketMatrixFile[T numfmt.Value](path string) (matrix.Matrix[T], error) {
	var m matrix.Matrix[T]
	err := readFile(path, func(r io.Reader) error {
		var err error
		m, err = market.ReadMatrix[T](r)

		return err
	})

	return m, err
}

// ReadMarketVectorFile reads one MatrixMarket vector from the named file,
// decompressing by extension.
func ReadMarketVectorFile[T numfmt.Value](path string) (matrix.Vector[T], error) {
	var v matrix.Vector[T]
	err := readFile(path, func(r io.Reader) error {
		var err error
		v, err = market.ReadVector[T](r)

		return err
	})

	return v, err
}

// WriteMarketMatrixFile writes m to the named file in MatrixMarket form,
// compressing by extension.
func WriteMarketMatrixFile[T numfmt.Value](path string, m matrix.Matrix[T], opts ...market.WriteOption) error {
	if m == nil {
		return fmt.Errorf("%w: nil matrix", errs.ErrInvalidArgument)
	}

	return writeFile(path, func(w io.Writer) error {
		return market.WriteMatrix(w, m, opts...)
	})
}

// WriteMarketVectorFile writes v to the named file in MatrixMarket form,
// compressing by extension.
func WriteMarketVectorFile[T numfmt.Value](path string, v matrix.Vector[T], opts ...market.WriteOption) error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", errs.ErrInvalidArgument)
	}

	return writeFile(path, func(w io.Writer) error {
		return market.WriteVector(w, v, opts...)
	})
}

// ReadDelimitedFile reads a delimited-text matrix from the named file,
// decompressing by extension.
func ReadDelimitedFile[T numfmt.Value](path string, opts ...delimited.Option) (matrix.Matrix[T], error) {
	reader, err := delimited.NewReader[T](opts...)
	if err != nil {
		return nil, err
	}

	var m matrix.Matrix[T]
	err = readFile(path, func(r io.Reader) error {
		var err error
		m, err = reader.Read(r)

		return err
	})

	return m, err
}

// WriteDelimitedFile writes m to the named file as delimited text,
// compressing by extension.
func WriteDelimitedFile[T numfmt.Value](path string, m matrix.Matrix[T], opts ...delimited.Option) error {
	if m == nil {
		return fmt.Errorf("%w: nil matrix", errs.ErrInvalidArgument)
	}
	writer, err := delimited.NewWriter[T](opts...)
	if err != nil {
		return err
	}

	return writeFile(path, func(w io.Writer) error {
		return writer.Write(w, m)
	})
}

// readFile opens path, wraps it with the extension-selected codec and runs
// fn over the decompressed stream. Both the codec and the file are closed
// on every exit path.
func readFile(path string, fn func(io.Reader) error) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", errs.ErrInvalidArgument)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rc, err := compress.ForPath(path).WrapReader(f)
	if err != nil {
		return err
	}
	defer rc.Close()

	return fn(rc)
}

// writeFile creates path, wraps it with the extension-selected codec and
// runs fn over the compressing stream. The codec is closed before the file
// so the compressed tail is flushed; the first error wins.
func writeFile(path string, fn func(io.Writer) error) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", errs.ErrInvalidArgument)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	wc, err := compress.ForPath(path).WrapWriter(f)
	if err != nil {
		f.Close()
		return err
	}

	err = fn(wc)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	if ferr := f.Close(); err == nil {
		err = ferr
	}

	return err
}
