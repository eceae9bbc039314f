// Package errs defines sentinel errors shared across matio packages.
//
// All errors are wrapped with fmt.Errorf("%w: detail", ...) at the failure
// site, so callers can match the category with errors.Is while still seeing
// the offending line or token in the message.
package errs

import "errors"

// MatrixMarket header stage errors.
var (
	// ErrMissingHeader indicates the stream ended before a %%MatrixMarket
	// header line was found.
	ErrMissingHeader = errors.New("missing MatrixMarket header")

	// ErrMalformedHeader indicates a header line with the wrong number of
	// tokens after the %%MatrixMarket marker.
	ErrMalformedHeader = errors.New("malformed MatrixMarket header")

	// ErrWrongObjectKind indicates the header declares a different object
	// (matrix vs vector) than the caller requested.
	ErrWrongObjectKind = errors.New("wrong MatrixMarket object kind")

	// ErrUnsupportedSymmetry indicates a symmetry token other than "general".
	// Symmetric, skew-symmetric and Hermitian bodies are rejected, not
	// reconstructed.
	ErrUnsupportedSymmetry = errors.New("unsupported MatrixMarket symmetry")

	// ErrUnsupportedField indicates a field token outside
	// {real, double, integer, complex}.
	ErrUnsupportedField = errors.New("unsupported MatrixMarket field")

	// ErrUnsupportedLayout indicates a format token outside {array, coordinate}.
	ErrUnsupportedLayout = errors.New("unsupported MatrixMarket format")
)

// Body and dispatch stage errors.
var (
	// ErrUnexpectedEOF indicates a required line (dimension line or body
	// line) was absent before end of stream.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")

	// ErrUnsupportedType indicates the requested numeric output kind has no
	// registered parser or formatter. Reported at dispatch construction,
	// before any row is read.
	ErrUnsupportedType = errors.New("unsupported numeric type")

	// ErrNumberParse indicates a token failed literal-to-number conversion.
	ErrNumberParse = errors.New("number parse failed")

	// ErrIndexOutOfRange indicates a sparse entry index outside the declared
	// dimensions.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrShortData indicates a dense body produced fewer values than the
	// declared dimensions require.
	ErrShortData = errors.New("not enough values for declared dimensions")
)

// Writer and argument errors.
var (
	// ErrInvalidArgument indicates an absent required argument to a write
	// entry point, checked before any output is produced.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyInput indicates a delimited source with zero data rows. It is
	// distinct from a zero-size matrix: no container is produced at all.
	ErrEmptyInput = errors.New("no data rows in input")
)
