package numfmt

import (
	"fmt"

	"github.com/arloliu/matio/errs"
)

// Value is the closed set of numeric output kinds both codecs can produce.
type Value interface {
	~float64 | ~float32 | ~complex128 | ~complex64
}

// ParseFunc converts the token(s) of one entry, starting at offset, into a
// value of the requested kind.
type ParseFunc[T Value] func(tokens []string, offset int) (T, error)

// ParserFor selects the token conversion for the output kind T once, before
// any row is read.
//
// complexSource reports whether the source carries separate real and
// imaginary tokens per entry (MatrixMarket complex field):
//   - Real targets read only the token at offset; an imaginary token, when
//     present, is discarded without error. This narrowing is deliberate.
//   - Complex targets read offset and offset+1 when complexSource is set;
//     otherwise the single token at offset is parsed as a complex literal,
//     so plain reals yield a zero imaginary part.
//
// A defined type instantiation outside the four concrete kinds fails with
// errs.ErrUnsupportedType here, not per element.
func ParserFor[T Value](complexSource bool, c Culture) (ParseFunc[T], error) {
	var zero T
	switch any(zero).(type) {
	case float64:
		var fn ParseFunc[float64] = func(tokens []string, offset int) (float64, error) {
			if offset >= len(tokens) {
				return 0, fmt.Errorf("%w: missing value token", errs.ErrNumberParse)
			}

			return c.parseFloat(tokens[offset], 64)
		}

		return any(fn).(ParseFunc[T]), nil

	case float32:
		var fn ParseFunc[float32] = func(tokens []string, offset int) (float32, error) {
			if offset >= len(tokens) {
				return 0, fmt.Errorf("%w: missing value token", errs.ErrNumberParse)
			}
			v, err := c.parseFloat(tokens[offset], 32)

			return float32(v), err
		}

		return any(fn).(ParseFunc[T]), nil

	case complex128:
		var fn ParseFunc[complex128]
		if complexSource {
			fn = func(tokens []string, offset int) (complex128, error) {
				re, im, err := c.parseParts(tokens, offset, 64)
				if err != nil {
					return 0, err
				}

				return complex(re, im), nil
			}
		} else {
			fn = func(tokens []string, offset int) (complex128, error) {
				if offset >= len(tokens) {
					return 0, fmt.Errorf("%w: missing value token", errs.ErrNumberParse)
				}

				return c.parseComplex(tokens[offset], 128)
			}
		}

		return any(fn).(ParseFunc[T]), nil

	case complex64:
		var fn ParseFunc[complex64]
		if complexSource {
			fn = func(tokens []string, offset int) (complex64, error) {
				re, im, err := c.parseParts(tokens, offset, 32)
				if err != nil {
					return 0, err
				}

				return complex(float32(re), float32(im)), nil
			}
		} else {
			fn = func(tokens []string, offset int) (complex64, error) {
				if offset >= len(tokens) {
					return 0, fmt.Errorf("%w: missing value token", errs.ErrNumberParse)
				}
				v, err := c.parseComplex(tokens[offset], 64)

				return complex64(v), err
			}
		}

		return any(fn).(ParseFunc[T]), nil

	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedType, zero)
	}
}

// parseParts reads the real token at offset and the imaginary token at
// offset+1 of a complex-field entry.
func (c Culture) parseParts(tokens []string, offset int, bitSize int) (re, im float64, err error) {
	if offset+1 >= len(tokens) {
		return 0, 0, fmt.Errorf("%w: missing real or imaginary token", errs.ErrNumberParse)
	}
	re, err = c.parseFloat(tokens[offset], bitSize)
	if err != nil {
		return 0, 0, err
	}
	im, err = c.parseFloat(tokens[offset+1], bitSize)
	if err != nil {
		return 0, 0, err
	}

	return re, im, nil
}

// IsComplex reports whether the output kind T carries an imaginary part.
// The result is fixed by the type parameter, never by a value.
func IsComplex[T Value]() bool {
	var zero T
	switch any(zero).(type) {
	case complex128, complex64:
		return true
	default:
		return false
	}
}
