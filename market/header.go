package market

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/matio/errs"
	"github.com/arloliu/matio/format"
)

// headerMarker is the lowercase form of the banner token opening every
// MatrixMarket header line. The token must match exactly, case aside.
const headerMarker = "%%matrixmarket"

// maxLineSize bounds a single input line. MatrixMarket lines hold at most
// a handful of tokens; 1 MiB leaves generous headroom.
const maxLineSize = 1 << 20

type header struct {
	object   format.ObjectType
	layout   format.LayoutType
	field    format.FieldType
	symmetry format.SymmetryType
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return sc
}

// scanHeader advances sc to the header line and validates it against the
// requested object kind. Lines before the marker are skipped.
func scanHeader(sc *bufio.Scanner, want format.ObjectType) (header, error) {
	for sc.Scan() {
		tokens := strings.Fields(strings.TrimSpace(sc.Text()))
		if len(tokens) == 0 || strings.ToLower(tokens[0]) != headerMarker {
			continue
		}
		if len(tokens) != 5 {
			return header{}, fmt.Errorf("%w: want 4 tokens after marker, got %d",
				errs.ErrMalformedHeader, len(tokens)-1)
		}

		var h header
		var ok bool
		if h.object, ok = format.ParseObject(tokens[1]); !ok || h.object != want {
			return header{}, fmt.Errorf("%w: want %s, header declares %q",
				errs.ErrWrongObjectKind, want, tokens[1])
		}
		if h.symmetry, ok = format.ParseSymmetry(tokens[4]); !ok {
			return header{}, fmt.Errorf("%w: %q", errs.ErrUnsupportedSymmetry, tokens[4])
		}
		if h.field, ok = format.ParseField(tokens[3]); !ok {
			return header{}, fmt.Errorf("%w: %q", errs.ErrUnsupportedField, tokens[3])
		}
		if h.layout, ok = format.ParseLayout(tokens[2]); !ok {
			return header{}, fmt.Errorf("%w: %q", errs.ErrUnsupportedLayout, tokens[2])
		}

		return h, nil
	}
	if err := sc.Err(); err != nil {
		return header{}, err
	}

	return header{}, errs.ErrMissingHeader
}

// scanDataLine returns the whitespace tokens of the next non-empty,
// non-comment line, or errs.ErrUnexpectedEOF when the stream ends first.
func scanDataLine(sc *bufio.Scanner) ([]string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		return strings.Fields(line), nil
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return nil, errs.ErrUnexpectedEOF
}

// parseDim parses one non-negative dimension token.
func parseDim(token string) (int, error) {
	n, err := strconv.ParseUint(token, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: dimension %q: %v", errs.ErrNumberParse, token, err)
	}

	return int(n), nil
}

// parseIndex parses one 1-based coordinate token. Range checking against
// the declared dimensions is left to the container constructor.
func parseIndex(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q: %v", errs.ErrNumberParse, token, err)
	}

	return n, nil
}

// matrixDims reads the dimension line of a matrix stream. Array layouts
// need "rows cols"; coordinate layouts carry a trailing entry count, which
// is not trusted: the body is read to end of stream regardless.
func matrixDims(sc *bufio.Scanner) (rows, cols int, err error) {
	fields, err := scanDataLine(sc)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: missing dimension line", err)
	}
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: dimension line needs rows and cols", errs.ErrMalformedHeader)
	}
	if rows, err = parseDim(fields[0]); err != nil {
		return 0, 0, err
	}
	if cols, err = parseDim(fields[1]); err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// vectorDims reads the dimension line of a vector stream: "length" with an
// optional untrusted entry count for coordinate layouts.
func vectorDims(sc *bufio.Scanner) (int, error) {
	fields, err := scanDataLine(sc)
	if err != nil {
		return 0, fmt.Errorf("%w: missing dimension line", err)
	}

	return parseDim(fields[0])
}
