package delimited

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/arloliu/matio/errs"
	"github.com/arloliu/matio/internal/options"
	"github.com/arloliu/matio/matrix"
	"github.com/arloliu/matio/numfmt"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

type config struct {
	delimiter    string
	culture      numfmt.Culture
	hasHeaderRow bool
	sparse       bool
	numberFormat string
	headers      []string
}

// Option configures a Reader or Writer at construction time.
type Option = options.Option[*config]

// WithDelimiter sets the field separator. Every rune of the string acts as
// a separator; the reader default is any whitespace, the writer default
// is ",".
func WithDelimiter(d string) Option {
	return options.NoError(func(c *config) {
		c.delimiter = d
	})
}

// WithCulture sets the numeric punctuation rules for parsing and
// formatting. The default is numfmt.Invariant.
func WithCulture(culture numfmt.Culture) Option {
	return options.NoError(func(c *config) {
		c.culture = culture
	})
}

// WithHeaderRow makes the reader discard the first physical line without
// parsing it. An empty stream with a header row still reads as zero data
// rows, never as an error beyond errs.ErrEmptyInput.
func WithHeaderRow(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.hasHeaderRow = enabled
	})
}

// WithSparse makes the reader assemble a *matrix.Sparse instead of a
// *matrix.Dense.
func WithSparse(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.sparse = enabled
	})
}

// WithNumberFormat sets the fmt verb the writer renders each cell with.
// The default is numfmt.DefaultFormat. The reader ignores it.
func WithNumberFormat(verb string) Option {
	return options.NoError(func(c *config) {
		c.numberFormat = verb
	})
}

// WithColumnHeaders sets the header tokens the writer emits as its first
// line. No header line is written when the list is empty. The reader
// ignores it.
func WithColumnHeaders(headers ...string) Option {
	return options.NoError(func(c *config) {
		c.headers = headers
	})
}

// Reader reads delimited text into a matrix of the output kind T.
// A Reader is immutable and safe for concurrent use; each Read call owns
// its source exclusively.
type Reader[T numfmt.Value] struct {
	cfg   config
	tok   *regexp.Regexp
	parse numfmt.ParseFunc[T]
}

// NewReader builds a reader from the given options. The tokenizer is
// compiled here, once per delimiter configuration, and numeric dispatch is
// resolved before any row is read.
func NewReader[T numfmt.Value](opts ...Option) (*Reader[T], error) {
	cfg := config{culture: numfmt.Invariant}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	tok, err := tokenizerFor(cfg.delimiter)
	if err != nil {
		return nil, err
	}
	parse, err := numfmt.ParserFor[T](false, cfg.culture)
	if err != nil {
		return nil, err
	}

	return &Reader[T]{cfg: cfg, tok: tok, parse: parse}, nil
}

// Read consumes src to end of stream and assembles the matrix.
//
// Every non-empty trimmed line becomes one row; the column count is the
// widest row seen, and shorter rows are zero-padded on the right. All rows
// are buffered before allocation because the final width is unknown until
// the last line. Zero data rows yield errs.ErrEmptyInput and no container.
func (r *Reader[T]) Read(src io.Reader) (matrix.Matrix[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil reader", errs.ErrInvalidArgument)
	}

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	skipHeader := r.cfg.hasHeaderRow
	var rows [][]string
	maxLen := 0
	for sc.Scan() {
		if skipHeader {
			// The first physical line is discarded unconditionally, even
			// when blank.
			skipHeader = false
			continue
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tokens := r.tok.FindAllString(line, -1)
		rows = append(rows, tokens)
		if len(tokens) > maxLen {
			maxLen = len(tokens)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.ErrEmptyInput
	}

	var m matrix.Matrix[T]
	if r.cfg.sparse {
		m = matrix.NewSparse[T](len(rows), maxLen)
	} else {
		m = matrix.NewDense[T](len(rows), maxLen)
	}

	var zero T
	cells := make([]string, 0, maxLen)
	for i, row := range rows {
		cells = cells[:0]
		for _, t := range row {
			cells = append(cells, unquote(strings.TrimSpace(t)))
		}
		for j := range cells {
			v, err := r.parse(cells, j)
			if err != nil {
				return nil, fmt.Errorf("row %d, col %d: %w", i, j, err)
			}
			if r.cfg.sparse && v == zero {
				continue
			}
			m.Set(i, j, v)
		}
	}

	return m, nil
}
