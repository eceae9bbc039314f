package delimited

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/arloliu/matio/errs"
	"github.com/arloliu/matio/internal/options"
	"github.com/arloliu/matio/matrix"
	"github.com/arloliu/matio/numfmt"
)

// lineTerminator is the platform line separator rows are joined with.
var lineTerminator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}

	return "\n"
}()

// Writer renders matrices of the output kind T as delimited text.
// A Writer is immutable and safe for concurrent use.
type Writer[T numfmt.Value] struct {
	cfg    config
	render numfmt.FormatFunc[T]
}

// NewWriter builds a writer from the given options. The default delimiter
// is ","; numeric dispatch is resolved here, before any cell is rendered.
func NewWriter[T numfmt.Value](opts ...Option) (*Writer[T], error) {
	cfg := config{delimiter: ",", culture: numfmt.Invariant}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.delimiter == "" {
		// the whitespace-splitting reader default has no single writable
		// form; a space round-trips
		cfg.delimiter = " "
	}
	render, err := numfmt.FormatterFor[T](cfg.numberFormat, cfg.culture)
	if err != nil {
		return nil, err
	}

	return &Writer[T]{cfg: cfg, render: render}, nil
}

// Write renders m to dst: the optional header line first, then one line
// per matrix row in row-major order. Rows are joined by the platform line
// terminator with no trailing delimiter or terminator.
func (w *Writer[T]) Write(dst io.Writer, m matrix.Matrix[T]) error {
	if dst == nil {
		return fmt.Errorf("%w: nil writer", errs.ErrInvalidArgument)
	}
	if m == nil {
		return fmt.Errorf("%w: nil matrix", errs.ErrInvalidArgument)
	}

	bw := bufio.NewWriter(dst)
	wroteLine := false
	if len(w.cfg.headers) > 0 {
		bw.WriteString(strings.Join(w.cfg.headers, w.cfg.delimiter))
		wroteLine = true
	}

	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		if wroteLine {
			bw.WriteString(lineTerminator)
		}
		wroteLine = true
		for j := 0; j < cols; j++ {
			if j > 0 {
				bw.WriteString(w.cfg.delimiter)
			}
			bw.WriteString(w.render(m.At(i, j)))
		}
	}

	return bw.Flush()
}

// WriteFile renders m to the named file, creating or truncating it.
func (w *Writer[T]) WriteFile(path string, m matrix.Matrix[T]) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", errs.ErrInvalidArgument)
	}
	if m == nil {
		return fmt.Errorf("%w: nil matrix", errs.ErrInvalidArgument)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w.Write(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Render returns m as a delimited string.
func (w *Writer[T]) Render(m matrix.Matrix[T]) (string, error) {
	if m == nil {
		return "", fmt.Errorf("%w: nil matrix", errs.ErrInvalidArgument)
	}

	var sb strings.Builder
	if err := w.Write(&sb, m); err != nil {
		return "", err
	}

	return sb.String(), nil
}
