package compress

import (
	"io"

	"github.com/arloliu/matio/format"
)

// NoopCodec passes the stream through unchanged.
type NoopCodec struct{}

var _ StreamCodec = NoopCodec{}

func (NoopCodec) Type() format.CompressionType {
	return format.CompressionNone
}

func (NoopCodec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (NoopCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}
