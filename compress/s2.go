package compress

import (
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/matio/format"
)

// S2Codec wraps streams with S2 compression.
type S2Codec struct{}

var _ StreamCodec = S2Codec{}

func (S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

func (S2Codec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

func (S2Codec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}
