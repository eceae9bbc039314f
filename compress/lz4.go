package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/matio/format"
)

// LZ4Codec wraps streams with LZ4 frame compression.
type LZ4Codec struct{}

var _ StreamCodec = LZ4Codec{}

func (LZ4Codec) Type() format.CompressionType {
	return format.CompressionLZ4
}

func (LZ4Codec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func (LZ4Codec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
