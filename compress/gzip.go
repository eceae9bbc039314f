package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/matio/format"
)

// GzipCodec wraps streams with gzip, the most common wrapping for
// published MatrixMarket files.
type GzipCodec struct{}

var _ StreamCodec = GzipCodec{}

func (GzipCodec) Type() format.CompressionType {
	return format.CompressionGzip
}

func (GzipCodec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (GzipCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
