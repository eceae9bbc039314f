package compress

import "github.com/arloliu/matio/format"

// ZstdCodec wraps streams with Zstandard compression.
//
// The implementation is picked at build time: the cgo-backed
// valyala/gozstd when cgo is available, the pure-Go
// klauspost/compress/zstd otherwise. Both produce interchangeable frames.
type ZstdCodec struct{}

var _ StreamCodec = ZstdCodec{}

func (ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}
