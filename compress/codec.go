package compress

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arloliu/matio/format"
)

// StreamCodec wraps byte streams with one compression algorithm.
//
// WrapWriter's result must be closed to flush the compressed tail before
// the underlying writer is closed; closing the wrapper never closes the
// underlying stream.
type StreamCodec interface {
	// Type returns the compression type this codec implements.
	Type() format.CompressionType
	// WrapReader returns a reader yielding the decompressed stream.
	WrapReader(r io.Reader) (io.ReadCloser, error)
	// WrapWriter returns a writer compressing into w.
	WrapWriter(w io.Writer) (io.WriteCloser, error)
}

// CodecFor returns the codec for the given compression type.
func CodecFor(t format.CompressionType) (StreamCodec, error) {
	switch t {
	case format.CompressionNone:
		return NoopCodec{}, nil
	case format.CompressionGzip:
		return GzipCodec{}, nil
	case format.CompressionZstd:
		return ZstdCodec{}, nil
	case format.CompressionS2:
		return S2Codec{}, nil
	case format.CompressionLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %v", t)
	}
}

// ForPath selects a codec from the file name extension: .gz, .zst, .zstd,
// .s2 and .lz4 map to their codecs, anything else to the pass-through.
func ForPath(path string) StreamCodec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return GzipCodec{}
	case ".zst", ".zstd":
		return ZstdCodec{}
	case ".s2":
		return S2Codec{}
	case ".lz4":
		return LZ4Codec{}
	default:
		return NoopCodec{}
	}
}

// nopWriteCloser adds a no-op Close to writers that need none.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
