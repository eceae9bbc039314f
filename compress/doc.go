// Package compress provides streaming compression codecs for the file
// entry points, so MatrixMarket and delimited files can be read and
// written transparently as .gz, .zst, .s2 or .lz4.
//
// Codecs wrap an io.Reader or io.Writer; the text codecs above them never
// see compressed bytes. Selection is by format.CompressionType or, for
// file paths, by extension via ForPath.
//
// Zstd has two implementations selected at build time: valyala/gozstd when
// cgo is available, the pure-Go klauspost/compress/zstd otherwise.
package compress
