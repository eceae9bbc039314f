// Package delimited reads and writes generic delimited-text tables
// (CSV/TSV-like) as numeric matrices.
//
// The reader tokenizes each line with a compiled pattern that keeps
// (...), '...' and "..." spans atomic and otherwise splits on the
// configured delimiter (default: any whitespace). Ragged inputs are legal:
// the result is sized rows × widest-row and short rows are zero-padded on
// the right. The writer renders row-major with a configurable delimiter,
// number format and culture, with no trailing delimiter or terminator.
//
// Readers and writers are immutable once constructed; all settings are
// supplied through functional options.
package delimited
