// Package market reads and writes the NIST MatrixMarket plain-text
// interchange format.
//
// Supported streams carry a %%MatrixMarket header declaring a matrix or
// vector object, array (dense) or coordinate (sparse) layout, and a real
// or complex field. Only general symmetry is supported: symmetric, skew
// and Hermitian streams are rejected outright rather than reconstructed.
//
// Reading is a single forward pass: comment and blank lines are skipped
// wherever a data line is expected, bodies are consumed lazily one entry
// at a time, and coordinate indices are converted from the 1-based wire
// form to 0-based container indices. Number syntax is always invariant
// ('.' decimal point, no grouping), independent of any locale.
package market
