package format

import "strings"

type (
	ObjectType      uint8
	LayoutType      uint8
	FieldType       uint8
	SymmetryType    uint8
	CompressionType uint8
)

const (
	ObjectMatrix ObjectType = 0x1 // ObjectMatrix represents a two-dimensional matrix object.
	ObjectVector ObjectType = 0x2 // ObjectVector represents a one-dimensional vector object.

	LayoutArray      LayoutType = 0x1 // LayoutArray represents the dense column-major body layout.
	LayoutCoordinate LayoutType = 0x2 // LayoutCoordinate represents the sparse indexed-entry body layout.

	FieldReal    FieldType = 0x1 // FieldReal represents one value token per entry.
	FieldComplex FieldType = 0x2 // FieldComplex represents real and imaginary tokens per entry.

	SymmetryGeneral SymmetryType = 0x1 // SymmetryGeneral is the only accepted symmetry.

	CompressionNone CompressionType = 0x1 // CompressionNone represents plain text with no compression.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 compression.
)

func (o ObjectType) String() string {
	switch o {
	case ObjectMatrix:
		return "matrix"
	case ObjectVector:
		return "vector"
	default:
		return "unknown"
	}
}

func (l LayoutType) String() string {
	switch l {
	case LayoutArray:
		return "array"
	case LayoutCoordinate:
		return "coordinate"
	default:
		return "unknown"
	}
}

func (f FieldType) String() string {
	switch f {
	case FieldReal:
		return "real"
	case FieldComplex:
		return "complex"
	default:
		return "unknown"
	}
}

func (s SymmetryType) String() string {
	switch s {
	case SymmetryGeneral:
		return "general"
	default:
		return "unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseObject maps a MatrixMarket object token to its ObjectType.
// Comparison is case-insensitive per the format definition.
func ParseObject(token string) (ObjectType, bool) {
	switch strings.ToLower(token) {
	case "matrix":
		return ObjectMatrix, true
	case "vector":
		return ObjectVector, true
	default:
		return 0, false
	}
}

// ParseLayout maps a MatrixMarket format token to its LayoutType.
func ParseLayout(token string) (LayoutType, bool) {
	switch strings.ToLower(token) {
	case "array":
		return LayoutArray, true
	case "coordinate":
		return LayoutCoordinate, true
	default:
		return 0, false
	}
}

// ParseField maps a MatrixMarket field token to its FieldType.
// The double and integer tokens are accepted and parsed through the real
// value path.
func ParseField(token string) (FieldType, bool) {
	switch strings.ToLower(token) {
	case "real", "double", "integer":
		return FieldReal, true
	case "complex":
		return FieldComplex, true
	default:
		return 0, false
	}
}

// ParseSymmetry maps a MatrixMarket symmetry token to its SymmetryType.
// Only "general" parses; the reader rejects every other token.
func ParseSymmetry(token string) (SymmetryType, bool) {
	if strings.ToLower(token) == "general" {
		return SymmetryGeneral, true
	}

	return 0, false
}
