package compress

import "fmt"

// Compressor compresses a byte payload. The input slice is never modified.
// The zstd and LZ4 codecs return a newly allocated result; NoOpCompressor
// returns its input slice itself.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte payload produced by the matching
// Compressor. As with Compressor, only NoOpCompressor returns its input
// slice rather than a newly allocated result.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a single algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Algorithm names a compression codec a formula can select.
type Algorithm string

const (
	AlgorithmNone Algorithm = "none"
	AlgorithmZstd Algorithm = "zstd"
	AlgorithmLZ4  Algorithm = "lz4"
)

// NewCodec returns the built-in Codec for the named algorithm.
func NewCodec(alg Algorithm) (Codec, error) {
	switch alg {
	case AlgorithmNone:
		return NewNoOpCompressor(), nil
	case AlgorithmZstd:
		return NewZstdCompressor(), nil
	case AlgorithmLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("compress: unknown algorithm %q", alg)
	}
}

// CompressionStats summarizes one compression operation, for callers that
// want to track the space tradeoff formulas.CompressedBytes/LZ4Bytes make
// against the core's usual zero-copy decode.
type CompressionStats struct {
	Algorithm      Algorithm
	OriginalSize   int
	CompressedSize int
}

// Ratio returns CompressedSize/OriginalSize; 0 if OriginalSize is 0.
func (s CompressionStats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}
