package compress

// NoOpCompressor is the identity Codec: it hands data back unchanged in
// both directions. formulas.CompressedBytes/LZ4Bytes don't use it
// directly (they hardcode zstd/LZ4), but NewCodec(AlgorithmNone) gives
// callers building their own compressed-payload formula a zero-cost
// baseline with the same Codec shape as the real algorithms.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor returns a NoOpCompressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The result aliases data's backing
// array, so callers must not mutate data afterward if they still hold
// the returned slice.
func (NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged, the inverse of Compress.
func (NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
