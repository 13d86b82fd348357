package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4BlockPool recycles lz4.Compressor instances: the type carries an
// internal hash table that is expensive to re-zero on every call, so
// Compress borrows one from here instead of allocating fresh each time.
var lz4BlockPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// LZ4Compressor is a fast, moderate-ratio Codec, favoring decode speed
// over the smaller wire footprint ZstdCompressor trades for.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor returns an LZ4Compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

func (LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	c := lz4BlockPool.Get().(*lz4.Compressor)
	defer lz4BlockPool.Put(c)

	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// lz4DecodeMaxBytes bounds how far Decompress will grow its scratch
// buffer before giving up on an input it suspects is corrupt or reports
// an implausible expansion ratio.
const lz4DecodeMaxBytes = 128 * 1024 * 1024

// Decompress decompresses an LZ4 block. LZ4 block frames carry no
// decompressed-size field, so the output size is unknown ahead of time:
// Decompress guesses a 4x expansion, then doubles on
// ErrInvalidSourceShortBuffer up to lz4DecodeMaxBytes.
func (LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return lz4DecompressGrowing(data, len(data)*4)
}

func lz4DecompressGrowing(data []byte, guess int) ([]byte, error) {
	if guess > lz4DecodeMaxBytes {
		return nil, lz4.ErrInvalidSourceShortBuffer
	}
	buf := make([]byte, guess)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return lz4DecompressGrowing(data, guess*2)
		}
		return nil, err
	}
	return buf[:n], nil
}
