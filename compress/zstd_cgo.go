//go:build zstd_cgo

package compress

import "github.com/valyala/gozstd"

// zstdCgoLevel is the compression level passed to gozstd.CompressLevel;
// the cgo binding is picked for its faster encode path, not a smaller
// output, so this stays at the library's balanced default rather than
// trading more CPU for a marginally smaller frame.
const zstdCgoLevel = 3

func (ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdCgoLevel), nil
}

func (ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return gozstd.Decompress(nil, data)
}
