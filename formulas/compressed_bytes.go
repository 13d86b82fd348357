package formulas

import (
	"github.com/zform/zform/compress"
	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// CompressedBytes is an owned, Zstandard-backed byte blob formula. Unlike
// Bytes, decoding allocates a fresh buffer to hold the decompressed
// payload, so values read through it are not zero-copy views into the
// original message.
type CompressedBytes struct{ schema.BareTag }

func (CompressedBytes) Bound() schema.Bound { return schema.Unbounded() }
func (CompressedBytes) ExactSize() bool     { return false }
func (CompressedBytes) Heapless() bool      { return false }

func (CompressedBytes) Serialize(s *ser.Serializer, v []byte) error {
	packed, err := compress.NewZstdCompressor().Compress(v)
	if err != nil {
		return err
	}
	return s.WriteBytes(packed)
}

func (CompressedBytes) Deserialize(d *de.Deserializer) ([]byte, error) {
	packed, err := d.ReadBytes(d.Stack())
	if err != nil {
		return nil, err
	}
	return compress.NewZstdCompressor().Decompress(packed)
}
