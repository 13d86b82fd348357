package formulas

import (
	"github.com/zform/zform/compress"
	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// LZ4Bytes is an owned, LZ4-backed byte blob formula, trading Zstandard's
// compression ratio for faster encode/decode. As with CompressedBytes,
// decoding allocates a fresh buffer rather than returning a borrowed view.
type LZ4Bytes struct{ schema.BareTag }

func (LZ4Bytes) Bound() schema.Bound { return schema.Unbounded() }
func (LZ4Bytes) ExactSize() bool     { return false }
func (LZ4Bytes) Heapless() bool      { return false }

func (LZ4Bytes) Serialize(s *ser.Serializer, v []byte) error {
	packed, err := compress.NewLZ4Compressor().Compress(v)
	if err != nil {
		return err
	}
	return s.WriteBytes(packed)
}

func (LZ4Bytes) Deserialize(d *de.Deserializer) ([]byte, error) {
	packed, err := d.ReadBytes(d.Stack())
	if err != nil {
		return nil, err
	}
	return compress.NewLZ4Compressor().Decompress(packed)
}
