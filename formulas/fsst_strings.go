package formulas

import (
	"encoding/binary"

	"github.com/axiomhq/fsst"

	"github.com/zform/zform/de"
	"github.com/zform/zform/errs"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// FSSTStrings is a sequence-of-strings formula backed by a trained FSST
// symbol table: the table is learned from the slice being written and
// shipped alongside the encoded codes, so decoding needs no external
// dictionary. Like CompressedBytes, values read through it are freshly
// allocated rather than zero-copy views.
//
// Wire layout (single opaque blob, all integers little-endian uint32):
//
//	table length | string count | table bytes | per-string encoded length... | encoded bytes...
type FSSTStrings struct{ schema.BareTag }

func (FSSTStrings) Bound() schema.Bound { return schema.Unbounded() }
func (FSSTStrings) ExactSize() bool     { return false }
func (FSSTStrings) Heapless() bool      { return false }

func (FSSTStrings) Serialize(s *ser.Serializer, v []string) error {
	table := fsst.TrainStrings(v)
	tableBytes, err := table.MarshalBinary()
	if err != nil {
		return err
	}

	encoded := make([][]byte, len(v))
	for i, str := range v {
		encoded[i] = table.EncodeAll([]byte(str))
	}

	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(len(tableBytes)))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(v)))

	lengths := make([]byte, 4*len(v))
	total := len(header) + len(tableBytes) + len(lengths)
	for i, e := range encoded {
		binary.LittleEndian.PutUint32(lengths[4*i:4*i+4], uint32(len(e)))
		total += len(e)
	}

	buf := make([]byte, 0, total)
	buf = append(buf, header[:]...)
	buf = append(buf, tableBytes...)
	buf = append(buf, lengths...)
	for _, e := range encoded {
		buf = append(buf, e...)
	}
	return s.WriteBytes(buf)
}

func (FSSTStrings) Deserialize(d *de.Deserializer) ([]string, error) {
	raw, err := d.ReadBytes(d.Stack())
	if err != nil {
		return nil, err
	}
	if len(raw) < 8 {
		return nil, errs.ErrOutOfBounds
	}
	tableLen := int(binary.LittleEndian.Uint32(raw[0:4]))
	count := int(binary.LittleEndian.Uint32(raw[4:8]))
	pos := 8
	if pos+tableLen > len(raw) {
		return nil, errs.ErrOutOfBounds
	}
	var table fsst.Table
	if err := table.UnmarshalBinary(raw[pos : pos+tableLen]); err != nil {
		return nil, err
	}
	pos += tableLen

	if pos+4*count > len(raw) {
		return nil, errs.ErrOutOfBounds
	}
	lengths := make([]int, count)
	for i := range lengths {
		lengths[i] = int(binary.LittleEndian.Uint32(raw[pos+4*i : pos+4*i+4]))
	}
	pos += 4 * count

	out := make([]string, count)
	for i, n := range lengths {
		if pos+n > len(raw) {
			return nil, errs.ErrOutOfBounds
		}
		out[i] = string(table.DecodeAll(raw[pos : pos+n]))
		pos += n
	}
	return out, nil
}
