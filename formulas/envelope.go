package formulas

import (
	"github.com/zform/zform"
	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
	"github.com/zform/zform/wire"
)

// Envelope embeds a value as a fully self-contained nested message: Inner
// is serialized independently (its own root header and all) via
// zform.SerializeIntoVec, and the resulting bytes are written directly
// into the parent's heap region through ser.Serializer.WriteRaw rather
// than through the generic reference-indirection path, since the bytes
// to place are already complete and sized, not something the parent needs
// to measure field-by-field. A fixed two-word (address, size) header
// pointing at the embedded message is the only thing Envelope puts on the
// parent's stack, so it is itself a bounded formula: a record containing
// an Envelope field behaves exactly like one containing any other
// reference-indirected field.
//
// Use this for a field whose value is logically an independent message
// (e.g. something also decoded on its own elsewhere), not as a substitute
// for Tuple/record field composition, which packs fields into the
// enclosing frame directly instead of nesting a whole extra header.
type Envelope[T any, F Field[T]] struct {
	schema.BareTag
	Inner F
}

func (Envelope[T, F]) Bound() schema.Bound { return schema.Ref() }
func (Envelope[T, F]) ExactSize() bool     { return true }
func (Envelope[T, F]) Heapless() bool      { return false }

func (e Envelope[T, F]) Serialize(s *ser.Serializer, v T) error {
	encoded, err := zform.SerializeIntoVec[T, F](e.Inner, v)
	if err != nil {
		return err
	}

	window, err := s.WriteRaw(len(encoded))
	if err != nil {
		return err
	}
	copy(window, encoded)

	addr, err := wire.FromUsize(s.Heap())
	if err != nil {
		return err
	}
	size, err := wire.FromUsize(len(encoded))
	if err != nil {
		return err
	}
	var hdr [wire.HeaderSize]byte
	addr.PutBytes(hdr[:wire.Size])
	size.PutBytes(hdr[wire.Size:])
	return s.WriteBytes(hdr[:])
}

func (e Envelope[T, F]) Deserialize(d *de.Deserializer) (T, error) {
	var zero T
	hdr, err := d.ReadBytes(wire.HeaderSize)
	if err != nil {
		return zero, err
	}
	addr, err := wire.DecodeFixedUsize(hdr[:wire.Size]).ToUsize()
	if err != nil {
		return zero, err
	}
	size, err := wire.DecodeFixedUsize(hdr[wire.Size:]).ToUsize()
	if err != nil {
		return zero, err
	}

	sub, err := d.Deref(addr, size)
	if err != nil {
		return zero, err
	}
	raw, err := sub.ReadBytes(sub.Stack())
	if err != nil {
		return zero, err
	}
	v, _, err := zform.Deserialize[T, F](e.Inner, raw)
	return v, err
}
