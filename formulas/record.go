package formulas

import (
	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// EventRecord is a worked example of a fixed-layout aggregate built from
// Int formulas directly, the same primitives a derive macro would
// generate for a struct with no variable-size fields.
type EventRecord struct {
	ID    uint64
	Kind  uint16
	Flags uint8
}

// EventRecordFormula writes ID, Kind and Flags in reverse declared order
// (Flags, Kind, ID), so the dual-cursor stack region ends up holding them
// forward (ID, Kind, Flags). Deserialize reads them tail first, in the
// same Flags, Kind, ID order they were written.
type EventRecordFormula struct{}

func (EventRecordFormula) fields() (Int[uint64], Int[uint16], Int[uint8]) {
	return Int[uint64]{}, Int[uint16]{}, Int[uint8]{}
}

func (f EventRecordFormula) Bound() schema.Bound {
	id, kind, flags := f.fields()
	return schema.SumBound(schema.SumBound(id.Bound(), kind.Bound()), flags.Bound())
}

func (EventRecordFormula) ExactSize() bool { return true }
func (EventRecordFormula) Heapless() bool  { return true }

func (f EventRecordFormula) Serialize(s *ser.Serializer, v EventRecord) error {
	id, kind, flags := f.fields()
	if err := ser.WriteValue[uint8, Int[uint8]](s, flags, v.Flags); err != nil {
		return err
	}
	if err := ser.WriteValue[uint16, Int[uint16]](s, kind, v.Kind); err != nil {
		return err
	}
	return ser.WriteValue[uint64, Int[uint64]](s, id, v.ID)
}

func (f EventRecordFormula) Deserialize(d *de.Deserializer) (EventRecord, error) {
	id, kind, flags := f.fields()
	vFlags, err := de.ReadValue[uint8, Int[uint8]](d, flags)
	if err != nil {
		return EventRecord{}, err
	}
	vKind, err := de.ReadValue[uint16, Int[uint16]](d, kind)
	if err != nil {
		return EventRecord{}, err
	}
	vID, err := de.ReadValue[uint64, Int[uint64]](d, id)
	if err != nil {
		return EventRecord{}, err
	}
	return EventRecord{ID: vID, Kind: vKind, Flags: vFlags}, nil
}
