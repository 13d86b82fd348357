package formulas

import (
	"github.com/google/uuid"

	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// UUID is a bounded, exact-size, heapless formula for a 16-byte UUID.
type UUID struct{}

func (UUID) Bound() schema.Bound { return schema.Fixed(16) }
func (UUID) ExactSize() bool     { return true }
func (UUID) Heapless() bool      { return true }

func (UUID) Serialize(s *ser.Serializer, v uuid.UUID) error {
	return s.WriteBytes(v[:])
}

func (UUID) Deserialize(d *de.Deserializer) (uuid.UUID, error) {
	var out uuid.UUID
	b, err := d.ReadBytes(16)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}
