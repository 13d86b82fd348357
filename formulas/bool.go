package formulas

import (
	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// Bool is a bounded, exact-size, heapless formula for bool, encoded as a
// single byte (0 or 1).
type Bool struct{}

func (Bool) Bound() schema.Bound { return schema.Fixed(1) }
func (Bool) ExactSize() bool     { return true }
func (Bool) Heapless() bool      { return true }

func (Bool) Serialize(s *ser.Serializer, v bool) error {
	b := byte(0)
	if v {
		b = 1
	}
	return s.WriteBytes([]byte{b})
}

func (Bool) Deserialize(d *de.Deserializer) (bool, error) {
	b, err := d.ReadBytes(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}
