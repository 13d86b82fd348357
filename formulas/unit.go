package formulas

import (
	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// Unit is the formula for Go's zero-size struct{}: occupies no stack bytes
// and touches no heap bytes at all.
type Unit struct{}

func (Unit) Bound() schema.Bound { return schema.Fixed(0) }
func (Unit) ExactSize() bool     { return true }
func (Unit) Heapless() bool      { return true }

func (Unit) Serialize(*ser.Serializer, struct{}) error { return nil }

func (Unit) Deserialize(*de.Deserializer) (struct{}, error) { return struct{}{}, nil }
