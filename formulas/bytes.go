package formulas

import (
	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// Bytes is the owned byte blob formula: unbounded, exact-size, heapless in
// isolation (a collaborator that writes it through WriteValue decides
// whether it gets reference-indirected). It also satisfies BareFormula, a
// label that does not change how WriteValue places it.
type Bytes struct{ schema.BareTag }

func (Bytes) Bound() schema.Bound { return schema.Unbounded() }
func (Bytes) ExactSize() bool     { return true }
func (Bytes) Heapless() bool      { return true }

func (Bytes) Serialize(s *ser.Serializer, v []byte) error { return s.WriteBytes(v) }

func (Bytes) Deserialize(d *de.Deserializer) ([]byte, error) { return d.ReadBytes(d.Stack()) }
