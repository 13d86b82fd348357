package formulas

import (
	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// Seq is the sequence-of-T formula: a count-prefixed, packed array of
// elements under Elem's own formula. It satisfies NonRefFormula; being
// unbounded, it is still written behind a reference header when a
// composing formula writes it through WriteValue.
type Seq[T any, F Field[T]] struct {
	schema.NonRefTag
	Elem F
}

func (Seq[T, F]) Bound() schema.Bound { return schema.Unbounded() }
func (Seq[T, F]) ExactSize() bool     { return true }
func (q Seq[T, F]) Heapless() bool    { return q.Elem.Heapless() }

func (q Seq[T, F]) Serialize(s *ser.Serializer, v []T) error {
	return ser.WriteSlice[T, F](s, q.Elem, v)
}

func (q Seq[T, F]) Deserialize(d *de.Deserializer) ([]T, error) {
	return de.ReadSlice[T, F](d, q.Elem)
}
