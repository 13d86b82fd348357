package formulas

import (
	"github.com/zform/zform/de"
	"github.com/zform/zform/ser"
)

// Field pairs a host type T with a formula that can both write and read it,
// the shape every combinator formula in this package (Seq, Tuple2..4,
// Enum2..4) needs its type parameters to satisfy.
type Field[T any] interface {
	ser.Serializable[T]
	de.Deserializable[T]
}
