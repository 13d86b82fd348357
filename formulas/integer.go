package formulas

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// Int is a bounded, exact-size, heapless formula for any fixed-width
// signed or unsigned integer type, encoded little-endian over its native
// width (1, 2, 4 or 8 bytes, per unsafe.Sizeof).
type Int[T constraints.Integer] struct{}

func (Int[T]) Bound() schema.Bound {
	var zero T
	return schema.Fixed(int(unsafe.Sizeof(zero)))
}

func (Int[T]) ExactSize() bool { return true }
func (Int[T]) Heapless() bool  { return true }

func (Int[T]) Serialize(s *ser.Serializer, v T) error {
	size := int(unsafe.Sizeof(v))
	buf := make([]byte, size)
	u := uint64(v)
	for i := 0; i < size; i++ {
		buf[i] = byte(u)
		u >>= 8
	}
	return s.WriteBytes(buf)
}

func (Int[T]) Deserialize(d *de.Deserializer) (T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	b, err := d.ReadBytes(size)
	if err != nil {
		return zero, err
	}
	var u uint64
	for i := size - 1; i >= 0; i-- {
		u = u<<8 | uint64(b[i])
	}
	return T(u), nil
}
