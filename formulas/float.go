package formulas

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/zform/zform/de"
	"github.com/zform/zform/errs"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// Float is a bounded, exact-size, heapless formula for float32 or float64,
// encoded little-endian over its IEEE-754 bit pattern.
type Float[T constraints.Float] struct{}

func (Float[T]) Bound() schema.Bound {
	var zero T
	return schema.Fixed(int(unsafe.Sizeof(zero)))
}

func (Float[T]) ExactSize() bool { return true }
func (Float[T]) Heapless() bool  { return true }

func (Float[T]) Serialize(s *ser.Serializer, v T) error {
	switch unsafe.Sizeof(v) {
	case 4:
		var buf [4]byte
		bits := math.Float32bits(float32(v))
		for i := 0; i < 4; i++ {
			buf[i] = byte(bits)
			bits >>= 8
		}
		return s.WriteBytes(buf[:])
	case 8:
		var buf [8]byte
		bits := math.Float64bits(float64(v))
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits)
			bits >>= 8
		}
		return s.WriteBytes(buf[:])
	default:
		return errs.ErrWrongLength
	}
}

func (Float[T]) Deserialize(d *de.Deserializer) (T, error) {
	var zero T
	switch unsafe.Sizeof(zero) {
	case 4:
		b, err := d.ReadBytes(4)
		if err != nil {
			return zero, err
		}
		var bits uint32
		for i := 3; i >= 0; i-- {
			bits = bits<<8 | uint32(b[i])
		}
		return T(math.Float32frombits(bits)), nil
	case 8:
		b, err := d.ReadBytes(8)
		if err != nil {
			return zero, err
		}
		var bits uint64
		for i := 7; i >= 0; i-- {
			bits = bits<<8 | uint64(b[i])
		}
		return T(math.Float64frombits(bits)), nil
	default:
		return zero, errs.ErrWrongLength
	}
}
