package formulas

import (
	"github.com/zform/zform/de"
	"github.com/zform/zform/errs"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
	"github.com/zform/zform/wire"
)

// Either2/Either3/Either4 are closed, discriminated unions: Tag selects
// which of the other fields holds the valid value. Only Enum{2,3,4}
// interpret Tag; other fields are zero-valued when not selected.
type Either2[A, B any] struct {
	Tag  int
	V0 A
	V1 B
}

type Either3[A, B, C any] struct {
	Tag  int
	V0 A
	V1 B
	V2 C
}

type Either4[A, B, C, D any] struct {
	Tag  int
	V0 A
	V1 B
	V2 C
	V3 D
}

// effectiveBound is the footprint a field actually occupies once written
// through WriteValue: its own bound if bounded, or a fixed reference
// header if not (WriteValue routes unbounded fields through WriteRef). An
// enum's variants are therefore always individually fixed-size, even when
// built from unbounded field formulas.
func effectiveBound(b schema.Bound) schema.Bound {
	if b.Bounded {
		return b
	}
	return schema.Ref()
}

// payloadBound is the widest effective footprint across an enum's
// variants: every variant slot is padded up to this size, so the enum as
// a whole is always Bounded regardless of its fields' own bounds.
func payloadBound(bounds ...schema.Bound) schema.Bound {
	max := effectiveBound(bounds[0])
	for _, b := range bounds[1:] {
		max = schema.MaxBound(max, effectiveBound(b))
	}
	return max
}

// writePadded writes v under f as a fixed enum-variant slot: the field's
// own WriteValue encoding (inline if bounded, reference header if not) is
// zero-padded up to targetSize, the widest variant's effective footprint,
// since every variant of an enum must occupy the same stack space
// regardless of which one was written.
func writePadded[T any, F ser.Serializable[T]](s *ser.Serializer, f F, v T, targetSize int) error {
	before := s.Stack()
	if err := ser.WriteValue[T, F](s, f, v); err != nil {
		return err
	}
	written := s.Stack() - before
	if written > targetSize {
		return errs.ErrWrongLength
	}
	if written < targetSize {
		return s.WriteBytes(make([]byte, targetSize-written))
	}
	return nil
}

// writeDiscriminant appends tag as the enum's FixedUsize discriminant. It
// is written last (lowest address) so the forward byte layout reads
// discriminant-then-payload, per the core's encoding rule for enums.
func writeDiscriminant(s *ser.Serializer, tag int) error {
	w, err := wire.FromUsize(tag)
	if err != nil {
		return err
	}
	var buf [wire.Size]byte
	w.PutBytes(buf[:])
	return s.WriteBytes(buf[:])
}

// readDiscriminant reads the enum's FixedUsize discriminant from the front
// of the current scope (it sits at the lowest address, even though it was
// the last thing written), leaving the remaining scope positioned so the
// payload can still be read with the usual tail-consuming reads.
func readDiscriminant(d *de.Deserializer) (int, error) {
	b, err := d.ReadFront(wire.Size)
	if err != nil {
		return 0, err
	}
	return wire.DecodeFixedUsize(b).ToUsize()
}

// Enum2 is a closed, two-variant discriminated union formula: a FixedUsize
// discriminant followed by the selected variant's payload.
type Enum2[A, B any, FA Field[A], FB Field[B]] struct{}

func (Enum2[A, B, FA, FB]) fields() (FA, FB) {
	var fa FA
	var fb FB
	return fa, fb
}

func (e Enum2[A, B, FA, FB]) Bound() schema.Bound {
	fa, fb := e.fields()
	payload := payloadBound(fa.Bound(), fb.Bound())
	if !payload.Bounded {
		return schema.Unbounded()
	}
	return schema.Fixed(wire.Size + payload.Size)
}

func (Enum2[A, B, FA, FB]) ExactSize() bool { return false }

func (e Enum2[A, B, FA, FB]) Heapless() bool {
	fa, fb := e.fields()
	return fa.Heapless() && fb.Heapless()
}

func (e Enum2[A, B, FA, FB]) Serialize(s *ser.Serializer, v Either2[A, B]) error {
	fa, fb := e.fields()
	bound := e.Bound()
	payloadSize := 0
	if bound.Bounded {
		payloadSize = bound.Size - wire.Size
	}

	switch v.Tag {
	case 0:
		if bound.Bounded {
			if err := writePadded[A, FA](s, fa, v.V0, payloadSize); err != nil {
				return err
			}
		} else if err := ser.WriteValue[A, FA](s, fa, v.V0); err != nil {
			return err
		}
	case 1:
		if bound.Bounded {
			if err := writePadded[B, FB](s, fb, v.V1, payloadSize); err != nil {
				return err
			}
		} else if err := ser.WriteValue[B, FB](s, fb, v.V1); err != nil {
			return err
		}
	default:
		return errs.WrongVariantError{Tag: uint32(v.Tag)}
	}
	return writeDiscriminant(s, v.Tag)
}

func (e Enum2[A, B, FA, FB]) Deserialize(d *de.Deserializer) (Either2[A, B], error) {
	fa, fb := e.fields()
	tag, err := readDiscriminant(d)
	if err != nil {
		return Either2[A, B]{}, err
	}
	switch tag {
	case 0:
		v0, err := de.ReadValue[A, FA](d, fa)
		if err != nil {
			return Either2[A, B]{}, err
		}
		return Either2[A, B]{Tag: 0, V0: v0}, nil
	case 1:
		v1, err := de.ReadValue[B, FB](d, fb)
		if err != nil {
			return Either2[A, B]{}, err
		}
		return Either2[A, B]{Tag: 1, V1: v1}, nil
	default:
		return Either2[A, B]{}, errs.WrongVariantError{Tag: uint32(tag)}
	}
}

// Enum3 is Enum2 extended to three variants.
type Enum3[A, B, C any, FA Field[A], FB Field[B], FC Field[C]] struct{}

func (Enum3[A, B, C, FA, FB, FC]) fields() (FA, FB, FC) {
	var fa FA
	var fb FB
	var fc FC
	return fa, fb, fc
}

func (e Enum3[A, B, C, FA, FB, FC]) Bound() schema.Bound {
	fa, fb, fc := e.fields()
	payload := payloadBound(fa.Bound(), fb.Bound(), fc.Bound())
	if !payload.Bounded {
		return schema.Unbounded()
	}
	return schema.Fixed(wire.Size + payload.Size)
}

func (Enum3[A, B, C, FA, FB, FC]) ExactSize() bool { return false }

func (e Enum3[A, B, C, FA, FB, FC]) Heapless() bool {
	fa, fb, fc := e.fields()
	return fa.Heapless() && fb.Heapless() && fc.Heapless()
}

func (e Enum3[A, B, C, FA, FB, FC]) Serialize(s *ser.Serializer, v Either3[A, B, C]) error {
	fa, fb, fc := e.fields()
	bound := e.Bound()
	payloadSize := 0
	if bound.Bounded {
		payloadSize = bound.Size - wire.Size
	}

	switch v.Tag {
	case 0:
		if bound.Bounded {
			if err := writePadded[A, FA](s, fa, v.V0, payloadSize); err != nil {
				return err
			}
		} else if err := ser.WriteValue[A, FA](s, fa, v.V0); err != nil {
			return err
		}
	case 1:
		if bound.Bounded {
			if err := writePadded[B, FB](s, fb, v.V1, payloadSize); err != nil {
				return err
			}
		} else if err := ser.WriteValue[B, FB](s, fb, v.V1); err != nil {
			return err
		}
	case 2:
		if bound.Bounded {
			if err := writePadded[C, FC](s, fc, v.V2, payloadSize); err != nil {
				return err
			}
		} else if err := ser.WriteValue[C, FC](s, fc, v.V2); err != nil {
			return err
		}
	default:
		return errs.WrongVariantError{Tag: uint32(v.Tag)}
	}
	return writeDiscriminant(s, v.Tag)
}

func (e Enum3[A, B, C, FA, FB, FC]) Deserialize(d *de.Deserializer) (Either3[A, B, C], error) {
	fa, fb, fc := e.fields()
	tag, err := readDiscriminant(d)
	if err != nil {
		return Either3[A, B, C]{}, err
	}
	switch tag {
	case 0:
		v0, err := de.ReadValue[A, FA](d, fa)
		if err != nil {
			return Either3[A, B, C]{}, err
		}
		return Either3[A, B, C]{Tag: 0, V0: v0}, nil
	case 1:
		v1, err := de.ReadValue[B, FB](d, fb)
		if err != nil {
			return Either3[A, B, C]{}, err
		}
		return Either3[A, B, C]{Tag: 1, V1: v1}, nil
	case 2:
		v2, err := de.ReadValue[C, FC](d, fc)
		if err != nil {
			return Either3[A, B, C]{}, err
		}
		return Either3[A, B, C]{Tag: 2, V2: v2}, nil
	default:
		return Either3[A, B, C]{}, errs.WrongVariantError{Tag: uint32(tag)}
	}
}

// Enum4 is Enum2 extended to four variants.
type Enum4[A, B, C, D any, FA Field[A], FB Field[B], FC Field[C], FD Field[D]] struct{}

func (Enum4[A, B, C, D, FA, FB, FC, FD]) fields() (FA, FB, FC, FD) {
	var fa FA
	var fb FB
	var fc FC
	var fd FD
	return fa, fb, fc, fd
}

func (e Enum4[A, B, C, D, FA, FB, FC, FD]) Bound() schema.Bound {
	fa, fb, fc, fd := e.fields()
	payload := payloadBound(fa.Bound(), fb.Bound(), fc.Bound(), fd.Bound())
	if !payload.Bounded {
		return schema.Unbounded()
	}
	return schema.Fixed(wire.Size + payload.Size)
}

func (Enum4[A, B, C, D, FA, FB, FC, FD]) ExactSize() bool { return false }

func (e Enum4[A, B, C, D, FA, FB, FC, FD]) Heapless() bool {
	fa, fb, fc, fd := e.fields()
	return fa.Heapless() && fb.Heapless() && fc.Heapless() && fd.Heapless()
}

func (e Enum4[A, B, C, D, FA, FB, FC, FD]) Serialize(s *ser.Serializer, v Either4[A, B, C, D]) error {
	fa, fb, fc, fd := e.fields()
	bound := e.Bound()
	payloadSize := 0
	if bound.Bounded {
		payloadSize = bound.Size - wire.Size
	}

	switch v.Tag {
	case 0:
		if bound.Bounded {
			if err := writePadded[A, FA](s, fa, v.V0, payloadSize); err != nil {
				return err
			}
		} else if err := ser.WriteValue[A, FA](s, fa, v.V0); err != nil {
			return err
		}
	case 1:
		if bound.Bounded {
			if err := writePadded[B, FB](s, fb, v.V1, payloadSize); err != nil {
				return err
			}
		} else if err := ser.WriteValue[B, FB](s, fb, v.V1); err != nil {
			return err
		}
	case 2:
		if bound.Bounded {
			if err := writePadded[C, FC](s, fc, v.V2, payloadSize); err != nil {
				return err
			}
		} else if err := ser.WriteValue[C, FC](s, fc, v.V2); err != nil {
			return err
		}
	case 3:
		if bound.Bounded {
			if err := writePadded[D, FD](s, fd, v.V3, payloadSize); err != nil {
				return err
			}
		} else if err := ser.WriteValue[D, FD](s, fd, v.V3); err != nil {
			return err
		}
	default:
		return errs.WrongVariantError{Tag: uint32(v.Tag)}
	}
	return writeDiscriminant(s, v.Tag)
}

func (e Enum4[A, B, C, D, FA, FB, FC, FD]) Deserialize(d *de.Deserializer) (Either4[A, B, C, D], error) {
	fa, fb, fc, fd := e.fields()
	tag, err := readDiscriminant(d)
	if err != nil {
		return Either4[A, B, C, D]{}, err
	}
	switch tag {
	case 0:
		v0, err := de.ReadValue[A, FA](d, fa)
		if err != nil {
			return Either4[A, B, C, D]{}, err
		}
		return Either4[A, B, C, D]{Tag: 0, V0: v0}, nil
	case 1:
		v1, err := de.ReadValue[B, FB](d, fb)
		if err != nil {
			return Either4[A, B, C, D]{}, err
		}
		return Either4[A, B, C, D]{Tag: 1, V1: v1}, nil
	case 2:
		v2, err := de.ReadValue[C, FC](d, fc)
		if err != nil {
			return Either4[A, B, C, D]{}, err
		}
		return Either4[A, B, C, D]{Tag: 2, V2: v2}, nil
	case 3:
		v3, err := de.ReadValue[D, FD](d, fd)
		if err != nil {
			return Either4[A, B, C, D]{}, err
		}
		return Either4[A, B, C, D]{Tag: 3, V3: v3}, nil
	default:
		return Either4[A, B, C, D]{}, errs.WrongVariantError{Tag: uint32(tag)}
	}
}
