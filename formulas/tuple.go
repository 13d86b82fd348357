package formulas

import (
	"github.com/zform/zform/de"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// Pair2/Pair3/Pair4 are the host value types Tuple2/Tuple3/Tuple4 write and
// read, field names following positional 0-, 1-, 2-, 3-indexed tuple
// access (Go has no anonymous tuple type).
type Pair2[A, B any] struct {
	V0 A
	V1 B
}

type Pair3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

type Pair4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Tuple2 sums its two fields' bounds. Fields are processed in reverse
// declared order on both serialize and deserialize (V1 before V0): the
// dual-cursor model's stack region is filled back-to-front, so writing the
// last-declared field first is what lands it at the highest address and
// the first-declared field at the lowest, producing a forward (V0, V1)
// byte layout.
type Tuple2[A, B any, FA Field[A], FB Field[B]] struct{}

func (Tuple2[A, B, FA, FB]) fields() (FA, FB) {
	var fa FA
	var fb FB
	return fa, fb
}

func (t Tuple2[A, B, FA, FB]) Bound() schema.Bound {
	fa, fb := t.fields()
	return schema.SumBound(fa.Bound(), fb.Bound())
}

func (t Tuple2[A, B, FA, FB]) ExactSize() bool {
	fa, fb := t.fields()
	return fa.ExactSize() && fb.ExactSize()
}

func (t Tuple2[A, B, FA, FB]) Heapless() bool {
	fa, fb := t.fields()
	return fa.Heapless() && fb.Heapless()
}

func (t Tuple2[A, B, FA, FB]) Serialize(s *ser.Serializer, v Pair2[A, B]) error {
	fa, fb := t.fields()
	if err := ser.WriteValue[B, FB](s, fb, v.V1); err != nil {
		return err
	}
	return ser.WriteValue[A, FA](s, fa, v.V0)
}

func (t Tuple2[A, B, FA, FB]) Deserialize(d *de.Deserializer) (Pair2[A, B], error) {
	fa, fb := t.fields()
	v1, err := de.ReadValue[B, FB](d, fb)
	if err != nil {
		return Pair2[A, B]{}, err
	}
	v0, err := de.ReadValue[A, FA](d, fa)
	if err != nil {
		return Pair2[A, B]{}, err
	}
	return Pair2[A, B]{V0: v0, V1: v1}, nil
}

// Tuple3 is Tuple2 extended to three fields, processed V2, V1, V0.
type Tuple3[A, B, C any, FA Field[A], FB Field[B], FC Field[C]] struct{}

func (Tuple3[A, B, C, FA, FB, FC]) fields() (FA, FB, FC) {
	var fa FA
	var fb FB
	var fc FC
	return fa, fb, fc
}

func (t Tuple3[A, B, C, FA, FB, FC]) Bound() schema.Bound {
	fa, fb, fc := t.fields()
	return schema.SumBound(schema.SumBound(fa.Bound(), fb.Bound()), fc.Bound())
}

func (t Tuple3[A, B, C, FA, FB, FC]) ExactSize() bool {
	fa, fb, fc := t.fields()
	return fa.ExactSize() && fb.ExactSize() && fc.ExactSize()
}

func (t Tuple3[A, B, C, FA, FB, FC]) Heapless() bool {
	fa, fb, fc := t.fields()
	return fa.Heapless() && fb.Heapless() && fc.Heapless()
}

func (t Tuple3[A, B, C, FA, FB, FC]) Serialize(s *ser.Serializer, v Pair3[A, B, C]) error {
	fa, fb, fc := t.fields()
	if err := ser.WriteValue[C, FC](s, fc, v.V2); err != nil {
		return err
	}
	if err := ser.WriteValue[B, FB](s, fb, v.V1); err != nil {
		return err
	}
	return ser.WriteValue[A, FA](s, fa, v.V0)
}

func (t Tuple3[A, B, C, FA, FB, FC]) Deserialize(d *de.Deserializer) (Pair3[A, B, C], error) {
	fa, fb, fc := t.fields()
	v2, err := de.ReadValue[C, FC](d, fc)
	if err != nil {
		return Pair3[A, B, C]{}, err
	}
	v1, err := de.ReadValue[B, FB](d, fb)
	if err != nil {
		return Pair3[A, B, C]{}, err
	}
	v0, err := de.ReadValue[A, FA](d, fa)
	if err != nil {
		return Pair3[A, B, C]{}, err
	}
	return Pair3[A, B, C]{V0: v0, V1: v1, V2: v2}, nil
}

// Tuple4 is Tuple2 extended to four fields, processed V3, V2, V1, V0.
type Tuple4[A, B, C, D any, FA Field[A], FB Field[B], FC Field[C], FD Field[D]] struct{}

func (Tuple4[A, B, C, D, FA, FB, FC, FD]) fields() (FA, FB, FC, FD) {
	var fa FA
	var fb FB
	var fc FC
	var fd FD
	return fa, fb, fc, fd
}

func (t Tuple4[A, B, C, D, FA, FB, FC, FD]) Bound() schema.Bound {
	fa, fb, fc, fd := t.fields()
	return schema.SumBound(schema.SumBound(schema.SumBound(fa.Bound(), fb.Bound()), fc.Bound()), fd.Bound())
}

func (t Tuple4[A, B, C, D, FA, FB, FC, FD]) ExactSize() bool {
	fa, fb, fc, fd := t.fields()
	return fa.ExactSize() && fb.ExactSize() && fc.ExactSize() && fd.ExactSize()
}

func (t Tuple4[A, B, C, D, FA, FB, FC, FD]) Heapless() bool {
	fa, fb, fc, fd := t.fields()
	return fa.Heapless() && fb.Heapless() && fc.Heapless() && fd.Heapless()
}

func (t Tuple4[A, B, C, D, FA, FB, FC, FD]) Serialize(s *ser.Serializer, v Pair4[A, B, C, D]) error {
	fa, fb, fc, fd := t.fields()
	if err := ser.WriteValue[D, FD](s, fd, v.V3); err != nil {
		return err
	}
	if err := ser.WriteValue[C, FC](s, fc, v.V2); err != nil {
		return err
	}
	if err := ser.WriteValue[B, FB](s, fb, v.V1); err != nil {
		return err
	}
	return ser.WriteValue[A, FA](s, fa, v.V0)
}

func (t Tuple4[A, B, C, D, FA, FB, FC, FD]) Deserialize(d *de.Deserializer) (Pair4[A, B, C, D], error) {
	fa, fb, fc, fd := t.fields()
	v3, err := de.ReadValue[D, FD](d, fd)
	if err != nil {
		return Pair4[A, B, C, D]{}, err
	}
	v2, err := de.ReadValue[C, FC](d, fc)
	if err != nil {
		return Pair4[A, B, C, D]{}, err
	}
	v1, err := de.ReadValue[B, FB](d, fb)
	if err != nil {
		return Pair4[A, B, C, D]{}, err
	}
	v0, err := de.ReadValue[A, FA](d, fa)
	if err != nil {
		return Pair4[A, B, C, D]{}, err
	}
	return Pair4[A, B, C, D]{V0: v0, V1: v1, V2: v2, V3: v3}, nil
}
