package de

import (
	"github.com/zform/zform/errs"
	"github.com/zform/zform/wire"
)

// Iter is a double-ended, fused, clonable iterator over a packed sequence
// of elements under formula F: once Next or NextBack reports no more
// elements, it keeps doing so forever, and both ends can be consumed
// independently and in either order. It never copies the element region;
// each element is reinterpreted directly from the shared input slice.
type Iter[T any, F Deserializable[T]] struct {
	f        F
	input    []byte
	start    int
	elemSize int
	bounded  bool
	lo, hi   int
}

// NewIter reads the leading element-count field and returns an iterator
// over the remaining scope, treated as a packed array: contiguous
// elements of F's own footprint when F is bounded, or one fixed-size
// reference header per element when F is unbounded.
func NewIter[T any, F Deserializable[T]](d *Deserializer, f F) (*Iter[T, F], error) {
	countBytes, err := d.ReadFront(wire.Size)
	if err != nil {
		return nil, err
	}
	count, err := wire.DecodeFixedUsize(countBytes).ToUsize()
	if err != nil {
		return nil, err
	}

	bound := f.Bound()
	elemSize := wire.HeaderSize
	bounded := bound.Bounded
	if bounded {
		elemSize = bound.Size
	}

	if elemSize == 0 {
		if count != 0 {
			return nil, errs.ErrWrongLength
		}
		return &Iter[T, F]{f: f}, nil
	}
	if d.stack != count*elemSize {
		return nil, errs.ErrWrongLength
	}

	start := len(d.input) - d.stack
	it := &Iter[T, F]{
		f:        f,
		input:    d.input,
		start:    start,
		elemSize: elemSize,
		bounded:  bounded,
		lo:       0,
		hi:       count,
	}
	d.stack = 0
	return it, nil
}

// Len returns the number of elements not yet consumed from either end.
func (it *Iter[T, F]) Len() int { return it.hi - it.lo }

// Clone returns an independent iterator over the same remaining range.
func (it *Iter[T, F]) Clone() *Iter[T, F] {
	c := *it
	return &c
}

func (it *Iter[T, F]) elem(i int) (T, error) {
	var zero T
	lo := it.start + i*it.elemSize
	hi := lo + it.elemSize
	if it.bounded {
		sub := &Deserializer{input: it.input[:hi], stack: it.elemSize}
		return it.f.Deserialize(sub)
	}
	slice := it.input[lo:hi]
	addr, err := wire.DecodeFixedUsize(slice[:wire.Size]).ToUsize()
	if err != nil {
		return zero, err
	}
	size, err := wire.DecodeFixedUsize(slice[wire.Size:]).ToUsize()
	if err != nil {
		return zero, err
	}
	if addr > len(it.input) || size > addr {
		return zero, errs.ErrWrongAddress
	}
	sub := &Deserializer{input: it.input[:addr], stack: size}
	return it.f.Deserialize(sub)
}

// Next yields the next element from the front, in original sequence
// order.
func (it *Iter[T, F]) Next() (T, bool, error) {
	var zero T
	if it.lo >= it.hi {
		return zero, false, nil
	}
	v, err := it.elem(it.lo)
	it.lo++
	return v, true, err
}

// NextBack yields the next element from the back.
func (it *Iter[T, F]) NextBack() (T, bool, error) {
	var zero T
	if it.lo >= it.hi {
		return zero, false, nil
	}
	it.hi--
	v, err := it.elem(it.hi)
	return v, true, err
}

// Nth skips n elements from the front and yields the following one,
// reporting false once the front and back ends meet.
func (it *Iter[T, F]) Nth(n int) (T, bool, error) {
	var zero T
	if it.lo+n >= it.hi {
		it.lo = it.hi
		return zero, false, nil
	}
	it.lo += n
	return it.Next()
}

// Fold consumes the iterator front-to-back, threading accum through f.
// Stops at the first error.
func (it *Iter[T, F]) Fold(accum any, f func(accum any, v T) (any, error)) (any, error) {
	for {
		v, ok, err := it.Next()
		if err != nil {
			return accum, err
		}
		if !ok {
			return accum, nil
		}
		accum, err = f(accum, v)
		if err != nil {
			return accum, err
		}
	}
}

// RFold consumes the iterator back-to-front, threading accum through f.
// Stops at the first error.
func (it *Iter[T, F]) RFold(accum any, f func(accum any, v T) (any, error)) (any, error) {
	for {
		v, ok, err := it.NextBack()
		if err != nil {
			return accum, err
		}
		if !ok {
			return accum, nil
		}
		accum, err = f(accum, v)
		if err != nil {
			return accum, err
		}
	}
}

// ReadSlice drains d's leading sequence under formula f into a plain
// slice, in original order.
func ReadSlice[T any, F Deserializable[T]](d *Deserializer, f F) ([]T, error) {
	it, err := NewIter[T, F](d, f)
	if err != nil {
		return nil, err
	}
	result := make([]T, it.Len())
	for i := range result {
		v, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		result[i] = v
	}
	return result, nil
}
