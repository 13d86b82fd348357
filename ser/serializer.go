// Package ser drives formula-directed serialization against any
// membuf.Buffer. It owns the (heap, stack) dual cursors; buffers never
// track cursor state themselves. A Serializable[T] pairs a formula with a
// host type; the generic WriteValue/WriteLastValue/WriteRef/WriteSlice
// entry points implement the dual-region packing rule, reference
// indirection and the last-field tail-extension optimization once, so
// every collaborator formula gets them for free.
package ser

import (
	"github.com/zform/zform/errs"
	"github.com/zform/zform/membuf"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/wire"
)

// Serializer drives a single serialization pass against a Buffer,
// tracking the heap cursor (growing forward from offset 0) and the stack
// cursor (growing backward, expressed as bytes already occupied counting
// from the buffer's logical end).
type Serializer struct {
	buf   membuf.Buffer
	heap  int
	stack int
}

// New returns a Serializer writing into buf, with both cursors at zero.
func New(buf membuf.Buffer) *Serializer {
	return &Serializer{buf: buf}
}

// Heap returns the current heap cursor.
func (s *Serializer) Heap() int { return s.heap }

// Stack returns the current stack cursor.
func (s *Serializer) Stack() int { return s.stack }

// WriteBytes appends data as the next stack field.
func (s *Serializer) WriteBytes(data []byte) error {
	if err := s.buf.WriteStack(s.heap, s.stack, data); err != nil {
		return err
	}
	s.stack += len(data)
	return nil
}

// WriteRaw reserves length bytes at the current heap cursor for a caller
// that wants to write a raw, self-contained nested payload directly
// (the sub-message boundary mechanic), and advances the heap cursor past
// it. The returned window is rebased to start at offset 0.
func (s *Serializer) WriteRaw(length int) ([]byte, error) {
	w, err := s.buf.ReserveHeap(s.heap, s.stack, length)
	if err != nil {
		return nil, err
	}
	s.heap += length
	return w, nil
}

// Serializable pairs a formula F with a host type T: F describes how
// values of T are laid out under it. A single host type can implement
// Serialize for many formulas, and a single formula can be implemented by
// many host types; the pairing is resolved per call site via F.
type Serializable[T any] interface {
	schema.Formula
	Serialize(s *Serializer, v T) error
}

// SizeHinter is an optional capability a Serializable[T] formula may
// implement to report its exact heap/stack footprint for a specific value
// without actually writing it, letting callers like SerializedSize skip a
// full measurement pass. ok is false when the formula cannot offer a
// cheap answer for this value (e.g. compression, where the size is only
// known by actually compressing).
type SizeHinter[T any] interface {
	SizeHint(v T) (heapBytes, stackBytes int, ok bool)
}

// WriteValue serializes v under formula f as a non-last field: bounded
// formulas write exactly their footprint inline (zero-padding on the tail
// if the value's actual encoding came in short and the formula is not
// exact-size); unbounded formulas go through reference indirection.
func WriteValue[T any, F Serializable[T]](s *Serializer, f F, v T) error {
	bound := f.Bound()
	if bound.Bounded {
		return writeInline(s, f, v, bound.Size)
	}
	return WriteRef[T, F](s, f, v)
}

// WriteLastValue is like WriteValue, but for a field a formula has
// deliberately opted to treat as its trailing tail: an unbounded value is
// written directly onto the stack, inheriting the enclosing formula's own
// unboundedness instead of paying for a reference header. Bounded values
// behave exactly as WriteValue.
func WriteLastValue[T any, F Serializable[T]](s *Serializer, f F, v T) error {
	bound := f.Bound()
	if bound.Bounded {
		return writeInline(s, f, v, bound.Size)
	}
	return f.Serialize(s, v)
}

// WriteRef unconditionally serializes v under f as a reference-indirected
// payload, regardless of f's own bound. Collaborators use this for
// elements of a sequence of unbounded formulas, where every slot must be a
// fixed-size header.
func WriteRef[T any, F Serializable[T]](s *Serializer, f F, v T) error {
	stackBefore := s.stack
	if err := f.Serialize(s, v); err != nil {
		return err
	}
	payloadStack := s.stack - stackBefore

	heapMid := s.heap
	s.buf.MoveToHeap(heapMid, s.stack, payloadStack)
	s.heap = heapMid + payloadStack
	s.stack = stackBefore

	addr, err := wire.FromUsize(s.heap)
	if err != nil {
		return err
	}
	size, err := wire.FromUsize(payloadStack)
	if err != nil {
		return err
	}
	var hdr [wire.HeaderSize]byte
	addr.PutBytes(hdr[:wire.Size])
	size.PutBytes(hdr[wire.Size:])
	return s.WriteBytes(hdr[:])
}

// WriteSlice serializes values as a counted, packed sequence: elements are
// written in reverse order (so the dual-cursor model lays them out on the
// wire in forward order), bounded elements packed contiguously and
// unbounded elements each paying their own reference header, followed by
// the element count as a FixedUsize.
func WriteSlice[T any, F Serializable[T]](s *Serializer, f F, values []T) error {
	bound := f.Bound()
	for i := len(values) - 1; i >= 0; i-- {
		var err error
		if bound.Bounded {
			err = writeInline(s, f, values[i], bound.Size)
		} else {
			err = WriteRef[T, F](s, f, values[i])
		}
		if err != nil {
			return err
		}
	}
	count, err := wire.FromUsize(len(values))
	if err != nil {
		return err
	}
	var cbuf [wire.Size]byte
	count.PutBytes(cbuf[:])
	return s.WriteBytes(cbuf[:])
}

func writeInline[T any, F Serializable[T]](s *Serializer, f F, v T, size int) error {
	stackBefore := s.stack
	if err := f.Serialize(s, v); err != nil {
		return err
	}
	written := s.stack - stackBefore
	if written > size {
		return errs.ErrWrongLength
	}
	if !f.ExactSize() && written < size {
		return s.WriteBytes(make([]byte, size-written))
	}
	return nil
}
