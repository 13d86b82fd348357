// Package zform is the entry point of the zero-copy binary serialization
// core: a formula (a compile-time-known binary layout, from the schema
// package) paired with a host value type drives serialization via ser and
// deserialization via de. The functions in this file implement the root
// encoding contract: run the value's own Serialize against a working
// buffer, then relocate its accumulated stack region so it sits directly
// after the heap region, and finally append the two-word root reference
// (address = heap+stack, size = stack) that every other entry point reads
// back via de.Root.
package zform

import (
	"github.com/zform/zform/de"
	"github.com/zform/zform/errs"
	"github.com/zform/zform/membuf"
	"github.com/zform/zform/ser"
	"github.com/zform/zform/wire"
)

func writeRootHeader(out []byte, heap, stack int) (int, error) {
	addr, err := wire.FromUsize(heap + stack)
	if err != nil {
		return 0, err
	}
	size, err := wire.FromUsize(stack)
	if err != nil {
		return 0, err
	}
	addr.PutBytes(out[heap+stack : heap+stack+wire.Size])
	size.PutBytes(out[heap+stack+wire.Size : heap+stack+wire.HeaderSize])
	return heap + stack + wire.HeaderSize, nil
}

// Serialize writes v under formula f into out, which must be at least
// SerializedSize(f, v) bytes long, and returns the number of bytes
// written. It fails with errs.ErrBufferExhausted if out is too small.
func Serialize[T any, F ser.Serializable[T]](f F, v T, out []byte) (int, error) {
	bodyCap := len(out) - wire.HeaderSize
	if bodyCap < 0 {
		return 0, errs.ErrBufferExhausted
	}
	buf := membuf.NewChecked(out[:bodyCap])
	s := ser.New(buf)
	if err := f.Serialize(s, v); err != nil {
		return 0, err
	}
	heap, stack := s.Heap(), s.Stack()
	buf.MoveToHeap(heap, stack, stack)
	return writeRootHeader(out, heap, stack)
}

// SerializeOrSize is like Serialize, but on overflow returns
// errs.BufferSizeRequiredError carrying the exact total size out would
// have needed, computed in the same pass rather than requiring a second,
// separate measurement call.
func SerializeOrSize[T any, F ser.Serializable[T]](f F, v T, out []byte) (int, error) {
	bodyCap := len(out) - wire.HeaderSize
	var body []byte
	if bodyCap > 0 {
		body = out[:bodyCap]
	}
	cbuf := membuf.NewCounting(body)
	s := ser.New(cbuf)
	if err := f.Serialize(s, v); err != nil {
		return 0, err
	}
	if cbuf.Exhausted() {
		return 0, errs.BufferSizeRequiredError{Required: cbuf.Required() + wire.HeaderSize}
	}
	heap, stack := s.Heap(), s.Stack()
	cbuf.MoveToHeap(heap, stack, stack)
	return writeRootHeader(out, heap, stack)
}

// SerializedSize returns the exact number of bytes Serialize would need
// for v under f, without writing any output. If f implements
// ser.SizeHinter[T] and offers a concrete answer for v, that is used
// directly instead of running a full dry measurement pass.
func SerializedSize[T any, F ser.Serializable[T]](f F, v T) int {
	if hinter, ok := any(f).(ser.SizeHinter[T]); ok {
		if heapBytes, stackBytes, ok := hinter.SizeHint(v); ok {
			return heapBytes + stackBytes + wire.HeaderSize
		}
	}
	dry := membuf.NewDry()
	s := ser.New(dry)
	_ = f.Serialize(s, v)
	return s.Heap() + s.Stack() + wire.HeaderSize
}

// SerializeIntoVec serializes v under f into a freshly allocated,
// exactly-sized byte slice, growing its working buffer on demand. Unlike
// Serialize, this never fails due to insufficient capacity.
func SerializeIntoVec[T any, F ser.Serializable[T]](f F, v T) ([]byte, error) {
	g := membuf.NewGrowing(64)
	s := ser.New(g)
	if err := f.Serialize(s, v); err != nil {
		return nil, err
	}
	heap, stack := s.Heap(), s.Stack()
	g.MoveToHeap(heap, stack, stack)
	body := g.Bytes()

	out := make([]byte, heap+stack+wire.HeaderSize)
	copy(out[:heap+stack], body[:heap+stack])
	if _, err := writeRootHeader(out, heap, stack); err != nil {
		return nil, err
	}
	return out, nil
}

// SerializeReusing serializes v under f into a freshly allocated,
// exactly-sized byte slice, just like SerializeIntoVec, but draws its
// scratch working buffer from a shared pool instead of allocating a new
// one for every call, amortizing that allocation across a hot serialize
// path.
func SerializeReusing[T any, F ser.Serializable[T]](f F, v T) ([]byte, error) {
	g := membuf.AcquirePooled()
	defer membuf.ReleasePooled(g)

	s := ser.New(g)
	if err := f.Serialize(s, v); err != nil {
		return nil, err
	}
	heap, stack := s.Heap(), s.Stack()
	g.MoveToHeap(heap, stack, stack)
	body := g.Bytes()

	out := make([]byte, heap+stack+wire.HeaderSize)
	copy(out[:heap+stack], body[:heap+stack])
	if _, err := writeRootHeader(out, heap, stack); err != nil {
		return nil, err
	}
	return out, nil
}

// Deserialize reconstructs a value of T under formula f from raw, which
// must be exactly the bytes a prior Serialize/SerializeIntoVec call
// produced. It fails with errs.ErrWrongLength if raw has leftover bytes
// once the value has been fully read. The second return value is the
// number of bytes consumed from the start of raw (the root reference's
// address).
func Deserialize[T any, F de.Deserializable[T]](f F, raw []byte) (T, int, error) {
	var zero T
	d, consumed, err := de.Root(raw)
	if err != nil {
		return zero, 0, err
	}
	v, err := f.Deserialize(d)
	if err != nil {
		return zero, 0, err
	}
	if err := d.Finish(); err != nil {
		return zero, 0, err
	}
	return v, consumed, nil
}

// DeserializeInPlace reconstructs a value of T under formula f from raw
// into an existing *out, reusing its storage when f implements
// de.InPlaceDeserializable[T]; otherwise it falls back to a regular
// Deserialize followed by assignment. It returns the number of bytes
// consumed from the start of raw, as Deserialize does.
func DeserializeInPlace[T any, F de.Deserializable[T]](f F, raw []byte, out *T) (int, error) {
	d, consumed, err := de.Root(raw)
	if err != nil {
		return 0, err
	}
	if ip, ok := any(f).(de.InPlaceDeserializable[T]); ok {
		if err := ip.DeserializeInPlace(d, out); err != nil {
			return 0, err
		}
		if err := d.Finish(); err != nil {
			return 0, err
		}
		return consumed, nil
	}
	v, err := f.Deserialize(d)
	if err != nil {
		return 0, err
	}
	*out = v
	if err := d.Finish(); err != nil {
		return 0, err
	}
	return consumed, nil
}

// ValueSize reports the declared payload size (the root reference's size
// field) of a previously serialized buffer, without decoding its content.
func ValueSize(raw []byte) (int, error) {
	d, _, err := de.Root(raw)
	if err != nil {
		return 0, err
	}
	return d.Stack(), nil
}
