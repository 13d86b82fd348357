// Package de drives formula-directed deserialization over a borrowed
// byte slice: no payload is copied out, only reinterpreted in place. A
// Deserializer tracks (input, stack): input is always a prefix of the
// original root slice anchored at absolute offset 0 (so reference
// addresses, which are always absolute from that origin, stay valid no
// matter how deep the nesting), and stack is how many trailing bytes of
// input are still in scope for the current frame.
package de

import (
	"github.com/zform/zform/errs"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/wire"
)

// Deserializer views a borrowed byte slice through the current frame's
// cursor. Reads consume from the tail of the in-scope region; fields are
// read in the same (reverse-declared) order they were written in, because
// the stack region is a LIFO structure by construction.
type Deserializer struct {
	input []byte
	stack int
}

// Root constructs the top-level Deserializer for a byte slice produced by
// the root encoding: the trailing wire.HeaderSize bytes are the root
// reference (address, size); everything before that is the body. The
// second return value is the root reference's address, i.e. the number of
// bytes of raw that belong to the message body (spec's "bytes consumed
// from the start"); it excludes the trailing header itself.
func Root(raw []byte) (*Deserializer, int, error) {
	if len(raw) < wire.HeaderSize {
		return nil, 0, errs.ErrOutOfBounds
	}
	hdrAt := len(raw) - wire.HeaderSize
	addr, err := wire.DecodeFixedUsize(raw[hdrAt : hdrAt+wire.Size]).ToUsize()
	if err != nil {
		return nil, 0, err
	}
	size, err := wire.DecodeFixedUsize(raw[hdrAt+wire.Size : hdrAt+wire.HeaderSize]).ToUsize()
	if err != nil {
		return nil, 0, err
	}
	if addr > hdrAt || size > addr {
		return nil, 0, errs.ErrWrongAddress
	}
	return &Deserializer{input: raw[:addr], stack: size}, addr, nil
}

// Deref follows a (address, size) reference read from the current frame,
// returning the Deserializer for the referenced payload.
func (d *Deserializer) Deref(addr, size int) (*Deserializer, error) {
	if addr > len(d.input) || size > addr {
		return nil, errs.ErrWrongAddress
	}
	return &Deserializer{input: d.input[:addr], stack: size}, nil
}

// Stack returns the number of trailing bytes of input still in scope.
func (d *Deserializer) Stack() int { return d.stack }

// sub peels off the trailing n bytes of the current scope as a new,
// independent frame, still anchored at the same absolute origin (so
// references inside it resolve correctly), and narrows the parent's own
// scope by the same n bytes.
func (d *Deserializer) sub(n int) (*Deserializer, error) {
	if n > d.stack {
		return nil, errs.ErrOutOfBounds
	}
	child := &Deserializer{input: d.input, stack: n}
	at := len(d.input) - n
	d.input = d.input[:at]
	d.stack -= n
	return child, nil
}

// ReadBytes consumes the trailing n bytes of the current scope directly,
// for raw fixed-size fields (such as reference headers) that don't need
// their own formula dispatch.
func (d *Deserializer) ReadBytes(n int) ([]byte, error) {
	child, err := d.sub(n)
	if err != nil {
		return nil, err
	}
	at := len(child.input) - n
	return child.input[at:], nil
}

// ReadFront consumes the leading n bytes of the current scope, narrowing
// it from the low-address side instead of the high-address side. Used for
// fields that must sit at the start of a region (such as a sequence's
// element count) while the rest of the region is read by the usual
// tail-consuming mechanism afterward.
func (d *Deserializer) ReadFront(n int) ([]byte, error) {
	if n > d.stack {
		return nil, errs.ErrOutOfBounds
	}
	at := len(d.input) - d.stack
	b := d.input[at : at+n]
	d.stack -= n
	return b, nil
}

// Finish reports whether the current frame has been fully consumed; any
// remaining stack bytes indicate a malformed or truncated message.
func (d *Deserializer) Finish() error {
	if d.stack != 0 {
		return errs.ErrWrongLength
	}
	return nil
}

// Deserializable pairs a formula F with a host type T: F describes how to
// reconstruct a value of T from bytes laid out under it.
type Deserializable[T any] interface {
	schema.Formula
	Deserialize(d *Deserializer) (T, error)
}

// InPlaceDeserializable is satisfied by a formula whose host type can be
// refilled without allocating a fresh zero value first, such as a formula
// that reuses an existing slice's backing array across repeated decodes.
type InPlaceDeserializable[T any] interface {
	Deserializable[T]
	DeserializeInPlace(d *Deserializer, out *T) error
}

// ReadValue reads a non-last field under formula f: bounded formulas are
// read from a scoped sub-frame of exactly their footprint; unbounded
// formulas are read through reference indirection.
func ReadValue[T any, F Deserializable[T]](d *Deserializer, f F) (T, error) {
	var zero T
	bound := f.Bound()
	if bound.Bounded {
		child, err := d.sub(bound.Size)
		if err != nil {
			return zero, err
		}
		return f.Deserialize(child)
	}
	return readRef[T, F](d, f)
}

// ReadLastValue mirrors ser.WriteLastValue: an unbounded last field owns
// the entire remaining stack directly, with no reference header to read.
func ReadLastValue[T any, F Deserializable[T]](d *Deserializer, f F) (T, error) {
	bound := f.Bound()
	if bound.Bounded {
		return ReadValue[T, F](d, f)
	}
	child := &Deserializer{input: d.input, stack: d.stack}
	d.stack = 0
	return f.Deserialize(child)
}

func readRef[T any, F Deserializable[T]](d *Deserializer, f F) (T, error) {
	var zero T
	hdr, err := d.ReadBytes(wire.HeaderSize)
	if err != nil {
		return zero, err
	}
	addr, err := wire.DecodeFixedUsize(hdr[:wire.Size]).ToUsize()
	if err != nil {
		return zero, err
	}
	size, err := wire.DecodeFixedUsize(hdr[wire.Size:]).ToUsize()
	if err != nil {
		return zero, err
	}
	child, err := d.Deref(addr, size)
	if err != nil {
		return zero, err
	}
	return f.Deserialize(child)
}
