package wire

import "github.com/zform/zform/errs"

// PutBytes writes v into dst as Size little-endian bytes. dst must have
// length at least Size.
func (v FixedUsize) PutBytes(dst []byte) {
	x := uint64(v)
	for i := 0; i < Size; i++ {
		dst[i] = byte(x)
		x >>= 8
	}
}

// AppendBytes appends v to dst as Size little-endian bytes.
func (v FixedUsize) AppendBytes(dst []byte) []byte {
	var buf [8]byte
	v.PutBytes(buf[:Size])
	return append(dst, buf[:Size]...)
}

// DecodeFixedUsize reads a FixedUsize from the first Size bytes of src.
func DecodeFixedUsize(src []byte) FixedUsize {
	var x uint64
	for i := Size - 1; i >= 0; i-- {
		x = x<<8 | uint64(src[i])
	}
	return FixedUsize(x)
}

// FromUsize converts a host int into a FixedUsize, failing if the value is
// negative or does not fit the wire width.
func FromUsize(v int) (FixedUsize, error) {
	if v < 0 {
		return 0, errs.InvalidUsizeError{Raw: uint64(uint(v))}
	}
	x := FixedUsize(uint64(v))
	if uint64(x) != uint64(v) {
		return 0, errs.InvalidUsizeError{Raw: uint64(v)}
	}
	return x, nil
}

// ToUsize converts a FixedUsize back into a host int, failing if the value
// does not fit the host's int type.
func (v FixedUsize) ToUsize() (int, error) {
	x := uint64(v)
	r := int(x)
	if r < 0 || uint64(r) != x {
		return 0, errs.InvalidUsizeError{Raw: x}
	}
	return r, nil
}

// PutBytes writes v into dst as Size little-endian (two's complement) bytes.
func (v FixedIsize) PutBytes(dst []byte) {
	FixedUsize(v).PutBytes(dst)
}

// AppendBytes appends v to dst as Size little-endian bytes.
func (v FixedIsize) AppendBytes(dst []byte) []byte {
	return FixedUsize(v).AppendBytes(dst)
}

// DecodeFixedIsize reads a FixedIsize from the first Size bytes of src.
func DecodeFixedIsize(src []byte) FixedIsize {
	u := DecodeFixedUsize(src)
	shift := uint(64 - Size*8)
	return FixedIsize(int64(uint64(u)<<shift) >> shift)
}

// FromIsize converts a host int into a FixedIsize, failing if it does not
// fit the wire width.
func FromIsize(v int) (FixedIsize, error) {
	x := FixedIsize(int64(v))
	if int64(x) != int64(v) {
		return 0, errs.InvalidIsizeError{Raw: int64(v)}
	}
	return x, nil
}

// ToIsize converts a FixedIsize back into a host int, failing if it does
// not fit the host's int type.
func (v FixedIsize) ToIsize() (int, error) {
	x := int64(v)
	r := int(x)
	if int64(r) != x {
		return 0, errs.InvalidIsizeError{Raw: x}
	}
	return r, nil
}
