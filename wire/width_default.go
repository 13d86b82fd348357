//go:build !zform_usize16 && !zform_usize64

// Package wire defines the fixed-width little-endian integer types that
// back every size, address and count on the wire. Unlike the teacher's
// endian package, the wire format here fixes both the byte order (always
// little-endian, per the declared non-goal of endianness negotiation) and
// the integer width at compile time, selected by build tag so a project can
// choose a 16-, 32- or 64-bit size type without touching call sites.
package wire

// FixedUsize is the wire-level unsigned size/address/count type.
type FixedUsize uint32

// FixedIsize is the wire-level signed size type.
type FixedIsize int32

// Size is the number of bytes FixedUsize and FixedIsize occupy on the wire.
const Size = 4

// HeaderSize is the width of a two-word reference header (address, size).
const HeaderSize = 2 * Size
