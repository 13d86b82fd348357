//go:build zform_usize64

package wire

// FixedUsize is the wire-level unsigned size/address/count type.
type FixedUsize uint64

// FixedIsize is the wire-level signed size type.
type FixedIsize int64

// Size is the number of bytes FixedUsize and FixedIsize occupy on the wire.
const Size = 8

// HeaderSize is the width of a two-word reference header (address, size).
const HeaderSize = 2 * Size
