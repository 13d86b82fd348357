// Package compress provides the compression codecs behind
// formulas.CompressedBytes (Zstandard) and formulas.LZ4Bytes (LZ4): both
// trade the core's usual zero-copy decode for a smaller wire footprint, by
// design and only for those two formulas (every other formula in this
// repo stays zero-copy).
//
// Zstd has two builds, selected by build tag exactly as the teacher splits
// its own zstd path:
//   - zstd_pure.go (default): github.com/klauspost/compress/zstd, pure Go.
//   - zstd_cgo.go (tag zstd_cgo): github.com/valyala/gozstd, cgo bindings
//     around the C zstd library, for callers who can pay the cgo cost for
//     its faster encode path.
//
// LZ4 (github.com/pierrec/lz4/v4) has a single, pure-Go implementation.
package compress
