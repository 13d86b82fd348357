// Package formulas collects concrete, reusable formulas built against the
// core's Formula/Serializable/Deserializable contracts: primitives (Int,
// Float, Bool, UUID), owned payloads (Bytes, String), compressed payloads
// (CompressedBytes, LZ4Bytes, FSSTStrings), and generic aggregate/sequence
// combinators (Tuple2..4, Enum2..4, Seq, and a worked Record example).
//
// Every formula here is an "external collaborator" in the sense the core
// describes: it is built entirely on top of ser.WriteValue/WriteRef and
// de.ReadValue/Deref, the same primitives any user-defined formula would
// use, and none of it needs access to core internals.
//
// # Zero-copy scope
//
// Every formula in this package is zero-copy on decode except
// CompressedBytes, LZ4Bytes and FSSTStrings, which must materialize a
// decompressed copy by construction; this trade is documented on each of
// those three types individually.
package formulas
