// Package hash provides the 64-bit hashing primitives used to key the
// heap's content-addressed deduplication cache.
package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
)

// Bytes computes the xxHash64 of data, the fast, unseeded hash used for
// deduplicating in-process, trusted payloads.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Keyed computes the SipHash-2-4 of data seeded with k0/k1, for
// deduplicating payloads that may be attacker-influenced.
func Keyed(k0, k1 uint64, data []byte) uint64 {
	return siphash.Hash(k0, k1, data)
}
