// Package dedup provides a content-addressed cache for the heap region: a
// Cache hashes each byte payload it is asked to write and, on a repeat
// hash, re-emits the prior reference header instead of writing (and
// growing the heap with) a second copy of the same bytes.
package dedup

import (
	"github.com/zform/zform/internal/hash"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
	"github.com/zform/zform/wire"
)

// rawBytes is the formula Cache uses to actually place a fresh payload on
// the heap: an unbounded, exact-size, heapless owned-byte-blob formula
// with no need for a Deserialize method, since a Cache only ever writes.
type rawBytes struct{ schema.BareTag }

func (rawBytes) Bound() schema.Bound { return schema.Unbounded() }
func (rawBytes) ExactSize() bool     { return true }
func (rawBytes) Heapless() bool      { return true }

func (rawBytes) Serialize(s *ser.Serializer, v []byte) error { return s.WriteBytes(v) }

type ref struct {
	addr int
	size int
}

// Cache deduplicates byte payloads written through WriteRef within a
// single serialization pass, keyed by a 64-bit hash of the payload. It is
// not safe for concurrent use from multiple goroutines against the same
// Serializer.
type Cache struct {
	hash func([]byte) uint64
	seen map[uint64]ref
}

// New returns a Cache keyed by xxHash64, the fast, unseeded hash used
// throughout this module for in-process, trusted-input hashing.
func New() *Cache {
	return &Cache{hash: hash.Bytes, seen: make(map[uint64]ref)}
}

// NewKeyed returns a Cache keyed by SipHash-2-4 seeded with k0/k1, for use
// when the payloads being deduplicated are attacker-influenced and
// resistance to hash-flooding matters.
func NewKeyed(k0, k1 uint64) *Cache {
	return &Cache{
		hash: func(b []byte) uint64 { return hash.Keyed(k0, k1, b) },
		seen: make(map[uint64]ref),
	}
}

// WriteRef writes data as a reference-indirected heap payload, exactly
// like ser.WriteRef would, except that a payload whose hash has already
// been seen by this Cache re-emits the existing (addr, size) reference
// header instead of serializing and heap-placing a second copy.
func (c *Cache) WriteRef(s *ser.Serializer, data []byte) error {
	key := c.hash(data)
	if r, ok := c.seen[key]; ok {
		return writeHeader(s, r.addr, r.size)
	}

	heapBefore := s.Heap()
	if err := ser.WriteRef[[]byte, rawBytes](s, rawBytes{}, data); err != nil {
		return err
	}
	c.seen[key] = ref{addr: s.Heap(), size: s.Heap() - heapBefore}
	return nil
}

func writeHeader(s *ser.Serializer, addr, size int) error {
	addrW, err := wire.FromUsize(addr)
	if err != nil {
		return err
	}
	sizeW, err := wire.FromUsize(size)
	if err != nil {
		return err
	}
	var hdr [wire.HeaderSize]byte
	addrW.PutBytes(hdr[:wire.Size])
	sizeW.PutBytes(hdr[wire.Size:])
	return s.WriteBytes(hdr[:])
}
