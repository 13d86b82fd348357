//go:build !zstd_cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// typedPool is a sync.Pool wrapper that avoids repeating the same
// type-assert-on-Get boilerplate for every pooled resource in this file.
type typedPool[T any] struct {
	pool sync.Pool
}

func newTypedPool[T any](newFn func() T) *typedPool[T] {
	return &typedPool[T]{pool: sync.Pool{New: func() any { return newFn() }}}
}

func (p *typedPool[T]) get() T  { return p.pool.Get().(T) }
func (p *typedPool[T]) put(v T) { p.pool.Put(v) }

// zstd.Decoder/zstd.Encoder are documented as allocation-free after a
// warmup once reused, so both are kept in a pool rather than constructed
// per call.
var (
	zstdDecoders = newTypedPool(func() *zstd.Decoder {
		d, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: building pooled zstd decoder: %v", err))
		}
		return d
	})
	zstdEncoders = newTypedPool(func() *zstd.Encoder {
		e, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: building pooled zstd encoder: %v", err))
		}
		return e
	})
)

func (ZstdCompressor) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoders.get()
	defer zstdEncoders.put(enc)
	return enc.EncodeAll(data, nil), nil
}

func (ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dec := zstdDecoders.get()
	defer zstdDecoders.put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd decode: %w", err)
	}
	return out, nil
}
