// Package mmapfile memory-maps a file read-only so a Deserializer can
// borrow slices directly from mapped pages, extending the zero-copy
// promise of the de package past the in-memory case: decoding a mapped
// file costs no read() copy at all, only page faults the kernel would
// have to satisfy anyway.
package mmapfile

import (
	"fmt"
	"math"
	"os"
)

// File is a read-only memory-mapped view of a file on disk. The mapping
// stays valid until Close is called; using Bytes after Close is undefined.
type File struct {
	data []byte
}

// Open maps path read-only for the lifetime of the returned File.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > math.MaxInt {
		return nil, fmt.Errorf("mmapfile: file size %d exceeds max integer", info.Size())
	}
	if info.Size() == 0 {
		return &File{data: nil}, nil
	}

	data, err := mmap(f, int(info.Size()))
	if err != nil {
		return nil, err
	}
	return &File{data: data}, nil
}

// Bytes returns the mapped file contents. The slice is valid until Close.
func (f *File) Bytes() []byte { return f.data }

// Close unmaps the file. It is a no-op for an empty mapping.
func (f *File) Close() error {
	if len(f.data) == 0 {
		return nil
	}
	err := unmap(f.data)
	f.data = nil
	return err
}
