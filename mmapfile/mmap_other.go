//go:build !unix

package mmapfile

import "os"

// mmap falls back to a plain read on platforms without a POSIX mmap; the
// resulting slice is still safe to borrow from, it just isn't backed by
// mapped pages.
func mmap(f *os.File, size int) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := f.ReadAt(buf, 0); err != nil {
		return nil, err
	}
	return buf, nil
}

func unmap(data []byte) error { return nil }
