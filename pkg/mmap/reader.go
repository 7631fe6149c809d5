// Package mmap provides read-only memory-mapped file access, the shared
// backing used by zero-copy container decoding. Mapped bytes must be
// treated as immutable: they are served straight from the page cache and
// several readers may share one mapping.
package mmap

import (
	"fmt"
	"os"
	"sync"
)

// Advice hints the expected access pattern to the kernel.
type Advice int

const (
	// AdviceNormal applies no special advice.
	AdviceNormal Advice = iota
	// AdviceSequential hints a front-to-back scan (container decode).
	AdviceSequential
	// AdviceRandom hints scattered access (record lookup by offset).
	AdviceRandom
	// AdviceWillNeed asks the kernel to prefetch the whole mapping.
	AdviceWillNeed
)

// Reader is a read-only memory-mapped file. Safe for concurrent reads;
// Close must not race with any access to the mapped bytes.
type Reader struct {
	mu     sync.Mutex
	file   *os.File
	data   []byte
	closed bool
}

// Open maps the file at path read-only. Empty files map to an empty, valid
// Reader so callers need no special case.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the caller
	if err != nil {
		return nil, fmt.Errorf("mmap: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: stat %s: %w", path, err)
	}

	size := info.Size()
	if size == 0 {
		return &Reader{file: f}, nil
	}
	if size != int64(int(size)) {
		f.Close()
		return nil, fmt.Errorf("mmap: %s too large to map (%d bytes)", path, size)
	}

	data, err := mmap(int(f.Fd()), int(size))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: map %s: %w", path, err)
	}

	return &Reader{file: f, data: data}, nil
}

// Bytes returns the mapped content. The slice aliases kernel-managed pages
// and is only valid until Close.
func (r *Reader) Bytes() []byte {
	return r.data
}

// Len returns the mapped file size in bytes.
func (r *Reader) Len() int {
	return len(r.data)
}

// Advise forwards an access-pattern hint to the kernel. Advice is best
// effort; an empty mapping is a no-op.
func (r *Reader) Advise(a Advice) error {
	if len(r.data) == 0 {
		return nil
	}
	switch a {
	case AdviceSequential:
		return madvise(r.data, madvSequential)
	case AdviceRandom:
		return madvise(r.data, madvRandom)
	case AdviceWillNeed:
		return madvise(r.data, madvWillneed)
	default:
		return nil
	}
}

// Close unmaps the file and releases the descriptor. Idempotent.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	if r.data != nil {
		err = munmap(r.data)
		r.data = nil
	}
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	return err
}
