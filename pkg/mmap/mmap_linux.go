//go:build linux

package mmap

import (
	"golang.org/x/sys/unix"
)

// mmap maps length bytes of the file at fd read-only and shared.
func mmap(fd int, length int) ([]byte, error) {
	return unix.Mmap(fd, 0, length, unix.PROT_READ, unix.MAP_SHARED)
}

// munmap releases a mapping obtained from mmap.
func munmap(b []byte) error {
	return unix.Munmap(b)
}

// madvise passes access-pattern advice to the kernel.
func madvise(b []byte, advice int) error {
	return unix.Madvise(b, advice)
}

const (
	madvSequential = unix.MADV_SEQUENTIAL
	madvRandom     = unix.MADV_RANDOM
	madvWillneed   = unix.MADV_WILLNEED
)
