// Copyright 2018 Aleksandr Demakin. All rights reserved.

//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package allocator

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Mapped allocates every buffer in its own anonymous private memory mapping.
// The memory is returned to the os by Free, not by the gc.
// It makes sense for large payloads only, as each mapping occupies at least one page.
type Mapped struct{}

// Alloc maps a new region of the given size.
func (Mapped) Alloc(size int) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrap(err, "mmap failed")
	}
	return data, nil
}

// Free unmaps the region. buf must be the exact slice returned by Alloc.
func (Mapped) Free(buf []byte) error {
	if buf == nil {
		return errors.New("nil buffer")
	}
	return errors.Wrap(unix.Munmap(buf), "munmap failed")
}
