// Copyright 2018 Aleksandr Demakin. All rights reserved.

package allocator

import (
	"github.com/pkg/errors"
)

// MaxObjectSize is the largest buffer an allocator hands out.
const MaxObjectSize = 128 * 1024 * 1024

// Allocator provides byte buffers for item payloads.
// Every buffer returned by Alloc is passed to Free exactly once, when its item is released,
// and must not be resliced in between.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte) error
}

func checkSize(size int) error {
	if size <= 0 {
		return errors.Errorf("invalid buffer size %d", size)
	}
	if size > MaxObjectSize {
		return errors.Errorf("the object exceeds max object size of %d", MaxObjectSize)
	}
	return nil
}

// Heap allocates buffers in the go heap.
// Free does nothing, the memory is reclaimed by the gc once the buffer is unreachable.
type Heap struct{}

// Alloc returns a zeroed buffer of the given size.
func (Heap) Alloc(size int) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return make([]byte, size), nil
}

// Free releases the buffer.
func (Heap) Free(buf []byte) error {
	if buf == nil {
		return errors.New("nil buffer")
	}
	return nil
}

// Counting wraps an allocator and tracks outstanding buffers.
// It is not safe for concurrent use, the caller must serialize access.
type Counting struct {
	Inner  Allocator
	allocs int
	frees  int
	bytes  int
}

// Alloc allocates a buffer with the inner allocator.
func (c *Counting) Alloc(size int) ([]byte, error) {
	buf, err := c.Inner.Alloc(size)
	if err != nil {
		return nil, err
	}
	c.allocs++
	c.bytes += len(buf)
	return buf, nil
}

// Free releases a buffer with the inner allocator.
func (c *Counting) Free(buf []byte) error {
	size := len(buf)
	if err := c.Inner.Free(buf); err != nil {
		return err
	}
	c.frees++
	c.bytes -= size
	return nil
}

// Outstanding returns the number of buffers, which were allocated, but not freed.
func (c *Counting) Outstanding() int {
	return c.allocs - c.frees
}

// Bytes returns the total size of outstanding buffers.
func (c *Counting) Bytes() int {
	return c.bytes
}
