// Copyright 2018 Aleksandr Demakin. All rights reserved.

package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAllocator(t *testing.T, alloc Allocator) {
	a := assert.New(t)
	for _, size := range []int{0, -1, MaxObjectSize + 1} {
		buf, err := alloc.Alloc(size)
		a.Error(err)
		a.Nil(buf)
	}
	for _, size := range []int{1, 7, 4096, 65537} {
		buf, err := alloc.Alloc(size)
		if !a.NoError(err) {
			return
		}
		a.Len(buf, size)
		for i := range buf {
			buf[i] = byte(i)
		}
		a.Equal(byte(size-1), buf[size-1])
		a.NoError(alloc.Free(buf))
	}
	a.Error(alloc.Free(nil))
}

func TestHeapAllocator(t *testing.T) {
	testAllocator(t, Heap{})
}

func TestMappedAllocator(t *testing.T) {
	testAllocator(t, Mapped{})
}

func TestCountingAllocator(t *testing.T) {
	a := assert.New(t)
	c := &Counting{Inner: Heap{}}
	b1, err := c.Alloc(10)
	a.NoError(err)
	b2, err := c.Alloc(3)
	a.NoError(err)
	a.Equal(2, c.Outstanding())
	a.Equal(13, c.Bytes())
	_, err = c.Alloc(0)
	a.Error(err)
	a.Equal(2, c.Outstanding())
	a.NoError(c.Free(b1))
	a.Equal(1, c.Outstanding())
	a.Equal(3, c.Bytes())
	a.Error(c.Free(nil))
	a.Equal(1, c.Outstanding())
	a.NoError(c.Free(b2))
	a.Equal(0, c.Outstanding())
	a.Equal(0, c.Bytes())
}
