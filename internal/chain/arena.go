// Copyright 2018 Aleksandr Demakin. All rights reserved.

package chain

import (
	"math"
	"math/bits"

	"github.com/nxgtw/go-hstack/internal/allocator"

	"github.com/pkg/errors"
)

const slotsPerWord = 64

// Head is a slot index of the most recent item of a chain.
type Head int32

// Empty is the head of a chain without items.
const Empty Head = -1

type item struct {
	prev Head
	data []byte
}

// Arena stores items of any number of chains.
// Items are placed in slots, free slots are tracked with a bitmap,
// and the lowest free slot is always reused first.
// Each item owns a payload buffer obtained from the allocator.
type Arena struct {
	items  []item
	bitmap []uint64
	used   int
	alloc  allocator.Allocator
}

// NewArena returns an empty arena, which takes payload buffers from alloc.
func NewArena(alloc allocator.Allocator) *Arena {
	return &Arena{alloc: alloc}
}

func lowestZeroBit(value uint64) uint8 {
	return uint8(bits.TrailingZeros64(^value))
}

func (a *Arena) reserveSlot() Head {
	for i, b := range a.bitmap {
		if b != math.MaxUint64 {
			bitIdx := lowestZeroBit(b)
			a.bitmap[i] |= 1 << bitIdx
			return Head(i*slotsPerWord + int(bitIdx))
		}
	}
	a.bitmap = append(a.bitmap, 1)
	a.items = append(a.items, make([]item, slotsPerWord)...)
	return Head((len(a.bitmap) - 1) * slotsPerWord)
}

func (a *Arena) freeSlot(slot Head) {
	bucketIdx, bitIdx := int(slot)/slotsPerWord, uint(slot)%slotsPerWord
	a.bitmap[bucketIdx] &^= 1 << bitIdx
	a.items[slot] = item{}
}

func (a *Arena) check(head Head) {
	if head < 0 || int(head) >= len(a.items) {
		panic("index out of range")
	}
	if a.bitmap[int(head)/slotsPerWord]&(1<<(uint(head)%slotsPerWord)) == 0 {
		panic("slot is not in use")
	}
}

// Push copies payload into a new item linked to head.
// Returns the new head. On error the chain is left unchanged.
func (a *Arena) Push(head Head, payload []byte) (Head, error) {
	if len(payload) == 0 {
		return head, errors.New("empty payload")
	}
	if head != Empty {
		a.check(head)
	}
	buf, err := a.alloc.Alloc(len(payload))
	if err != nil {
		return head, err
	}
	copy(buf, payload)
	slot := a.reserveSlot()
	a.items[slot] = item{prev: head, data: buf}
	a.used++
	return slot, nil
}

// Top returns the payload of the head item, or nil for an empty chain.
// The returned slice is owned by the arena and is valid until the item is dropped.
func (a *Arena) Top(head Head) []byte {
	if head == Empty {
		return nil
	}
	a.check(head)
	return a.items[head].data
}

// Drop unlinks and releases the head item, returning the next older one.
// The item is always unlinked, the error only reports a failure to release its buffer.
func (a *Arena) Drop(head Head) (Head, error) {
	a.check(head)
	it := a.items[head]
	a.freeSlot(head)
	a.used--
	if err := a.alloc.Free(it.data); err != nil {
		return it.prev, errors.Wrapf(err, "failed to release item %d", head)
	}
	return it.prev, nil
}

// Release drops every item of the chain, from the head toward the oldest.
// Returns the first error met, but always releases the entire chain.
func (a *Arena) Release(head Head) error {
	var result error
	for head != Empty {
		var err error
		if head, err = a.Drop(head); err != nil && result == nil {
			result = err
		}
	}
	return result
}

// Depth walks the chain and returns the number of items in it.
func (a *Arena) Depth(head Head) int {
	var depth int
	for head != Empty {
		a.check(head)
		head = a.items[head].prev
		depth++
	}
	return depth
}

// Len returns the number of items in all chains.
func (a *Arena) Len() int {
	return a.used
}
