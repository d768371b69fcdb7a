// Copyright 2018 Aleksandr Demakin. All rights reserved.

package table

import (
	"github.com/nxgtw/go-hstack/internal/chain"
)

// Descriptor pairs a stack handle with the head of its item chain.
type Descriptor struct {
	Handle int32
	Head   chain.Head
}

// Table is an unordered collection of stack descriptors.
// Elements are removed by swapping them with the last one, so the order
// of descriptors is not stable across removals.
// Lookup is a linear scan unless the table was created with an index.
type Table struct {
	descs []Descriptor
	index map[int32]int
}

// New returns an empty table. If indexed is true, lookups use a hash index.
func New(indexed bool) *Table {
	t := &Table{}
	if indexed {
		t.index = make(map[int32]int)
	}
	return t
}

// Len returns current number of descriptors.
func (t *Table) Len() int {
	return len(t.descs)
}

// Find returns the position of the descriptor with the given handle, or -1.
func (t *Table) Find(handle int32) int {
	if t.index != nil {
		if i, ok := t.index[handle]; ok {
			return i
		}
		return -1
	}
	for i := range t.descs {
		if t.descs[i].Handle == handle {
			return i
		}
	}
	return -1
}

// At returns a pointer to the descriptor at the position i.
// The pointer is valid until the next modification of the table.
func (t *Table) At(i int) *Descriptor {
	if i < 0 || i >= len(t.descs) {
		panic("index out of range")
	}
	return &t.descs[i]
}

// Append adds a descriptor to the end of the table and returns its position.
func (t *Table) Append(d Descriptor) int {
	if t.index != nil {
		if _, ok := t.index[d.Handle]; ok {
			panic("duplicate handle")
		}
		t.index[d.Handle] = len(t.descs)
	}
	t.descs = append(t.descs, d)
	return len(t.descs) - 1
}

// Swap swaps two descriptors.
func (t *Table) Swap(i, j int) {
	l := len(t.descs)
	if i < 0 || j < 0 || i >= l || j >= l {
		panic("index out of range")
	}
	if i == j {
		return
	}
	t.descs[i], t.descs[j] = t.descs[j], t.descs[i]
	if t.index != nil {
		t.index[t.descs[i].Handle] = i
		t.index[t.descs[j].Handle] = j
	}
}

// RemoveAt moves the last descriptor to the position i and shrinks the table by one.
// Returns the removed descriptor.
func (t *Table) RemoveAt(i int) Descriptor {
	last := len(t.descs) - 1
	if i < 0 || i > last {
		panic("index out of range")
	}
	t.Swap(i, last)
	removed := t.descs[last]
	t.descs[last] = Descriptor{}
	if last == 0 {
		t.descs = nil
	} else {
		t.descs = t.descs[:last]
	}
	if t.index != nil {
		delete(t.index, removed.Handle)
	}
	return removed
}

// Handles returns handles of all descriptors in table order.
func (t *Table) Handles() []int32 {
	result := make([]int32, len(t.descs))
	for i, d := range t.descs {
		result[i] = d.Handle
	}
	return result
}

// Reset removes all descriptors.
func (t *Table) Reset() {
	t.descs = nil
	if t.index != nil {
		t.index = make(map[int32]int)
	}
}
