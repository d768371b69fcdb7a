// Copyright 2018 Aleksandr Demakin. All rights reserved.

package table

import (
	"math/rand"
	"testing"

	"github.com/nxgtw/go-hstack/internal/chain"

	"github.com/stretchr/testify/assert"
)

func testTable(t *testing.T, indexed bool) {
	a := assert.New(t)
	tbl := New(indexed)
	a.Equal(0, tbl.Len())
	a.Equal(-1, tbl.Find(1))
	a.Panics(func() {
		tbl.At(0)
	})
	a.Panics(func() {
		tbl.RemoveAt(0)
	})
	for h := int32(1); h <= 5; h++ {
		a.Equal(int(h-1), tbl.Append(Descriptor{Handle: h, Head: chain.Empty}))
	}
	a.Equal([]int32{1, 2, 3, 4, 5}, tbl.Handles())
	for h := int32(1); h <= 5; h++ {
		a.Equal(int(h-1), tbl.Find(h))
	}
	removed := tbl.RemoveAt(1)
	a.Equal(int32(2), removed.Handle)
	a.Equal([]int32{1, 5, 3, 4}, tbl.Handles())
	a.Equal(-1, tbl.Find(2))
	a.Equal(1, tbl.Find(5))

	removed = tbl.RemoveAt(3)
	a.Equal(int32(4), removed.Handle)
	a.Equal([]int32{1, 5, 3}, tbl.Handles())

	tbl.At(2).Head = 7
	a.Equal(chain.Head(7), tbl.At(tbl.Find(3)).Head)

	tbl.Swap(0, 2)
	a.Equal([]int32{3, 5, 1}, tbl.Handles())
	a.Equal(0, tbl.Find(3))
	a.Equal(2, tbl.Find(1))
	a.Panics(func() {
		tbl.Swap(0, 3)
	})

	for tbl.Len() > 0 {
		tbl.RemoveAt(0)
	}
	a.Equal(-1, tbl.Find(1))
	a.Empty(tbl.Handles())

	tbl.Append(Descriptor{Handle: 9})
	tbl.Reset()
	a.Equal(0, tbl.Len())
	a.Equal(-1, tbl.Find(9))
}

func TestLinearTable(t *testing.T) {
	testTable(t, false)
}

func TestIndexedTable(t *testing.T) {
	testTable(t, true)
}

func TestIndexedTableDuplicate(t *testing.T) {
	a := assert.New(t)
	tbl := New(true)
	tbl.Append(Descriptor{Handle: 1})
	a.Panics(func() {
		tbl.Append(Descriptor{Handle: 1})
	})
}

func TestTableIndexConsistency(t *testing.T) {
	a := assert.New(t)
	linear, indexed := New(false), New(true)
	rnd := rand.New(rand.NewSource(1))
	next := int32(1)
	for i := 0; i < 1000; i++ {
		if linear.Len() == 0 || rnd.Intn(3) != 0 {
			linear.Append(Descriptor{Handle: next})
			indexed.Append(Descriptor{Handle: next})
			next++
			continue
		}
		at := rnd.Intn(linear.Len())
		a.Equal(linear.RemoveAt(at), indexed.RemoveAt(at))
	}
	a.Equal(linear.Handles(), indexed.Handles())
	for h := int32(0); h <= next; h++ {
		a.Equal(linear.Find(h), indexed.Find(h))
	}
}
