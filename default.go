// Copyright 2018 Aleksandr Demakin. All rights reserved.

package hstack

import (
	"sync"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry used by the Stack* functions.
// It is created on first use with default options.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry()
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// StackNew creates a stack in the default registry.
func StackNew() Handle {
	return Default().New()
}

// StackFree releases a stack of the default registry.
func StackFree(h Handle) {
	Default().Free(h)
}

// StackValidHandler returns true if h is available for allocation in the default registry.
func StackValidHandler(h Handle) bool {
	return Default().Valid(h)
}

// StackSize returns the number of items in a stack of the default registry.
func StackSize(h Handle) uint32 {
	return Default().Size(h)
}

// StackPush pushes size bytes of data to a stack of the default registry.
func StackPush(h Handle, data []byte, size uint32) {
	Default().Push(h, data, size)
}

// StackPop pops the top item of a stack of the default registry into out.
func StackPop(h Handle, out []byte, capacity uint32) uint32 {
	return Default().Pop(h, out, capacity)
}
