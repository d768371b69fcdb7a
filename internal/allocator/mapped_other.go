// Copyright 2018 Aleksandr Demakin. All rights reserved.

//go:build !darwin && !freebsd && !linux
// +build !darwin,!freebsd,!linux

package allocator

// Mapped falls back to the heap on platforms without anonymous mmap support.
type Mapped struct {
	Heap
}
