// Copyright 2018 Aleksandr Demakin. All rights reserved.

// Package spin implements a busy-wait mutex.
package spin

import (
	"runtime"
	"sync/atomic"
)

// Mutex is a synchronization object which performs busy wait loop.
// The zero value is an unlocked mutex.
type Mutex struct {
	value uint32
}

// Lock locks the mutex waiting in a busy loop if needed.
func (spin *Mutex) Lock() {
	for !spin.TryLock() {
		runtime.Gosched()
	}
}

// Unlock releases the mutex.
func (spin *Mutex) Unlock() {
	atomic.StoreUint32(&spin.value, 0)
}

// TryLock makes one attempt to lock the mutex. It return true on succeess and false otherwise.
func (spin *Mutex) TryLock() bool {
	return atomic.CompareAndSwapUint32(&spin.value, 0, 1)
}
