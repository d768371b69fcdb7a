// Copyright 2018 Aleksandr Demakin. All rights reserved.

package hstack

import (
	"log"
	"sync"

	"github.com/nxgtw/go-hstack/internal/allocator"
	"github.com/nxgtw/go-hstack/internal/spin"

	"github.com/pkg/errors"
)

type config struct {
	indexed    bool
	locker     sync.Locker
	lockerSet  bool
	alloc      allocator.Allocator
	allocSet   bool
	maxPayload uint32
	logger     *log.Logger
}

func defaultConfig() config {
	return config{
		locker:     &sync.Mutex{},
		alloc:      allocator.Heap{},
		maxPayload: allocator.MaxObjectSize,
	}
}

func (c *config) setLocker(l sync.Locker) error {
	if c.lockerSet {
		return errors.New("conflicting lock options")
	}
	c.locker, c.lockerSet = l, true
	return nil
}

func (c *config) setAllocator(alloc allocator.Allocator) error {
	if c.allocSet {
		return errors.New("conflicting allocator options")
	}
	c.alloc, c.allocSet = alloc, true
	return nil
}

// Allocator provides byte buffers for item payloads.
type Allocator = allocator.Allocator

// Option configures a Registry.
type Option func(*config) error

// WithHashIndex makes the registry resolve handles with a hash index
// instead of a linear scan over the descriptors.
func WithHashIndex() Option {
	return func(c *config) error {
		c.indexed = true
		return nil
	}
}

// WithSpinLock guards the registry with a busy-wait mutex.
func WithSpinLock() Option {
	return func(c *config) error {
		return c.setLocker(&spin.Mutex{})
	}
}

// WithLocker guards the registry with the given locker.
func WithLocker(l sync.Locker) Option {
	return func(c *config) error {
		if l == nil {
			return errors.New("nil locker")
		}
		return c.setLocker(l)
	}
}

// WithoutLocking disables internal synchronization.
// The registry must then be used from a single goroutine at a time.
func WithoutLocking() Option {
	return func(c *config) error {
		return c.setLocker(nopLocker{})
	}
}

// WithMappedPayloads places every payload in its own anonymous memory mapping.
// On platforms without mmap the go heap is used.
func WithMappedPayloads() Option {
	return WithAllocator(allocator.Mapped{})
}

// WithAllocator sets the allocator for payload buffers.
func WithAllocator(alloc Allocator) Option {
	return func(c *config) error {
		if alloc == nil {
			return errors.New("nil allocator")
		}
		return c.setAllocator(alloc)
	}
}

// WithMaxPayloadSize rejects pushes of more than size bytes.
// Zero means the default limit of allocator.MaxObjectSize, which is also the upper bound.
func WithMaxPayloadSize(size uint32) Option {
	return func(c *config) error {
		if size > allocator.MaxObjectSize {
			return errors.Errorf("payload size limit exceeds max object size of %d", allocator.MaxObjectSize)
		}
		if size == 0 {
			size = allocator.MaxObjectSize
		}
		c.maxPayload = size
		return nil
	}
}

// WithLogger sets a logger for diagnostic messages. A nil logger disables them.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}
