// Copyright 2018 Aleksandr Demakin. All rights reserved.

package hstack

import (
	"log"
	"sync"

	"github.com/nxgtw/go-hstack/internal/chain"
	"github.com/nxgtw/go-hstack/internal/table"

	"github.com/pkg/errors"
)

// Handle identifies a stack in a registry. Valid handles are positive.
type Handle int32

// InvalidHandle is never assigned to a stack.
const InvalidHandle Handle = 0

// Registry is a set of independent stacks of byte records addressed by handles.
// All methods are safe for concurrent use, unless the registry was created
// with WithoutLocking. The zero value is an empty registry with default options.
type Registry struct {
	once       sync.Once
	mu         sync.Locker
	stacks     *table.Table
	items      *chain.Arena
	maxPayload uint32
	logger     *log.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, errors.Wrap(err, "invalid registry option")
		}
	}
	r := &Registry{}
	r.configure(cfg)
	return r, nil
}

func (r *Registry) configure(cfg config) {
	r.mu = cfg.locker
	r.stacks = table.New(cfg.indexed)
	r.items = chain.NewArena(cfg.alloc)
	r.maxPayload = cfg.maxPayload
	r.logger = cfg.logger
}

func (r *Registry) lock() {
	r.once.Do(func() {
		if r.stacks == nil {
			r.configure(defaultConfig())
		}
	})
	r.mu.Lock()
}

func (r *Registry) logf(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}

// New creates an empty stack and returns its handle.
// The handle is the smallest positive value not used by any live stack.
func (r *Registry) New() Handle {
	r.lock()
	defer r.mu.Unlock()
	h := Handle(1)
	for !r.valid(h) {
		h++
	}
	r.stacks.Append(table.Descriptor{Handle: int32(h), Head: chain.Empty})
	return h
}

// Free releases the stack and all its items. Unknown handles are ignored.
func (r *Registry) Free(h Handle) {
	r.lock()
	defer r.mu.Unlock()
	idx := r.find(h)
	if idx == -1 {
		return
	}
	if err := r.items.Release(r.stacks.At(idx).Head); err != nil {
		r.logf("stack %d: %v", h, err)
	}
	r.stacks.RemoveAt(idx)
}

// Valid returns true if h is NOT used by any live stack, i.e. it is available for allocation.
// Note the polarity: Valid(h) == !IsLive(h).
func (r *Registry) Valid(h Handle) bool {
	r.lock()
	defer r.mu.Unlock()
	return r.valid(h)
}

// IsLive returns true if h belongs to a live stack.
func (r *Registry) IsLive(h Handle) bool {
	r.lock()
	defer r.mu.Unlock()
	return r.find(h) != -1
}

// Size returns the number of items in the stack, or 0 for unknown handles.
// The items are counted on every call.
func (r *Registry) Size(h Handle) uint32 {
	r.lock()
	defer r.mu.Unlock()
	idx := r.find(h)
	if idx == -1 {
		return 0
	}
	return uint32(r.items.Depth(r.stacks.At(idx).Head))
}

// Push copies first size bytes of data onto the top of the stack.
// It does nothing if data is empty, size is zero or exceeds len(data),
// the payload is larger than the registry limit, or the handle is unknown.
// A failure to allocate memory for the item is fatal and causes a panic.
func (r *Registry) Push(h Handle, data []byte, size uint32) {
	if len(data) == 0 || size == 0 || uint64(size) > uint64(len(data)) {
		return
	}
	if err := r.TryPush(h, data[:size]); err != nil && IsAllocationError(err) {
		panic(err)
	}
}

// Pop moves the top item of the stack into out.
// It returns 0 and leaves the stack untouched if out is empty, capacity is zero
// or exceeds len(out), the handle is unknown, the stack is empty,
// or capacity is less than the size of the top item.
// On success it returns capacity, not the number of bytes copied. Use TryPop to get the item size.
func (r *Registry) Pop(h Handle, out []byte, capacity uint32) uint32 {
	if len(out) == 0 || capacity == 0 || uint64(capacity) > uint64(len(out)) {
		return 0
	}
	if _, err := r.TryPop(h, out[:capacity]); err != nil {
		return 0
	}
	return capacity
}

// TryPush copies data onto the top of the stack.
func (r *Registry) TryPush(h Handle, data []byte) error {
	if len(data) == 0 {
		return errors.Wrap(ErrInvalidInput, "empty data")
	}
	r.lock()
	defer r.mu.Unlock()
	if uint64(len(data)) > uint64(r.maxPayload) {
		return errors.Wrapf(ErrPayloadTooLarge, "%d bytes, limit is %d", len(data), r.maxPayload)
	}
	idx := r.find(h)
	if idx == -1 {
		return errors.Wrapf(ErrInvalidHandle, "push to %d", h)
	}
	desc := r.stacks.At(idx)
	head, err := r.items.Push(desc.Head, data)
	if err != nil {
		err = newAllocationError(err, len(data))
		r.logf("stack %d: %v", h, err)
		return errors.Wrapf(err, "push to %d", h)
	}
	desc.Head = head
	return nil
}

// TryPop moves the top item of the stack into out and returns its size.
// If out is too small, the error is ErrBufferTooSmall and the stack is not modified.
func (r *Registry) TryPop(h Handle, out []byte) (int, error) {
	if len(out) == 0 {
		return 0, errors.Wrap(ErrInvalidInput, "empty buffer")
	}
	r.lock()
	defer r.mu.Unlock()
	idx := r.find(h)
	if idx == -1 {
		return 0, errors.Wrapf(ErrInvalidHandle, "pop from %d", h)
	}
	desc := r.stacks.At(idx)
	top := r.items.Top(desc.Head)
	if top == nil {
		return 0, errors.Wrapf(ErrEmptyStack, "pop from %d", h)
	}
	if len(top) > len(out) {
		return 0, errors.Wrapf(ErrBufferTooSmall, "item is %d bytes, buffer is %d", len(top), len(out))
	}
	n := copy(out, top)
	head, err := r.items.Drop(desc.Head)
	if err != nil {
		r.logf("stack %d: %v", h, err)
	}
	desc.Head = head
	return n, nil
}

// Len returns the number of live stacks.
func (r *Registry) Len() int {
	r.lock()
	defer r.mu.Unlock()
	return r.stacks.Len()
}

// Handles returns the handles of all live stacks. The order is unspecified.
func (r *Registry) Handles() []Handle {
	r.lock()
	defer r.mu.Unlock()
	raw := r.stacks.Handles()
	result := make([]Handle, len(raw))
	for i, h := range raw {
		result[i] = Handle(h)
	}
	return result
}

// Release frees all stacks. The registry remains usable.
func (r *Registry) Release() {
	r.lock()
	defer r.mu.Unlock()
	for i := 0; i < r.stacks.Len(); i++ {
		desc := r.stacks.At(i)
		if err := r.items.Release(desc.Head); err != nil {
			r.logf("stack %d: %v", desc.Handle, err)
		}
	}
	r.stacks.Reset()
}

func (r *Registry) find(h Handle) int {
	if h <= InvalidHandle {
		return -1
	}
	return r.stacks.Find(int32(h))
}

func (r *Registry) valid(h Handle) bool {
	return r.find(h) == -1
}
