// Copyright 2018 Aleksandr Demakin. All rights reserved.

package hstack

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidHandle is returned when the handle does not belong to a live stack.
	ErrInvalidHandle = errors.New("invalid stack handle")
	// ErrInvalidInput is returned for empty data or output buffers.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyStack is returned when popping from a stack without items.
	ErrEmptyStack = errors.New("stack is empty")
	// ErrBufferTooSmall is returned when the output buffer cannot hold the top item.
	ErrBufferTooSmall = errors.New("buffer is too small")
	// ErrPayloadTooLarge is returned when the payload exceeds the registry limit.
	ErrPayloadTooLarge = errors.New("payload is too large")
)

type allocationError struct {
	inner error
	size  int
}

func (e *allocationError) Error() string {
	return errors.Wrapf(e.inner, "failed to allocate %d bytes", e.size).Error()
}

func newAllocationError(inner error, size int) *allocationError {
	return &allocationError{inner: inner, size: size}
}

// IsAllocationError returns true, if the error was caused by a failure
// to allocate memory for an item.
func IsAllocationError(err error) bool {
	_, ok := errors.Cause(err).(*allocationError)
	return ok
}
