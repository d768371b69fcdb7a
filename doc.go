// Copyright 2018 Aleksandr Demakin. All rights reserved.

// Package hstack provides registries of LIFO stacks holding opaque byte records.
// Stacks are addressed by integer handles; the registry owns all the data,
// push copies the caller's bytes in and pop copies them out.
//
// Registry methods follow a permissive contract: invalid handles and invalid
// buffers turn operations into no-ops returning zero values. TryPush and TryPop
// report the same conditions as errors.
//
// The Stack* functions operate on a process-wide registry returned by Default.
package hstack
