// Copyright 2018 Aleksandr Demakin. All rights reserved.

// Package allocator provides payload buffer allocators.
package allocator
