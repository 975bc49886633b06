package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a slice-backed bump allocator. Indices are 1-based; 0 is the
// invalid sentinel for every ID family built on top of it. Elements are
// never freed individually: the arena owns them until Reset or Release.
type Arena[T any] struct {
	data []T
}

// NewArena creates an arena with an optional capacity hint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores value and returns its 1-based index.
// Exhausting the uint32 index space is a fatal contract violation.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	idx, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}
	return idx
}

// Get returns a pointer to the element at index, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || int(index) > len(a.data) {
		return nil
	}
	return &a.data[index-1]
}

// Reset marks the arena empty while keeping the backing storage, so the
// next compilation unit reuses the memory. All previously handed-out
// indices become invalid.
func (a *Arena[T]) Reset() {
	clear(a.data)
	a.data = a.data[:0]
}

// Release drops the backing storage entirely.
func (a *Arena[T]) Release() {
	a.data = nil
}

// Len reports the number of live elements.
func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data))
}

// Slice exposes the backing storage. Read-only.
func (a *Arena[T]) Slice() []T {
	return a.data
}
