package alloc

import (
	"errors"
	"fmt"
)

//go:generate mockgen -source allocator.go -destination allocator_mocks.go -package alloc

// ErrOutOfMemory is returned (wrapped) when an allocator cannot satisfy a request.
var ErrOutOfMemory = errors.New("out of memory")

// Allocator is the memory provider of a bit vector.
//
// Sizes are counted in elements; for bit storage an element is one byte.
type Allocator interface {
	// Allocate returns a buffer of exactly n elements.
	Allocate(n int) ([]byte, error)
	// Deallocate releases a buffer of n elements obtained from Allocate.
	Deallocate(buf []byte, n int)
}

// Heap allocates from the Go heap. It is the default allocator.
//
// Deallocate only drops the reference; the garbage collector reclaims the memory.
type Heap struct{}

// Allocate implements Allocator.
func (Heap) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfMemory, n)
	}
	if n == 0 {
		return nil, nil
	}
	return make([]byte, n), nil
}

// Deallocate implements Allocator.
func (Heap) Deallocate([]byte, int) {}

// Default returns the allocator used when none is configured.
func Default() Allocator {
	return Heap{}
}
