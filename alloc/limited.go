package alloc

import (
	"fmt"

	"github.com/hupe1980/bitvec/resource"
)

// Limited charges every buffer of an underlying allocator against a memory budget.
//
// Requests that would exceed the budget fail with ErrOutOfMemory without
// reaching the underlying allocator.
//
// The budget is refunded on Deallocate. An allocator that keeps memory past
// Deallocate, such as Arena, therefore holds more than Limited reports; charge
// an Arena per chunk with WithMemoryAcquirer instead.
type Limited struct {
	inner Allocator
	rc    *resource.Controller
}

// NewLimited wraps inner with the budget of rc. A nil inner uses Heap.
func NewLimited(inner Allocator, rc *resource.Controller) *Limited {
	if inner == nil {
		inner = Heap{}
	}
	return &Limited{inner: inner, rc: rc}
}

// Allocate implements Allocator.
func (l *Limited) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return l.inner.Allocate(n)
	}

	if err := l.rc.TryAcquireMemory(int64(n)); err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrOutOfMemory, n, err)
	}

	buf, err := l.inner.Allocate(n)
	if err != nil {
		l.rc.ReleaseMemory(int64(n))
		return nil, err
	}
	return buf, nil
}

// Deallocate implements Allocator.
func (l *Limited) Deallocate(buf []byte, n int) {
	if buf == nil {
		return
	}
	l.inner.Deallocate(buf, n)
	l.rc.ReleaseMemory(int64(n))
}

// Controller returns the budget this allocator charges.
func (l *Limited) Controller() *resource.Controller {
	return l.rc
}
