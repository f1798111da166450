package alloc

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/hupe1980/bitvec/internal/mmap"
)

// Mmap allocates every buffer from its own anonymous off-heap mapping.
//
// Buffers are invisible to the garbage collector and are unmapped as soon as
// Deallocate is called. The zero value is ready to use.
type Mmap struct {
	// Advice is passed to the kernel for every new mapping.
	Advice mmap.AccessPattern

	mu       sync.Mutex
	mappings map[uintptr]*mmap.Mapping
}

// NewMmap creates an off-heap allocator.
func NewMmap() *Mmap {
	return &Mmap{}
}

// Allocate implements Allocator.
func (a *Mmap) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfMemory, n)
	}
	if n == 0 {
		return nil, nil
	}

	m, err := mmap.MapAnon(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	if a.Advice != mmap.AccessDefault {
		_ = m.Advise(a.Advice)
	}

	buf := m.Bytes()[:n:n]

	a.mu.Lock()
	if a.mappings == nil {
		a.mappings = make(map[uintptr]*mmap.Mapping)
	}
	a.mappings[baseAddr(buf)] = m
	a.mu.Unlock()

	return buf, nil
}

// Deallocate implements Allocator. Buffers not produced by this allocator are ignored.
func (a *Mmap) Deallocate(buf []byte, _ int) {
	if cap(buf) == 0 {
		return
	}

	key := baseAddr(buf)

	a.mu.Lock()
	m, ok := a.mappings[key]
	delete(a.mappings, key)
	a.mu.Unlock()

	if ok {
		_ = m.Close()
	}
}

// Live returns the number of mappings that have not been released.
func (a *Mmap) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.mappings)
}

// baseAddr identifies a buffer by the address of its first element.
func baseAddr(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf))) //nolint:gosec // address used as a map key only
}
