package bitvec

import (
	"fmt"

	"github.com/hupe1980/bitvec/alloc"
)

// buffer is the single owner of a vector's storage.
//
// release is the only path that returns memory to the allocator and it clears
// data first, so a buffer can never be deallocated twice. data is nil iff the
// vector is in the Empty state.
type buffer struct {
	data    []byte
	alloc   alloc.Allocator
	metrics MetricsCollector
}

// allocate obtains n bytes (n > 0) without touching the current storage.
func (b *buffer) allocate(n int) ([]byte, error) {
	data, err := b.alloc.Allocate(n)
	if err == nil && len(data) < n {
		if data != nil {
			b.alloc.Deallocate(data, n)
		}
		data, err = nil, fmt.Errorf("%w: allocator returned %d of %d bytes", alloc.ErrOutOfMemory, len(data), n)
	}
	b.metrics.RecordAlloc(n, err)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

// replace releases the current storage and adopts data.
func (b *buffer) replace(data []byte) {
	b.release()
	b.data = data
}

// release hands the storage back to the allocator. It is idempotent.
func (b *buffer) release() {
	if b.data == nil {
		return
	}
	data := b.data
	b.data = nil
	b.alloc.Deallocate(data, len(data))
	b.metrics.RecordFree(len(data))
}
