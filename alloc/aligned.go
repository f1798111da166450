package alloc

import (
	"fmt"

	"github.com/hupe1980/bitvec/internal/mem"
)

// Aligned allocates 64-byte aligned heap slabs.
type Aligned struct{}

// Allocate implements Allocator.
func (Aligned) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfMemory, n)
	}
	return mem.AllocAligned(n), nil
}

// Deallocate implements Allocator.
func (Aligned) Deallocate([]byte, int) {}
