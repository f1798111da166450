package alloc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/bitvec/internal/mmap"
)

// MemoryAcquirer is an interface for acquiring memory.
// *resource.Controller satisfies it.
type MemoryAcquirer interface {
	AcquireMemory(ctx context.Context, amount int64) error
	ReleaseMemory(amount int64)
}

var (
	// ErrArenaClosed is returned (wrapped in ErrOutOfMemory) after Free.
	ErrArenaClosed = errors.New("arena: closed")
	// ErrMaxChunksExceeded is returned (wrapped in ErrOutOfMemory) when the arena exceeds MaxChunks.
	ErrMaxChunksExceeded = errors.New("arena: max chunks exceeded")
)

const (
	// DefaultChunkSize is the default size of a chunk (1MB).
	DefaultChunkSize = 1024 * 1024
	// DefaultAlignment is the default memory alignment (8 bytes).
	DefaultAlignment = 8
	// MaxChunks limits the number of chunks to prevent excessive memory usage.
	MaxChunks = 65536
	// acquireTimeout bounds the wait for budget when no deadline is supplied.
	acquireTimeout = 100 * time.Millisecond
)

// ArenaStats tracks arena memory usage metrics.
//
// Note on semantics:
//   - BytesReserved: total memory currently mapped for chunks
//   - BytesUsed: bytes requested by allocations (before alignment)
//   - BytesWasted: padding added for alignment
//   - ActiveChunks: number of chunks currently held
//   - ChunksAllocated, TotalAllocs: cumulative counts
type ArenaStats struct {
	ChunksAllocated uint64
	BytesReserved   uint64
	BytesUsed       uint64
	BytesWasted     uint64
	ActiveChunks    uint64
	TotalAllocs     uint64
}

type arenaChunk struct {
	data    []byte
	mapping *mmap.Mapping
	offset  int
}

// Arena is a chunked bump allocator over off-heap memory.
//
// Deallocate is a no-op: memory comes back all at once through Reset or Free.
// This suits many short-lived vectors built and dropped together. Every buffer
// handed out becomes invalid after Reset or Free, so vectors using the arena
// must be cleared first.
type Arena struct {
	chunkSize int
	alignment int
	acquirer  MemoryAcquirer

	mu      sync.Mutex
	chunks  []*arenaChunk
	current *arenaChunk
	closed  bool
	stats   ArenaStats
}

// ArenaOption is a configuration option for Arena.
type ArenaOption func(*Arena)

// WithMemoryAcquirer sets the memory acquirer charged for every chunk.
func WithMemoryAcquirer(acquirer MemoryAcquirer) ArenaOption {
	return func(a *Arena) {
		a.acquirer = acquirer
	}
}

// NewArena creates an arena with the given chunk size.
// Chunks are mapped lazily on the first allocation.
func NewArena(chunkSize int, opts ...ArenaOption) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	a := &Arena{
		chunkSize: chunkSize,
		alignment: DefaultAlignment,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Allocate implements Allocator.
func (a *Arena) Allocate(n int) ([]byte, error) {
	return a.AllocateContext(context.Background(), n)
}

// AllocateContext allocates n bytes, bounding any wait for memory budget by ctx.
func (a *Arena) AllocateContext(ctx context.Context, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfMemory, n)
	}
	if n == 0 {
		return nil, nil
	}

	mask := a.alignment - 1
	alignedSize := (n + mask) &^ mask

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, ErrArenaClosed)
	}

	c := a.current
	if c == nil || c.offset+alignedSize > len(c.data) {
		size := max(a.chunkSize, alignedSize)
		var err error
		if c, err = a.newChunkLocked(ctx, size); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		// Oversized requests get a dedicated chunk; keep filling the current one.
		if size == a.chunkSize || a.current == nil {
			a.current = c
		}
	}

	start := c.offset
	c.offset += alignedSize

	a.stats.BytesUsed += uint64(n)
	a.stats.BytesWasted += uint64(alignedSize - n)
	a.stats.TotalAllocs++

	return c.data[start : start+n : start+n], nil
}

func (a *Arena) newChunkLocked(ctx context.Context, size int) (*arenaChunk, error) {
	if len(a.chunks) >= MaxChunks {
		return nil, ErrMaxChunksExceeded
	}

	if a.acquirer != nil {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, acquireTimeout)
			defer cancel()
		}
		if err := a.acquirer.AcquireMemory(ctx, int64(size)); err != nil {
			return nil, err
		}
	}

	mapping, err := mmap.MapAnon(size)
	if err != nil {
		if a.acquirer != nil {
			a.acquirer.ReleaseMemory(int64(size))
		}
		return nil, fmt.Errorf("failed to map anonymous memory for chunk: %w", err)
	}

	c := &arenaChunk{
		data:    mapping.Bytes(),
		mapping: mapping,
	}
	a.chunks = append(a.chunks, c)

	a.stats.ChunksAllocated++
	a.stats.ActiveChunks++
	a.stats.BytesReserved += uint64(size)

	return c, nil
}

// Deallocate implements Allocator. It is a no-op; see Reset and Free.
func (a *Arena) Deallocate([]byte, int) {}

// Reset reclaims every allocation, keeping the first chunk for reuse.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.chunks) == 0 {
		a.stats.BytesUsed = 0
		a.stats.BytesWasted = 0
		return
	}

	first := a.chunks[0]
	for _, c := range a.chunks[1:] {
		a.releaseChunkLocked(c)
	}
	first.offset = 0
	a.chunks = a.chunks[:1]
	a.current = first

	a.stats.ActiveChunks = 1
	a.stats.BytesReserved = uint64(len(first.data))
	a.stats.BytesUsed = 0
	a.stats.BytesWasted = 0
}

// Free releases all arena memory. The arena cannot be reused afterwards.
func (a *Arena) Free() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, c := range a.chunks {
		a.releaseChunkLocked(c)
	}
	a.chunks = nil
	a.current = nil
	a.closed = true

	a.stats.ActiveChunks = 0
	a.stats.BytesReserved = 0
	a.stats.BytesUsed = 0
	a.stats.BytesWasted = 0
}

func (a *Arena) releaseChunkLocked(c *arenaChunk) {
	size := len(c.data)
	_ = c.mapping.Close()
	c.data = nil
	if a.acquirer != nil {
		a.acquirer.ReleaseMemory(int64(size))
	}
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() ArenaStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Usage returns the memory usage percentage.
func (a *Arena) Usage() float64 {
	stats := a.Stats()
	if stats.BytesReserved == 0 {
		return 0
	}
	return float64(stats.BytesUsed) / float64(stats.BytesReserved) * 100
}

func (a *Arena) String() string {
	stats := a.Stats()
	return fmt.Sprintf(
		"Arena{chunks: %d, reserved: %.2f MB, used: %.2f MB, wasted: %.2f KB, usage: %.1f%%, allocs: %d}",
		stats.ActiveChunks,
		float64(stats.BytesReserved)/(1024*1024),
		float64(stats.BytesUsed)/(1024*1024),
		float64(stats.BytesWasted)/1024,
		a.Usage(),
		stats.TotalAllocs,
	)
}
