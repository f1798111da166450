package alloc

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDoubleFree reports a buffer released more than once.
	ErrDoubleFree = errors.New("alloc: buffer released twice")
	// ErrForeignFree reports a buffer released that this allocator never handed out.
	ErrForeignFree = errors.New("alloc: buffer not owned by allocator")
	// ErrSizeMismatch reports a release whose size differs from the allocation.
	ErrSizeMismatch = errors.New("alloc: release size differs from allocation")
)

// TrackingStats is a snapshot of a Tracking allocator.
type TrackingStats struct {
	Allocs      uint64
	Frees       uint64
	Failures    uint64
	LiveBuffers int
	LiveBytes   int64
	PeakBytes   int64
}

// Tracking wraps an allocator and audits every buffer through its lifetime.
//
// Misuse is recorded rather than panicking; inspect it with Err.
type Tracking struct {
	inner Allocator

	mu       sync.Mutex
	live     map[uintptr]int
	released map[uintptr]struct{}
	stats    TrackingStats
	errs     []error
}

// NewTracking wraps inner. A nil inner uses Heap.
func NewTracking(inner Allocator) *Tracking {
	if inner == nil {
		inner = Heap{}
	}
	return &Tracking{
		inner:    inner,
		live:     make(map[uintptr]int),
		released: make(map[uintptr]struct{}),
	}
}

// Allocate implements Allocator.
func (t *Tracking) Allocate(n int) ([]byte, error) {
	buf, err := t.inner.Allocate(n)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.stats.Failures++
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}

	key := baseAddr(buf)
	delete(t.released, key)
	t.live[key] = n

	t.stats.Allocs++
	t.stats.LiveBuffers++
	t.stats.LiveBytes += int64(n)
	t.stats.PeakBytes = max(t.stats.PeakBytes, t.stats.LiveBytes)

	return buf, nil
}

// Deallocate implements Allocator.
func (t *Tracking) Deallocate(buf []byte, n int) {
	if buf == nil {
		return
	}

	key := baseAddr(buf)

	t.mu.Lock()
	size, ok := t.live[key]
	if !ok {
		if _, freed := t.released[key]; freed {
			t.errs = append(t.errs, fmt.Errorf("%w: %d bytes at %#x", ErrDoubleFree, n, key))
		} else {
			t.errs = append(t.errs, fmt.Errorf("%w: %d bytes at %#x", ErrForeignFree, n, key))
		}
		t.mu.Unlock()
		return
	}
	if size != n {
		t.errs = append(t.errs, fmt.Errorf("%w: allocated %d, released %d", ErrSizeMismatch, size, n))
	}

	delete(t.live, key)
	t.released[key] = struct{}{}
	t.stats.Frees++
	t.stats.LiveBuffers--
	t.stats.LiveBytes -= int64(size)
	t.mu.Unlock()

	t.inner.Deallocate(buf, size)
}

// Stats returns a snapshot of the allocation counters.
func (t *Tracking) Stats() TrackingStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Err returns every recorded misuse joined together, or nil.
func (t *Tracking) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return errors.Join(t.errs...)
}
