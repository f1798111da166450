package bitvec

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting buffer lifecycle metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see the metrics/prom package).
type MetricsCollector interface {
	// RecordAlloc is called after every allocator request.
	// bytes is the requested size, err is nil if successful.
	RecordAlloc(bytes int, err error)

	// RecordFree is called after a buffer of the given size is released.
	RecordFree(bytes int)

	// RecordRealloc is called after the backing capacity moves from one size to another.
	RecordRealloc(from, to int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int, error) {}
func (NoopMetricsCollector) RecordFree(int)         {}
func (NoopMetricsCollector) RecordRealloc(int, int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount   atomic.Int64
	AllocErrors  atomic.Int64
	AllocBytes   atomic.Int64
	FreeCount    atomic.Int64
	FreeBytes    atomic.Int64
	GrowCount    atomic.Int64
	ShrinkCount  atomic.Int64
	CurrentBytes atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(bytes int, err error) {
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocCount.Add(1)
	b.AllocBytes.Add(int64(bytes))
	b.CurrentBytes.Add(int64(bytes))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(bytes int) {
	b.FreeCount.Add(1)
	b.FreeBytes.Add(int64(bytes))
	b.CurrentBytes.Add(-int64(bytes))
}

// RecordRealloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRealloc(from, to int) {
	switch {
	case to > from:
		b.GrowCount.Add(1)
	case to < from:
		b.ShrinkCount.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	AllocCount   int64
	AllocErrors  int64
	AllocBytes   int64
	FreeCount    int64
	FreeBytes    int64
	GrowCount    int64
	ShrinkCount  int64
	CurrentBytes int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocCount:   b.AllocCount.Load(),
		AllocErrors:  b.AllocErrors.Load(),
		AllocBytes:   b.AllocBytes.Load(),
		FreeCount:    b.FreeCount.Load(),
		FreeBytes:    b.FreeBytes.Load(),
		GrowCount:    b.GrowCount.Load(),
		ShrinkCount:  b.ShrinkCount.Load(),
		CurrentBytes: b.CurrentBytes.Load(),
	}
}
