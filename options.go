package bitvec

import (
	"github.com/hupe1980/bitvec/alloc"
)

type options struct {
	allocator alloc.Allocator
	pattern   uint64
	maxBits   uint64
	logger    *Logger
	metrics   MetricsCollector
}

func newOptions(opts []Option) options {
	o := options{
		allocator: alloc.Default(),
		maxBits:   MaxSize,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a BitVector at construction.
type Option func(*options)

// WithAllocator sets the memory provider used for every allocation and release
// during the vector's lifetime.
//
// If nil is passed, alloc.Default is used.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = alloc.Default()
		}
		o.allocator = a
	}
}

// WithPattern seeds a vector built by NewSize: its first min(Capacity(), 8)
// bytes are the little-endian bytes of p. With p = 0xFF bits 0-7 are set.
func WithPattern(p uint64) Option {
	return func(o *options) {
		o.pattern = p
	}
}

// WithMaxSize lowers the vector's ceiling below MaxSize.
// Zero or values above MaxSize keep MaxSize.
func WithMaxSize(bits uint64) Option {
	return func(o *options) {
		if bits == 0 || bits > MaxSize {
			bits = MaxSize
		}
		o.maxBits = bits
	}
}

// WithLogger sets the logger for reallocation and allocation-failure events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the collector notified of allocations, releases and
// reallocations.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
