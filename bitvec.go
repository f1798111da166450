package bitvec

import (
	"encoding/binary"
	"runtime"

	"github.com/hupe1980/bitvec/alloc"
)

// BitVector is a growable sequence of bits packed MSB-first into bytes.
//
// The zero value is not usable; construct vectors with New, NewSize or Parse.
type BitVector struct {
	bits    uint64
	maxBits uint64
	buf     *buffer
	logger  *Logger
}

func newVector(o options) *BitVector {
	v := &BitVector{
		maxBits: o.maxBits,
		logger:  o.logger,
		buf: &buffer{
			alloc:   o.allocator,
			metrics: o.metrics,
		},
	}
	// Storage of an unreachable vector goes back to its allocator.
	runtime.AddCleanup(v, (*buffer).release, v.buf)
	return v
}

// config returns the options this vector was built with.
func (v *BitVector) config() options {
	return options{
		allocator: v.buf.alloc,
		maxBits:   v.maxBits,
		logger:    v.logger,
		metrics:   v.buf.metrics,
	}
}

// New creates an empty vector. It never allocates.
func New(opts ...Option) *BitVector {
	return newVector(newOptions(opts))
}

// NewSize creates a vector of n bits, all unset unless WithPattern seeds the
// first 64 bits. The capacity is exactly ceil(n/8) bytes.
func NewSize(n uint64, opts ...Option) (*BitVector, error) {
	o := newOptions(opts)
	if n > o.maxBits {
		return nil, &LengthError{Op: "NewSize", Requested: n, Max: o.maxBits, Unit: "bits", cause: ErrInvalidLength}
	}

	v := newVector(o)
	if n == 0 {
		return v, nil
	}

	size := bytesFor(n)
	data, err := v.buf.allocate(size)
	if err != nil {
		v.logger.LogAllocFailure("NewSize", size, err)
		return nil, allocError("NewSize", size, err)
	}
	clear(data)

	if o.pattern != 0 {
		var seed [8]byte
		binary.LittleEndian.PutUint64(seed[:], o.pattern)
		copy(data, seed[:])
	}

	v.buf.data = data
	v.bits = n
	return v, nil
}

// Clone returns an independent copy with the same bits, capacity, allocator
// and configuration.
func (v *BitVector) Clone() (*BitVector, error) {
	c := newVector(v.config())
	if v.buf.data == nil {
		return c, nil
	}

	size := len(v.buf.data)
	data, err := c.buf.allocate(size)
	if err != nil {
		v.logger.LogAllocFailure("Clone", size, err)
		return nil, allocError("Clone", size, err)
	}
	copy(data, v.buf.data)

	c.buf.data = data
	c.bits = v.bits
	return c, nil
}

// CopyFrom replaces the contents of v with a copy of src, keeping v's
// allocator. The capacity follows src, clamped to v's ceiling. On error v is
// unchanged.
func (v *BitVector) CopyFrom(src *BitVector) error {
	if v == src {
		return nil
	}
	if src.bits > v.maxBits {
		return &LengthError{Op: "CopyFrom", Requested: src.bits, Max: v.maxBits, Unit: "bits", cause: ErrInvalidLength}
	}
	if src.buf.data == nil {
		v.Clear()
		return nil
	}

	// src may carry spare capacity beyond v's ceiling; bytesFor(src.bits) always fits.
	size := min(len(src.buf.data), v.maxCapacity())
	if len(v.buf.data) != size {
		data, err := v.buf.allocate(size)
		if err != nil {
			v.logger.LogAllocFailure("CopyFrom", size, err)
			return allocError("CopyFrom", size, err)
		}
		v.buf.replace(data)
	}
	copy(v.buf.data, src.buf.data[:size])
	v.bits = src.bits
	return nil
}

// Take moves the contents of v into a new vector and leaves v empty.
// No memory is allocated or copied.
func (v *BitVector) Take() *BitVector {
	t := newVector(v.config())
	t.buf.data = v.buf.data
	t.bits = v.bits

	v.buf.data = nil
	v.bits = 0
	return t
}

// Swap exchanges the complete state of v and other, including their
// allocators, in O(1). Swapping a vector with itself is a no-op.
func (v *BitVector) Swap(other *BitVector) {
	if v == other {
		return
	}
	v.bits, other.bits = other.bits, v.bits
	v.maxBits, other.maxBits = other.maxBits, v.maxBits
	v.logger, other.logger = other.logger, v.logger
	*v.buf, *other.buf = *other.buf, *v.buf
}

// Clear releases the storage and resets v to the empty state. It is idempotent.
func (v *BitVector) Clear() {
	v.buf.release()
	v.bits = 0
}

// Close releases the storage. It implements io.Closer and always returns nil.
func (v *BitVector) Close() error {
	v.Clear()
	return nil
}

// Allocator returns the allocator that owns the vector's storage.
func (v *BitVector) Allocator() alloc.Allocator {
	return v.buf.alloc
}
