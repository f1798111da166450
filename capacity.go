package bitvec

import "fmt"

// maxCapacity returns the byte ceiling derived from the vector's bit ceiling.
func (v *BitVector) maxCapacity() int {
	return bytesFor(v.maxBits)
}

// realloc moves the storage to a buffer of exactly size bytes (size > 0),
// preserving the common prefix. On failure nothing is modified.
func (v *BitVector) realloc(op string, size int) error {
	old := v.buf.data
	data, err := v.buf.allocate(size)
	if err != nil {
		v.logger.LogAllocFailure(op, size, err)
		return allocError(op, size, err)
	}
	copy(data, old)
	v.buf.replace(data)

	v.buf.metrics.RecordRealloc(len(old), size)
	v.logger.LogRealloc(op, len(old), size, v.bits)
	return nil
}

// Reserve grows the capacity by extraBytes. Existing bits are preserved.
//
// It returns a LengthError wrapping ErrCapacityExceeded if the new capacity
// would pass the vector's ceiling, and is a no-op when extraBytes is zero.
func (v *BitVector) Reserve(extraBytes int) error {
	if extraBytes < 0 {
		return fmt.Errorf("bitvec: Reserve: %w: negative byte count %d", ErrInvalidLength, extraBytes)
	}
	if extraBytes == 0 {
		return nil
	}

	ceiling := v.maxCapacity()
	cur := len(v.buf.data)
	if extraBytes > ceiling-cur {
		return &LengthError{Op: "Reserve", Requested: uint64(cur) + uint64(extraBytes), Max: uint64(ceiling), Unit: "bytes", cause: ErrCapacityExceeded}
	}

	return v.realloc("Reserve", cur+extraBytes)
}

// Resize sets the length to n bits and the capacity to exactly ceil(n/8)
// bytes. Bits added by growth are set to fill. Resize(0, _) is Clear.
//
// n is validated against the ceiling before any conversion, so oversized
// requests fail with ErrInvalidLength instead of wrapping.
func (v *BitVector) Resize(n uint64, fill bool) error {
	if n > v.maxBits {
		return &LengthError{Op: "Resize", Requested: n, Max: v.maxBits, Unit: "bits", cause: ErrInvalidLength}
	}
	if n == 0 {
		v.Clear()
		return nil
	}
	if n == v.bits && len(v.buf.data) == bytesFor(n) {
		return nil
	}

	if size := bytesFor(n); size != len(v.buf.data) {
		if err := v.realloc("Resize", size); err != nil {
			return err
		}
	}

	if n > v.bits {
		fillRange(v.buf.data, v.bits, n, fill)
	}
	v.bits = n
	return nil
}

// ShrinkToFit releases spare capacity so the buffer is exactly ceil(Size()/8)
// bytes. A vector holding no bits gives its buffer back entirely.
func (v *BitVector) ShrinkToFit() error {
	if v.buf.data == nil {
		return nil
	}
	if v.bits == 0 {
		v.Clear()
		return nil
	}

	need := bytesFor(v.bits)
	if need >= len(v.buf.data) {
		return nil
	}
	return v.realloc("ShrinkToFit", need)
}

// PushBack appends one bit in amortized O(1).
//
// When the buffer is full the capacity grows by GrowthStep below
// SmallCapacity, doubles below MidCapacity and grows by half beyond that,
// never past the ceiling. Appending to a vector already at the ceiling
// returns a LengthError wrapping ErrCapacityExceeded; the last bit is never
// overwritten.
func (v *BitVector) PushBack(value bool) error {
	if v.bits >= v.maxBits {
		return &LengthError{Op: "PushBack", Requested: v.bits + 1, Max: v.maxBits, Unit: "bits", cause: ErrCapacityExceeded}
	}

	if need := bytesFor(v.bits + 1); need > len(v.buf.data) {
		size := nextCapacity(len(v.buf.data), need, v.maxCapacity())
		if err := v.realloc("PushBack", size); err != nil {
			return err
		}
	}

	assign(v.buf.data, v.bits, value)
	v.bits++
	return nil
}

// PopBack removes and returns the last bit. Capacity is unchanged.
func (v *BitVector) PopBack() (bool, error) {
	if v.bits == 0 {
		return false, emptyError("PopBack")
	}
	v.bits--
	return test(v.buf.data, v.bits), nil
}
