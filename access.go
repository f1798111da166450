package bitvec

// Size returns the number of bits.
func (v *BitVector) Size() uint64 {
	return v.bits
}

// Capacity returns the number of allocated bytes.
func (v *BitVector) Capacity() int {
	return len(v.buf.data)
}

// MaxSize returns the largest number of bits this vector may hold.
func (v *BitVector) MaxSize() uint64 {
	return v.maxBits
}

// Empty reports whether the vector holds no bits.
func (v *BitVector) Empty() bool {
	return v.bits == 0
}

// Bytes returns the bytes covering [0, Size()). Bits of the final byte past
// Size() are unspecified.
//
// The slice aliases the vector's storage. It is valid until the next
// reallocation and only while v is reachable: once v is garbage, a runtime
// cleanup hands the storage back to the allocator, and an off-heap allocator
// such as alloc.Mmap unmaps it. Keep v alive with runtime.KeepAlive(v) after
// the last use of the slice.
func (v *BitVector) Bytes() []byte {
	if v.buf.data == nil {
		return nil
	}
	return v.buf.data[:bytesFor(v.bits)]
}

// Get returns bit i without bounds checking. The caller guarantees
// i < Size(); otherwise the result is unspecified or Get panics.
func (v *BitVector) Get(i uint64) bool {
	return test(v.buf.data, i)
}

// At returns bit i, or an IndexError if i >= Size().
func (v *BitVector) At(i uint64) (bool, error) {
	if i >= v.bits {
		return false, &IndexError{Op: "At", Index: i, Size: v.bits}
	}
	return test(v.buf.data, i), nil
}

// Front returns bit 0.
func (v *BitVector) Front() (bool, error) {
	if v.bits == 0 {
		return false, emptyError("Front")
	}
	return test(v.buf.data, 0), nil
}

// Back returns the last bit.
func (v *BitVector) Back() (bool, error) {
	if v.bits == 0 {
		return false, emptyError("Back")
	}
	return test(v.buf.data, v.bits-1), nil
}

// Count returns the number of set bits in [0, Size()).
func (v *BitVector) Count() uint64 {
	if v.bits == 0 {
		return 0
	}
	whole := v.bits >> 3
	n := countBytes(v.buf.data[:whole])
	if m := tailMask(v.bits); m != 0 {
		n += popcount8(v.buf.data[whole] & m)
	}
	return n
}

// Any reports whether at least one bit in [0, Size()) is set.
func (v *BitVector) Any() bool {
	if v.bits == 0 {
		return false
	}
	whole := v.bits >> 3
	for _, b := range v.buf.data[:whole] {
		if b != 0 {
			return true
		}
	}
	if m := tailMask(v.bits); m != 0 {
		return v.buf.data[whole]&m != 0
	}
	return false
}

// None reports whether no bit in [0, Size()) is set. It is always !Any().
func (v *BitVector) None() bool {
	return !v.Any()
}

// All reports whether every bit in [0, Size()) is set. It is true for an empty vector.
func (v *BitVector) All() bool {
	return v.Count() == v.bits
}
