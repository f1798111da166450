package bitvec

// Set assigns value to bit i.
func (v *BitVector) Set(i uint64, value bool) error {
	if i >= v.bits {
		return &IndexError{Op: "Set", Index: i, Size: v.bits}
	}
	assign(v.buf.data, i, value)
	return nil
}

// Reset clears bit i.
func (v *BitVector) Reset(i uint64) error {
	if i >= v.bits {
		return &IndexError{Op: "Reset", Index: i, Size: v.bits}
	}
	v.buf.data[i>>3] &^= mask(i)
	return nil
}

// Flip inverts bit i.
func (v *BitVector) Flip(i uint64) error {
	if i >= v.bits {
		return &IndexError{Op: "Flip", Index: i, Size: v.bits}
	}
	v.buf.data[i>>3] ^= mask(i)
	return nil
}

// SetAll sets every bit.
func (v *BitVector) SetAll() {
	for i := range v.Bytes() {
		v.buf.data[i] = 0xFF
	}
}

// ResetAll clears every bit.
func (v *BitVector) ResetAll() {
	clear(v.Bytes())
}

// FlipAll inverts every bit.
func (v *BitVector) FlipAll() {
	notBytes(v.Bytes())
}
