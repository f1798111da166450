package bitvec

import "bytes"

func (v *BitVector) checkOperand(op string, other *BitVector) error {
	if v.bits != other.bits || v.bits == 0 {
		return &SizeMismatchError{Op: op, Left: v.bits, Right: other.bits}
	}
	return nil
}

// And sets v to v AND other. Both vectors must hold the same, non-zero number
// of bits.
func (v *BitVector) And(other *BitVector) error {
	if err := v.checkOperand("And", other); err != nil {
		return err
	}
	andBytes(v.Bytes(), other.Bytes())
	return nil
}

// Or sets v to v OR other. Both vectors must hold the same, non-zero number
// of bits.
func (v *BitVector) Or(other *BitVector) error {
	if err := v.checkOperand("Or", other); err != nil {
		return err
	}
	orBytes(v.Bytes(), other.Bytes())
	return nil
}

// Xor sets v to v XOR other. Both vectors must hold the same, non-zero number
// of bits.
func (v *BitVector) Xor(other *BitVector) error {
	if err := v.checkOperand("Xor", other); err != nil {
		return err
	}
	xorBytes(v.Bytes(), other.Bytes())
	return nil
}

// Not returns the complement of v as a new vector. Every allocated byte is
// inverted, spare capacity included; only bits in [0, Size()) are meaningful.
func (v *BitVector) Not() (*BitVector, error) {
	c, err := v.Clone()
	if err != nil {
		return nil, err
	}
	notBytes(c.buf.data)
	return c, nil
}

// And returns a AND b as a new vector.
func And(a, b *BitVector) (*BitVector, error) {
	return combine(a, b, (*BitVector).And)
}

// Or returns a OR b as a new vector.
func Or(a, b *BitVector) (*BitVector, error) {
	return combine(a, b, (*BitVector).Or)
}

// Xor returns a XOR b as a new vector.
func Xor(a, b *BitVector) (*BitVector, error) {
	return combine(a, b, (*BitVector).Xor)
}

func combine(a, b *BitVector, op func(*BitVector, *BitVector) error) (*BitVector, error) {
	c, err := a.Clone()
	if err != nil {
		return nil, err
	}
	if err := op(c, b); err != nil {
		c.Clear()
		return nil, err
	}
	return c, nil
}

// Equal reports whether v and other hold the same bits. Only [0, Size()) is
// compared; capacity and the unused tail of the final byte are ignored.
func (v *BitVector) Equal(other *BitVector) bool {
	if v.bits != other.bits {
		return false
	}
	if v.bits == 0 {
		return true
	}

	whole := v.bits >> 3
	if !bytes.Equal(v.buf.data[:whole], other.buf.data[:whole]) {
		return false
	}
	m := tailMask(v.bits)
	if m == 0 {
		return true
	}
	return v.buf.data[whole]&m == other.buf.data[whole]&m
}
