package bitvec

import (
	"fmt"
	"strings"
)

// String renders the bits in index order as '0' and '1' characters.
// An empty vector renders as "".
func (v *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(int(v.bits))
	for i := uint64(0); i < v.bits; i++ {
		if test(v.buf.data, i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Parse builds a vector from a string of '0' and '1' characters, the inverse
// of String. Character k becomes bit k.
func Parse(s string, opts ...Option) (*BitVector, error) {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' {
			return nil, fmt.Errorf("bitvec: Parse: %w: unexpected %q at position %d", ErrInvalidFormat, c, i)
		}
	}

	v, err := NewSize(uint64(len(s)), opts...)
	if err != nil {
		return nil, err
	}
	// A pattern option has seeded the buffer; the string is authoritative.
	clear(v.Bytes())
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			assign(v.buf.data, uint64(i), true)
		}
	}
	return v, nil
}
