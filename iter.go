package bitvec

import "iter"

// Ones returns an iterator over the positions of set bits in ascending order.
//
// The vector must not be resized while the iterator is in use.
func (v *BitVector) Ones() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		n := v.bits
		data := v.Bytes()
		for bi, b := range data {
			base := uint64(bi) << 3
			for b != 0 {
				i := base + firstSet(b)
				if i >= n {
					return
				}
				if !yield(i) {
					return
				}
				b &^= mask(i)
			}
		}
	}
}

// ForEach calls fn for each set bit in ascending order until fn returns false.
func (v *BitVector) ForEach(fn func(i uint64) bool) {
	for i := range v.Ones() {
		if !fn(i) {
			return
		}
	}
}
