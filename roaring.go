package bitvec

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ToRoaring returns the set bit positions of v as a 64-bit roaring bitmap.
func (v *BitVector) ToRoaring() *roaring64.Bitmap {
	rb := roaring64.New()
	for i := range v.Ones() {
		rb.Add(i)
	}
	rb.RunOptimize()
	return rb
}

// FromRoaring builds an n-bit vector whose set bits are the members of rb.
// It returns an IndexError if rb holds a position >= n.
func FromRoaring(rb *roaring64.Bitmap, n uint64, opts ...Option) (*BitVector, error) {
	if !rb.IsEmpty() {
		if hi := rb.Maximum(); hi >= n {
			return nil, &IndexError{Op: "FromRoaring", Index: hi, Size: n}
		}
	}

	v, err := NewSize(n, opts...)
	if err != nil {
		return nil, err
	}
	clear(v.Bytes())

	it := rb.Iterator()
	for it.HasNext() {
		assign(v.buf.data, it.Next(), true)
	}
	return v, nil
}
