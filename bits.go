package bitvec

import (
	"encoding/binary"
	"math/bits"
)

// msb is the mask of bit 0 within a byte.
const msb = 0x80

func mask(i uint64) byte {
	return msb >> (i & 7)
}

func test(data []byte, i uint64) bool {
	return data[i>>3]&mask(i) != 0
}

func assign(data []byte, i uint64, value bool) {
	if value {
		data[i>>3] |= mask(i)
	} else {
		data[i>>3] &^= mask(i)
	}
}

// tailMask returns the mask of the valid bits in the final byte of an n-bit
// span, or 0 if n is byte aligned.
func tailMask(n uint64) byte {
	return ^byte(0xFF >> (n & 7))
}

// fillRange sets bits [from, to) to value. Whole bytes are written at once;
// bytes past the span are left unspecified.
func fillRange(data []byte, from, to uint64, value bool) {
	for ; from < to && from&7 != 0; from++ {
		assign(data, from, value)
	}
	if from >= to {
		return
	}

	var b byte
	if value {
		b = 0xFF
	}
	end := bytesFor(to)
	for i := int(from >> 3); i < end; i++ {
		data[i] = b
	}
}

// popcount8 counts the set bits of one byte by summing adjacent bit fields
// in parallel: pairs, then nibbles, then the two nibbles.
func popcount8(b byte) uint64 {
	b = (b>>1)&0x55 + b&0x55
	b = (b>>2)&0x33 + b&0x33
	b = (b>>4)&0x0F + b&0x0F
	return uint64(b)
}

// popcount64 is the word-wide form of popcount8.
func popcount64(x uint64) uint64 {
	const (
		m1  = 0x5555555555555555
		m2  = 0x3333333333333333
		m4  = 0x0F0F0F0F0F0F0F0F
		h01 = 0x0101010101010101
	)
	x -= (x >> 1) & m1
	x = x&m2 + (x>>2)&m2
	x = (x + x>>4) & m4
	return (x * h01) >> 56
}

// countBytes returns the number of set bits in data.
func countBytes(data []byte) uint64 {
	var n uint64
	for len(data) >= 8 {
		n += popcount64(binary.LittleEndian.Uint64(data))
		data = data[8:]
	}
	for _, b := range data {
		n += popcount8(b)
	}
	return n
}

// firstSet returns the position of the most significant set bit of b, which
// is the lowest bit index in MSB-first order.
func firstSet(b byte) uint64 {
	return uint64(bits.LeadingZeros8(b))
}

// The kernels below combine two equal-length byte spans a word at a time.
// Bitwise operations are byte-order independent, so any uint64 view works.

func andBytes(dst, src []byte) {
	le := binary.LittleEndian
	for len(dst) >= 8 {
		le.PutUint64(dst, le.Uint64(dst)&le.Uint64(src))
		dst, src = dst[8:], src[8:]
	}
	for i := range dst {
		dst[i] &= src[i]
	}
}

func orBytes(dst, src []byte) {
	le := binary.LittleEndian
	for len(dst) >= 8 {
		le.PutUint64(dst, le.Uint64(dst)|le.Uint64(src))
		dst, src = dst[8:], src[8:]
	}
	for i := range dst {
		dst[i] |= src[i]
	}
}

func xorBytes(dst, src []byte) {
	le := binary.LittleEndian
	for len(dst) >= 8 {
		le.PutUint64(dst, le.Uint64(dst)^le.Uint64(src))
		dst, src = dst[8:], src[8:]
	}
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func notBytes(data []byte) {
	le := binary.LittleEndian
	for len(data) >= 8 {
		le.PutUint64(data, ^le.Uint64(data))
		data = data[8:]
	}
	for i := range data {
		data[i] = ^data[i]
	}
}
