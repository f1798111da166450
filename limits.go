package bitvec

import "math/bits"

// is64Bit is 1 on 64-bit platforms and 0 on 32-bit platforms.
const is64Bit = bits.UintSize / 64

const (
	// MaxCapacity is the largest backing buffer, in bytes, a vector may hold:
	// 2^34 on 64-bit platforms, 2^26 on 32-bit platforms.
	MaxCapacity = 1 << (26 + 8*is64Bit)

	// MaxSize is the largest number of bits a vector may hold.
	MaxSize uint64 = MaxCapacity * 8

	// MidCapacity is the capacity, in bytes, above which growth slows from
	// doubling to 1.5x.
	MidCapacity = 1 << (24 + 8*is64Bit)

	// SmallCapacity is the capacity, in bytes, below which growth adds
	// GrowthStep bytes instead of doubling.
	SmallCapacity = 16

	// GrowthStep is the fixed growth increment, in bytes, for small vectors.
	GrowthStep = 8
)

// bytesFor returns ceil(n/8). n never exceeds MaxSize, so the result fits an int.
func bytesFor(n uint64) int {
	return int(n>>3 + (n&7+7)>>3)
}

// nextCapacity returns the capacity to grow to when a vector of capacity cur
// needs at least need bytes, never exceeding ceiling.
func nextCapacity(cur, need, ceiling int) int {
	var next int
	switch {
	case cur == 0:
		next = GrowthStep
	case cur < SmallCapacity:
		next = cur + GrowthStep
	case cur < MidCapacity:
		next = cur * 2
	default:
		next = cur + cur/2
	}
	next = max(next, need)
	return min(next, ceiling)
}
