// Package bitvec provides a growable, densely packed vector of bits backed by
// a pluggable allocator.
//
// # Overview
//
// A BitVector stores one logical bit per position in a contiguous byte buffer
// obtained from an alloc.Allocator. Bits are packed most-significant-bit
// first: bit i lives in byte i/8 under mask 0x80>>(i%8). The buffer may carry
// spare capacity beyond the bytes covering the logical bits; that region is
// never observed through bit-level reads.
//
// # Features
//
//   - Amortized O(1) PushBack with bounded growth (fixed step, doubling, then 1.5x)
//   - Checked (At, Set, Reset, Flip) and unchecked (Get) bit access
//   - In-place And/Or/Xor, Not, and the non-mutating And/Or/Xor functions
//   - SWAR population count, short-circuit Any/None
//   - Reserve, Resize, ShrinkToFit with strong error safety: a failed
//     reallocation leaves the vector exactly as it was
//   - Injectable allocators: heap, aligned, off-heap mmap, arena, budgeted
//
// # Example
//
//	v, err := bitvec.NewSize(12, bitvec.WithPattern(0xFF))
//	if err != nil { ... }
//	defer v.Close()
//
//	_ = v.PushBack(true)
//	fmt.Println(v.String(), v.Count()) // 1111111100001 9
//
// # Ownership
//
// A vector exclusively owns its buffer. Clone and CopyFrom allocate an
// independent buffer; Take moves the buffer to a new vector and leaves the
// source empty. The buffer is released exactly once: by Clear/Close, by a
// Resize to zero, or by a runtime cleanup once the vector is unreachable.
// Slices returned by Bytes share that lifetime, so hold on to the vector
// (runtime.KeepAlive) for as long as such a slice is in use.
//
// # Thread Safety
//
// A BitVector performs no locking. Concurrent mutation of one vector must be
// serialized by the caller.
package bitvec
