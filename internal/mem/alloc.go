package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of slabs returned by AllocAligned (one cache line).
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Enough slack to shift the start pointer up to Alignment-1 bytes
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	offset := AlignmentOffset(uintptr(ptr))

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// AlignmentOffset returns the number of bytes to add to addr to reach the next
// Alignment boundary.
func AlignmentOffset(addr uintptr) uintptr {
	return (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)
}

// IsAligned reports whether buf starts on an Alignment boundary.
func IsAligned(buf []byte) bool {
	if len(buf) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&buf[0]))%Alignment == 0 //nolint:gosec // unsafe is required for memory alignment
}
