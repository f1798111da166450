// Package alloc provides the memory provider consumed by bit vectors.
//
// # Contract
//
// An Allocator hands out byte buffers measured in elements (one element is one
// byte for bit storage) and takes them back:
//
//   - Allocate(n) returns a buffer with len(buf) == n, or an error wrapping
//     ErrOutOfMemory. Allocate(0) returns (nil, nil); bit vectors never ask for
//     zero elements.
//   - Deallocate(buf, n) releases a buffer previously returned by Allocate with
//     the same n. Deallocate(nil, 0) is a no-op. A buffer must not be released
//     twice.
//
// Buffer contents returned by Allocate are unspecified. Callers initialize
// every byte they read.
//
// # Implementations
//
//   - Heap: Go heap slices, released by the garbage collector
//   - Aligned: cache-line aligned heap slabs
//   - Mmap: anonymous off-heap mappings, unmapped on Deallocate
//   - Limited: charges another allocator's buffers to a resource.Controller budget
//   - Arena: chunked bump allocation, reclaimed all at once by Reset or Free
//   - Tracking: counts live buffers and reports double or foreign releases
//
// Heap, Aligned and Limited are safe for concurrent use. Mmap, Arena and
// Tracking guard their bookkeeping with a mutex, so one instance may be shared
// by vectors living on different goroutines.
package alloc
