// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// # Overview
//
// An anonymous mapping is memory obtained directly from the operating system,
// outside the Go heap. Buffers backed by a mapping are invisible to the garbage
// collector, which keeps very large bit vectors from inflating GC pacing.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes() // zero-filled, read-write
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) for hints
//   - Windows: VirtualAlloc/VirtualFree (advice is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure no
// goroutine touches the slice returned by Bytes after Close returns.
package mmap
