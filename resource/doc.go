// Package resource provides a process-wide memory budget for bit vector storage.
//
// A Controller tracks bytes handed out by allocators and, when configured with
// a hard limit, refuses reservations that would exceed it. The alloc.Limited
// allocator charges every buffer against a Controller, which is how a group of
// bit vectors is held to a shared ceiling:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64 << 20})
//	a := alloc.NewLimited(alloc.Heap{}, rc)
//	v := bitvec.New(bitvec.WithAllocator(a))
//
// A nil *Controller is valid and behaves as an unlimited, non-tracking budget.
package resource
