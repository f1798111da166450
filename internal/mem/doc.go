// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides cache-line aligned byte slabs so word-wise scans over bit storage
// never straddle a cache line at the start of a buffer.
package mem
