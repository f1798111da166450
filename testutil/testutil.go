package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// RandomBits generates n uniformly random bits.
func (r *RNG) RandomBits(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// SparseBits generates n bits where each bit is set with probability density.
// density=0.01 gives mostly-zero vectors, density=0.99 mostly-one vectors.
func (r *RNG) SparseBits(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// RunBits generates n bits as alternating runs of equal values with lengths
// in [1, maxRun]. Long runs stress byte-aligned fast paths and run-length
// containers; short runs stress the bit tails.
func (r *RNG) RunBits(n, maxRun int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	value := r.rand.Intn(2) == 1
	for i := 0; i < n; {
		run := 1 + r.rand.Intn(maxRun)
		for j := 0; j < run && i < n; j++ {
			out[i] = value
			i++
		}
		value = !value
	}
	return out
}

// BitString renders bits as '0' and '1' characters in index order.
func BitString(bits []bool) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// CountOnes returns the number of true values in bits.
func CountOnes(bits []bool) uint64 {
	var n uint64
	for _, b := range bits {
		if b {
			n++
		}
	}
	return n
}
