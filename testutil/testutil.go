package testutil

import (
	"math/rand"
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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Perm returns a random permutation of 0..n-1.
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Sample returns k distinct items drawn from 0..n-1 in random order.
// k is clamped to [0, n].
func (r *RNG) Sample(n, k int) []int {
	k = min(max(k, 0), n)

	r.mu.Lock()
	defer r.mu.Unlock()

	// Partial Fisher-Yates over the identity.
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	for i := range k {
		j := i + r.rand.Intn(n-i)
		items[i], items[j] = items[j], items[i]
	}
	return items[:k]
}

// Items returns m items drawn from 0..n-1 with replacement.
func (r *RNG) Items(n, m int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]int, m)
	for i := range items {
		items[i] = r.rand.Intn(n)
	}
	return items
}
