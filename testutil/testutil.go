package testutil

import (
	"math/rand"
	"slices"
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
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // tests only
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

// FillBits fills dst with independent uniform 0/1 values.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillBits(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = byte(r.rand.Intn(2))
	}
}

// BitVector returns a fresh random 0/1 vector of length n.
func (r *RNG) BitVector(n int) []byte {
	v := make([]byte, n)
	r.FillBits(v)
	return v
}

// BitVectors generates num random 0/1 vectors of length dimensions.
// Uses a single backing array for efficiency.
func (r *RNG) BitVectors(num, dimensions int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]byte, num*dimensions)
	vectors := make([][]byte, num)

	for i := 0; i < num; i++ {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = byte(r.rand.Intn(2))
		}
		vectors[i] = vec
	}

	return vectors
}

// Perturb returns a copy of v with flips distinct bits inverted.
// The result is at exactly Hamming distance flips from v.
func (r *RNG) Perturb(v []byte, flips int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(v)
	for _, i := range r.rand.Perm(len(v))[:flips] {
		out[i] ^= 1
	}
	return out
}
