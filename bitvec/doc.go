// Package bitvec provides packed binary vector primitives.
//
// Vectors are represented externally as byte slices containing only 0s
// and 1s, and internally as little-endian packed uint64 words so that
// Hamming distance reduces to XOR plus POPCNT (math/bits.OnesCount64).
//
// Used internally for:
//   - Hard-location address rows (packed once at construction)
//   - Query address packing (per call)
package bitvec
