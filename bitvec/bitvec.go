package bitvec

import "math/bits"

// Words returns the number of uint64 words needed to hold n bits.
func Words(n int) int {
	return (n + 63) / 64
}

// FirstNonBinary returns the index of the first element of v that is
// neither 0 nor 1, or -1 if every element is binary.
func FirstNonBinary(v []byte) int {
	for i, b := range v {
		if b > 1 {
			return i
		}
	}
	return -1
}

// PackInto packs v into dst using little-endian bit order.
// dst must have at least Words(len(v)) words; it is zeroed first, so
// trailing bits beyond len(v) are guaranteed clear.
// Assumes v contains only 0s and 1s (caller's responsibility).
func PackInto(dst []uint64, v []byte) {
	n := Words(len(v))
	for i := range dst[:n] {
		dst[i] = 0
	}
	for i, b := range v {
		if b != 0 {
			dst[i/64] |= 1 << (i % 64)
		}
	}
}

// Pack packs v into a freshly allocated word slice.
// Assumes v contains only 0s and 1s (caller's responsibility).
func Pack(v []byte) []uint64 {
	dst := make([]uint64, Words(len(v)))
	PackInto(dst, v)
	return dst
}

// Unpack expands n bits from words into a 0/1 byte slice.
func Unpack(words []uint64, n int) []byte {
	v := make([]byte, n)
	for i := range v {
		if words[i/64]&(1<<(i%64)) != 0 {
			v[i] = 1
		}
	}
	return v
}

// Hamming returns the Hamming distance between two packed vectors.
// Assumes slices are the same length and carry clear trailing bits
// (caller's responsibility). Uses POPCNT via math/bits.
func Hamming(a, b []uint64) int {
	var dist int
	for i := range a {
		dist += bits.OnesCount64(a[i] ^ b[i])
	}
	return dist
}
