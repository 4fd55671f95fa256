package engine

import (
	"math/rand"

	"github.com/hupe1980/sdmgo/bitvec"
)

// DefaultSeed is the seed used when callers do not supply one.
const DefaultSeed int64 = 42

// generateAddresses produces the packed M x N hard-location address
// matrix from a seeded generator, row-major with rowWords words per row.
//
// Each bit is drawn independently and uniformly from {0,1} by filling
// whole words from rand.New(rand.NewSource(seed)).Uint64(). The same
// seed and dimensions always yield a bit-identical matrix; trailing
// bits beyond addressDim in each row's last word are masked to zero so
// packed Hamming distances stay exact.
func generateAddresses(numLocations, addressDim int, seed int64) []uint64 {
	rowWords := bitvec.Words(addressDim)
	rows := make([]uint64, numLocations*rowWords)

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducibility, not crypto

	for i := range rows {
		rows[i] = rng.Uint64()
	}

	if tail := addressDim % 64; tail != 0 {
		mask := uint64(1)<<tail - 1
		for i := rowWords - 1; i < len(rows); i += rowWords {
			rows[i] &= mask
		}
	}

	return rows
}
