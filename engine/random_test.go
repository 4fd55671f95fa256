package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sdmgo/bitvec"
)

func TestGenerateAddresses(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		a := generateAddresses(100, 130, 42)
		b := generateAddresses(100, 130, 42)
		assert.Equal(t, a, b)
	})

	t.Run("SeedSensitive", func(t *testing.T) {
		a := generateAddresses(10, 128, 1)
		b := generateAddresses(10, 128, 2)
		assert.NotEqual(t, a, b)
	})

	t.Run("Shape", func(t *testing.T) {
		rows := generateAddresses(25, 100, 42)
		assert.Len(t, rows, 25*bitvec.Words(100))
	})

	t.Run("TrailingBitsMasked", func(t *testing.T) {
		const addressDim = 100 // second word holds 36 valid bits
		rowWords := bitvec.Words(addressDim)
		rows := generateAddresses(50, addressDim, 42)

		mask := uint64(1)<<(addressDim%64) - 1
		for i := rowWords - 1; i < len(rows); i += rowWords {
			require.Zero(t, rows[i]&^mask)
		}
	})

	t.Run("RoughlyBalanced", func(t *testing.T) {
		// Bernoulli(0.5) bits: the global ones-density over 64k bits
		// stays well inside [0.45, 0.55] for any reasonable generator.
		const numLocations, addressDim = 1024, 64
		rows := generateAddresses(numLocations, addressDim, 42)

		ones := 0
		for _, w := range rows {
			ones += bitvec.Hamming([]uint64{w}, []uint64{0})
		}

		density := float64(ones) / float64(numLocations*addressDim)
		assert.InDelta(t, 0.5, density, 0.05)
	})
}
