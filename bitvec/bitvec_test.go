package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	assert.Equal(t, 0, Words(0))
	assert.Equal(t, 1, Words(1))
	assert.Equal(t, 1, Words(64))
	assert.Equal(t, 2, Words(65))
	assert.Equal(t, 2, Words(128))
	assert.Equal(t, 3, Words(129))
}

func TestFirstNonBinary(t *testing.T) {
	assert.Equal(t, -1, FirstNonBinary(nil))
	assert.Equal(t, -1, FirstNonBinary([]byte{0, 1, 1, 0}))
	assert.Equal(t, 2, FirstNonBinary([]byte{0, 1, 2, 0}))
	assert.Equal(t, 0, FirstNonBinary([]byte{255}))
}

func TestPackUnpack(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		v := []byte{1, 0, 1, 1, 0, 0, 0, 1, 1}
		words := Pack(v)
		require.Len(t, words, 1)
		assert.Equal(t, v, Unpack(words, len(v)))
	})

	t.Run("WordBoundary", func(t *testing.T) {
		v := make([]byte, 65)
		v[0] = 1
		v[63] = 1
		v[64] = 1
		words := Pack(v)
		require.Len(t, words, 2)
		assert.Equal(t, uint64(1)|uint64(1)<<63, words[0])
		assert.Equal(t, uint64(1), words[1])
		assert.Equal(t, v, Unpack(words, len(v)))
	})

	t.Run("PackIntoClearsTrailingBits", func(t *testing.T) {
		dst := []uint64{^uint64(0), ^uint64(0)}
		PackInto(dst, []byte{1, 1, 1})
		assert.Equal(t, uint64(0b111), dst[0])
		// The second word is beyond Words(3) and untouched.
		assert.Equal(t, ^uint64(0), dst[1])
	})
}

func TestHamming(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want int
	}{
		{name: "Identical", a: []byte{1, 0, 1, 0}, b: []byte{1, 0, 1, 0}, want: 0},
		{name: "AllDiffer", a: []byte{1, 1, 1, 1}, b: []byte{0, 0, 0, 0}, want: 4},
		{name: "Partial", a: []byte{1, 0, 1, 0, 1}, b: []byte{1, 1, 1, 0, 0}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hamming(Pack(tt.a), Pack(tt.b)))
		})
	}

	t.Run("MultiWord", func(t *testing.T) {
		a := make([]byte, 130)
		b := make([]byte, 130)
		b[0] = 1
		b[64] = 1
		b[129] = 1
		assert.Equal(t, 3, Hamming(Pack(a), Pack(b)))
	})
}
