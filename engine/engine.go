package engine

import (
	"fmt"

	"github.com/hupe1980/sdmgo/bitvec"
)

// Options contains configuration options for the engine.
type Options struct {
	// Seed for reproducible generation of hard locations.
	Seed int64
}

// DefaultOptions contains the default configuration options for the engine.
var DefaultOptions = Options{
	Seed: DefaultSeed,
}

// Engine is a Sparse Distributed Memory over a fixed set of randomly
// placed hard locations.
//
// The address matrix is generated once at construction and never
// changes; the counter matrix is mutated in place by Write and bulk
// reset by EraseMemory. Both are flat row-major buffers.
type Engine struct {
	addressDim       int // N
	memoryDim        int // U
	numLocations     int // M
	hammingThreshold int // H

	rowWords  int      // packed words per address row
	addresses []uint64 // numLocations * rowWords, immutable
	counters  []int32  // numLocations * memoryDim

	writeCount int // T
}

// New creates an engine with the given dimensions.
//
// addressDim (N) is the length of address vectors, memoryDim (U) the
// length of memory vectors, numLocations (M) the number of hard
// locations, and hammingThreshold (H) the inclusive activation radius.
// All four must be positive.
func New(addressDim, memoryDim, numLocations, hammingThreshold int, optFns ...func(o *Options)) (*Engine, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	for _, p := range []struct {
		name  string
		value int
	}{
		{"addressDim", addressDim},
		{"memoryDim", memoryDim},
		{"numLocations", numLocations},
		{"hammingThreshold", hammingThreshold},
	} {
		if p.value <= 0 {
			return nil, &ErrInvalidParameter{Name: p.name, Value: p.value}
		}
	}

	return &Engine{
		addressDim:       addressDim,
		memoryDim:        memoryDim,
		numLocations:     numLocations,
		hammingThreshold: hammingThreshold,
		rowWords:         bitvec.Words(addressDim),
		addresses:        generateAddresses(numLocations, addressDim, opts.Seed),
		counters:         make([]int32, numLocations*memoryDim),
	}, nil
}

// WithSeed configures the seed for hard-location generation.
func WithSeed(seed int64) func(o *Options) {
	return func(o *Options) {
		o.Seed = seed
	}
}

// ValidateAddress checks that address has length N and contains only
// 0s and 1s.
func (e *Engine) ValidateAddress(address []byte) error {
	if len(address) != e.addressDim {
		return &ErrDimensionMismatch{Vector: VectorAddress, Expected: e.addressDim, Actual: len(address)}
	}
	if i := bitvec.FirstNonBinary(address); i >= 0 {
		return &ErrNonBinaryValue{Vector: VectorAddress, Index: i, Value: address[i]}
	}
	return nil
}

// ValidateWrite checks both vectors of a write without applying it.
func (e *Engine) ValidateWrite(address, memory []byte) error {
	if err := e.ValidateAddress(address); err != nil {
		return err
	}
	if len(memory) != e.memoryDim {
		return &ErrDimensionMismatch{Vector: VectorMemory, Expected: e.memoryDim, Actual: len(memory)}
	}
	if i := bitvec.FirstNonBinary(memory); i >= 0 {
		return &ErrNonBinaryValue{Vector: VectorMemory, Index: i, Value: memory[i]}
	}
	return nil
}

// Write distributes memory into every hard location within the
// activation radius of address.
//
// For each activated location the counter of dimension j moves by +1
// when memory[j] is 1 and by -1 when it is 0. Counters are unbounded;
// conflicting writes partially cancel. The write count advances even
// when no location is activated. Validation happens before any counter
// is touched, so a failed Write leaves the engine unchanged.
func (e *Engine) Write(address, memory []byte) error {
	if err := e.ValidateWrite(address, memory); err != nil {
		return err
	}

	deltas := make([]int32, e.memoryDim)
	for j, b := range memory {
		if b == 1 {
			deltas[j] = 1
		} else {
			deltas[j] = -1
		}
	}

	query := bitvec.Pack(address)
	for i := 0; i < e.numLocations; i++ {
		row := e.addresses[i*e.rowWords : (i+1)*e.rowWords]
		if bitvec.Hamming(query, row) > e.hammingThreshold {
			continue
		}
		counters := e.counters[i*e.memoryDim : (i+1)*e.memoryDim]
		for j, d := range deltas {
			counters[j] += d
		}
	}

	e.writeCount++

	return nil
}

// Read recalls the memory vector stored at address.
//
// Counters of all activated locations are summed per dimension and
// thresholded: a strictly positive sum reads as 1, anything else
// (including an exact zero-sum tie) as 0. When no location is activated
// the result is the all-zero vector. Read never mutates engine state
// and is safe for concurrent readers.
func (e *Engine) Read(address []byte) ([]byte, error) {
	if err := e.ValidateAddress(address); err != nil {
		return nil, err
	}

	sums := make([]int64, e.memoryDim)

	query := bitvec.Pack(address)
	for i := 0; i < e.numLocations; i++ {
		row := e.addresses[i*e.rowWords : (i+1)*e.rowWords]
		if bitvec.Hamming(query, row) > e.hammingThreshold {
			continue
		}
		counters := e.counters[i*e.memoryDim : (i+1)*e.memoryDim]
		for j, c := range counters {
			sums[j] += int64(c)
		}
	}

	memory := make([]byte, e.memoryDim)
	for j, s := range sums {
		if s > 0 {
			memory[j] = 1
		}
	}

	return memory, nil
}

// Activated returns the indices of all hard locations within the
// activation radius of address. The set is recomputed on every call and
// never cached. Intended for diagnostics and tests.
func (e *Engine) Activated(address []byte) ([]int, error) {
	if err := e.ValidateAddress(address); err != nil {
		return nil, err
	}

	var activated []int

	query := bitvec.Pack(address)
	for i := 0; i < e.numLocations; i++ {
		row := e.addresses[i*e.rowWords : (i+1)*e.rowWords]
		if bitvec.Hamming(query, row) <= e.hammingThreshold {
			activated = append(activated, i)
		}
	}

	return activated, nil
}

// EraseMemory resets every counter to zero and the write count to zero.
// The address matrix, and therefore all future activation behavior, is
// preserved. Irreversible; always succeeds.
func (e *Engine) EraseMemory() {
	clear(e.counters)
	e.writeCount = 0
}

// Location returns a copy of hard-location row i as a 0/1 byte vector.
func (e *Engine) Location(i int) ([]byte, error) {
	if i < 0 || i >= e.numLocations {
		return nil, fmt.Errorf("%w: %d", ErrLocationOutOfRange, i)
	}
	row := e.addresses[i*e.rowWords : (i+1)*e.rowWords]
	return bitvec.Unpack(row, e.addressDim), nil
}

// AddressDimension returns the length of address vectors (N).
func (e *Engine) AddressDimension() int { return e.addressDim }

// MemoryDimension returns the length of memory vectors (U).
func (e *Engine) MemoryDimension() int { return e.memoryDim }

// NumLocations returns the number of hard locations (M).
func (e *Engine) NumLocations() int { return e.numLocations }

// HammingThreshold returns the inclusive activation radius (H).
func (e *Engine) HammingThreshold() int { return e.hammingThreshold }

// MemoryCount returns the number of completed writes (T) since
// construction or the last EraseMemory.
func (e *Engine) MemoryCount() int { return e.writeCount }

func (e *Engine) String() string {
	return fmt.Sprintf("Engine(addressDim=%d, memoryDim=%d, locations=%d, threshold=%d, memories=%d)",
		e.addressDim, e.memoryDim, e.numLocations, e.hammingThreshold, e.writeCount)
}
