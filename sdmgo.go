package sdmgo

import (
	"context"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/sdmgo/engine"
)

// SDM is a thread-safe Sparse Distributed Memory.
//
// It wraps an engine.Engine behind a reader-writer lock: Write,
// BatchWrite, and EraseMemory are mutually exclusive with everything
// else, while Read, BatchRead, and the accessors proceed concurrently.
// Each operation is atomic end-to-end with respect to the underlying
// matrices.
type SDM struct {
	mu      sync.RWMutex
	engine  *engine.Engine
	logger  *Logger
	metrics MetricsCollector
	usage   *roaring.Bitmap // nil when usage tracking is disabled
}

// New creates a Sparse Distributed Memory.
//
// addressDim (N) is the length of address vectors, memoryDim (U) the
// length of memory vectors, numLocations (M) the number of hard
// locations, and hammingThreshold (H) the inclusive activation radius.
// All four must be positive or an ErrInvalidParameter is returned.
func New(addressDim, memoryDim, numLocations, hammingThreshold int, optFns ...Option) (*SDM, error) {
	opts := defaultOptions()

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}

	e, err := engine.New(addressDim, memoryDim, numLocations, hammingThreshold, engine.WithSeed(opts.seed))
	if err != nil {
		return nil, translateError(err)
	}

	s := &SDM{
		engine:  e,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
	if opts.trackUsage {
		s.usage = roaring.New()
	}

	return s, nil
}

// Write stores memory at address, updating every hard location within
// the activation radius. The write counter advances even when no
// location is activated. Validation errors leave the memory unchanged.
func (s *SDM) Write(ctx context.Context, address, memory []byte) error {
	start := time.Now()

	s.mu.Lock()
	err := translateError(s.writeLocked(address, memory))
	memories := s.engine.MemoryCount()
	s.mu.Unlock()

	s.metrics.RecordWrite(time.Since(start), err)
	s.logger.LogWrite(ctx, memories, err)

	return err
}

// writeLocked applies a single write; the caller holds the write lock.
func (s *SDM) writeLocked(address, memory []byte) error {
	if s.usage == nil {
		return s.engine.Write(address, memory)
	}

	// Track touched locations; the extra scan only runs when usage
	// tracking is enabled.
	activated, err := s.engine.Activated(address)
	if err != nil {
		return err
	}
	if err := s.engine.Write(address, memory); err != nil {
		return err
	}
	for _, i := range activated {
		s.usage.Add(uint32(i)) //nolint:gosec // location indices fit uint32
	}

	return nil
}

// Read recalls the memory vector stored at address. If no hard location
// is activated, the result is the all-zero vector. Read never mutates
// state and may run concurrently with other reads.
func (s *SDM) Read(ctx context.Context, address []byte) ([]byte, error) {
	start := time.Now()

	s.mu.RLock()
	memory, err := s.engine.Read(address)
	s.mu.RUnlock()

	err = translateError(err)
	s.metrics.RecordRead(time.Since(start), err)
	s.logger.LogRead(ctx, err)

	return memory, err
}

// EraseMemory resets all counters and the write counter to zero while
// preserving the hard-location geometry. Usage statistics, when
// tracked, are reset as well. Irreversible; always succeeds.
func (s *SDM) EraseMemory(ctx context.Context) {
	start := time.Now()

	s.mu.Lock()
	erased := s.engine.MemoryCount()
	s.engine.EraseMemory()
	if s.usage != nil {
		s.usage.Clear()
	}
	s.mu.Unlock()

	s.metrics.RecordErase(time.Since(start))
	s.logger.LogErase(ctx, erased)
}

// Activated returns the indices of all hard locations within the
// activation radius of address. Intended for diagnostics and tests.
func (s *SDM) Activated(address []byte) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activated, err := s.engine.Activated(address)
	return activated, translateError(err)
}

// Location returns a copy of hard-location row i as a 0/1 byte vector.
func (s *SDM) Location(i int) ([]byte, error) {
	// The address matrix is immutable; no lock needed.
	return s.engine.Location(i)
}

// AddressDimension returns the length of address vectors (N).
func (s *SDM) AddressDimension() int { return s.engine.AddressDimension() }

// MemoryDimension returns the length of memory vectors (U).
func (s *SDM) MemoryDimension() int { return s.engine.MemoryDimension() }

// NumLocations returns the number of hard locations (M).
func (s *SDM) NumLocations() int { return s.engine.NumLocations() }

// HammingThreshold returns the inclusive activation radius (H).
func (s *SDM) HammingThreshold() int { return s.engine.HammingThreshold() }

// MemoryCount returns the number of completed writes (T) since
// construction or the last EraseMemory.
func (s *SDM) MemoryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.MemoryCount()
}

func (s *SDM) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.String()
}
