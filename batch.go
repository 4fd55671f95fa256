package sdmgo

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// WriteEntry is a single address/memory pair for BatchWrite.
type WriteEntry struct {
	Address []byte
	Memory  []byte
}

// BatchWrite applies all entries under a single exclusive lock.
//
// Every entry is validated before any counter is touched, so a batch
// with an invalid entry is rejected as a whole: either all entries are
// applied or none. The returned error wraps ErrInvalidBatchEntry and
// names the offending entry index.
func (s *SDM) BatchWrite(ctx context.Context, entries []WriteEntry) error {
	start := time.Now()

	s.mu.Lock()
	err := s.batchWriteLocked(entries)
	s.mu.Unlock()

	s.metrics.RecordBatchWrite(len(entries), time.Since(start), err)
	s.logger.LogBatchWrite(ctx, len(entries), err)

	return err
}

func (s *SDM) batchWriteLocked(entries []WriteEntry) error {
	for i, entry := range entries {
		if err := s.engine.ValidateWrite(entry.Address, entry.Memory); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidBatchEntry, i, translateError(err))
		}
	}

	for _, entry := range entries {
		// Validated above; a failure here would be a bug.
		if err := s.writeLocked(entry.Address, entry.Memory); err != nil {
			return translateError(err)
		}
	}

	return nil
}

// BatchRead recalls the memory vectors for all addresses, fanning the
// pure per-address reads out across goroutines under one shared lock
// acquisition. Results are returned in input order. The first failing
// address aborts the batch.
func (s *SDM) BatchRead(ctx context.Context, addresses [][]byte) ([][]byte, error) {
	start := time.Now()

	s.mu.RLock()
	results, err := s.batchReadLocked(ctx, addresses)
	s.mu.RUnlock()

	s.metrics.RecordBatchRead(len(addresses), time.Since(start), err)
	s.logger.LogBatchRead(ctx, len(addresses), err)

	return results, err
}

func (s *SDM) batchReadLocked(ctx context.Context, addresses [][]byte) ([][]byte, error) {
	results := make([][]byte, len(addresses))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, address := range addresses {
		i, address := i, address
		g.Go(func() error {
			memory, err := s.engine.Read(address)
			if err != nil {
				return fmt.Errorf("address %d: %w", i, translateError(err))
			}
			results[i] = memory
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
