// Package sdmgo provides an embedded Sparse Distributed Memory (SDM)
// for Go, after Kanerva (1992).
//
// An SDM is an associative, content-addressable memory: a fixed set of
// randomly generated hard locations in a high-dimensional binary
// address space acts as a distributed storage substrate. Writing at an
// address updates every location within a Hamming-distance radius of
// it, and reading aggregates the counters of all nearby locations,
// giving graceful degradation, noise tolerance, and generalization
// instead of exact key-value lookup.
//
// Features:
//
//   - Deterministic seeded hard-location generation (same seed, same memory)
//   - Packed bit vectors with POPCNT Hamming distance
//   - Thread-safe wrapper: exclusive writes, concurrent reads
//   - Batch operations with errgroup fan-out for reads
//   - Optional location-usage tracking (Roaring Bitmap)
//   - Structured logging (log/slog) and pluggable metrics collection
//
// # Quick Start
//
//	ctx := context.Background()
//	mem, err := sdmgo.New(256, 128, 1000, 103) // N, U, M, H
//	if err != nil {
//	    panic(err)
//	}
//
//	address := make([]byte, 256) // 0/1 values
//	memory := make([]byte, 128)  // 0/1 values
//
//	if err := mem.Write(ctx, address, memory); err != nil {
//	    panic(err)
//	}
//
//	recalled, err := mem.Read(ctx, address)
//	if err != nil {
//	    panic(err)
//	}
//	_ = recalled
//
// # Options
//
//	mem, err := sdmgo.New(256, 128, 1000, 103,
//	    sdmgo.WithSeed(7),
//	    sdmgo.WithLogLevel(slog.LevelDebug),
//	    sdmgo.WithMetricsCollector(&sdmgo.BasicMetricsCollector{}),
//	    sdmgo.WithUsageTracking(true),
//	)
//
// The core engine lives in the engine package and assumes sequential,
// single-caller use; this package owns the locking required for
// concurrent exposure (writes and erase are exclusive, reads are
// shared).
package sdmgo
