package sdmgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    writeCounter  prometheus.Counter
//	    readHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordWrite(duration time.Duration, err error) {
//	    p.writeCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordWrite is called after each write operation.
	// duration is the total time taken, err is nil if successful.
	RecordWrite(duration time.Duration, err error)

	// RecordRead is called after each read operation.
	RecordRead(duration time.Duration, err error)

	// RecordErase is called after each erase operation.
	RecordErase(duration time.Duration)

	// RecordBatchWrite is called after each batch write operation.
	// count is the number of entries attempted.
	RecordBatchWrite(count int, duration time.Duration, err error)

	// RecordBatchRead is called after each batch read operation.
	// count is the number of addresses read.
	RecordBatchRead(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordWrite(time.Duration, error)           {}
func (NoopMetricsCollector) RecordRead(time.Duration, error)            {}
func (NoopMetricsCollector) RecordErase(time.Duration)                  {}
func (NoopMetricsCollector) RecordBatchWrite(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatchRead(int, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	WriteCount      atomic.Int64
	WriteErrors     atomic.Int64
	WriteTotalNanos atomic.Int64
	ReadCount       atomic.Int64
	ReadErrors      atomic.Int64
	ReadTotalNanos  atomic.Int64
	EraseCount      atomic.Int64
	BatchWriteCount atomic.Int64
	BatchWriteItems atomic.Int64
	BatchReadCount  atomic.Int64
	BatchReadItems  atomic.Int64
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.WriteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WriteErrors.Add(1)
	}
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// RecordErase implements MetricsCollector.
func (b *BasicMetricsCollector) RecordErase(duration time.Duration) {
	b.EraseCount.Add(1)
}

// RecordBatchWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchWrite(count int, duration time.Duration, err error) {
	b.BatchWriteCount.Add(1)
	b.BatchWriteItems.Add(int64(count))
	if err != nil {
		b.WriteErrors.Add(1)
	}
}

// RecordBatchRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchRead(count int, duration time.Duration, err error) {
	b.BatchReadCount.Add(1)
	b.BatchReadItems.Add(int64(count))
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		WriteCount:      b.WriteCount.Load(),
		WriteErrors:     b.WriteErrors.Load(),
		WriteAvgNanos:   b.getAvgWriteNanos(),
		ReadCount:       b.ReadCount.Load(),
		ReadErrors:      b.ReadErrors.Load(),
		ReadAvgNanos:    b.getAvgReadNanos(),
		EraseCount:      b.EraseCount.Load(),
		BatchWriteCount: b.BatchWriteCount.Load(),
		BatchWriteItems: b.BatchWriteItems.Load(),
		BatchReadCount:  b.BatchReadCount.Load(),
		BatchReadItems:  b.BatchReadItems.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgWriteNanos() int64 {
	count := b.WriteCount.Load()
	if count == 0 {
		return 0
	}
	return b.WriteTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgReadNanos() int64 {
	count := b.ReadCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	WriteCount      int64
	WriteErrors     int64
	WriteAvgNanos   int64
	ReadCount       int64
	ReadErrors      int64
	ReadAvgNanos    int64
	EraseCount      int64
	BatchWriteCount int64
	BatchWriteItems int64
	BatchReadCount  int64
	BatchReadItems  int64
}
