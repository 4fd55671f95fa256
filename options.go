package sdmgo

import (
	"log/slog"

	"github.com/hupe1980/sdmgo/engine"
)

type options struct {
	seed             int64
	metricsCollector MetricsCollector
	logger           *Logger
	trackUsage       bool
}

// Option configures SDM constructor behavior.
type Option func(*options)

// WithSeed configures the seed used to generate the hard-location
// address matrix. Two memories constructed with identical dimensions
// and the same seed behave bit-identically on every read and write.
//
// Defaults to engine.DefaultSeed (42).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &sdmgo.BasicMetricsCollector{}
//	mem, _ := sdmgo.New(256, 128, 1000, 103, sdmgo.WithMetricsCollector(metrics))
//	// ... use mem ...
//	stats := metrics.GetStats()
//	fmt.Printf("Writes: %d, Avg latency: %dns\n", stats.WriteCount, stats.WriteAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := sdmgo.NewJSONLogger(slog.LevelInfo)
//	mem, _ := sdmgo.New(256, 128, 1000, 103, sdmgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithUsageTracking enables tracking of hard locations that have ever
// been activated by a write, backed by a Roaring Bitmap. Disabled by
// default; when enabled, UsageStats reports location utilization.
//
// Tracking costs one extra activation scan per write.
func WithUsageTracking(enabled bool) Option {
	return func(o *options) {
		o.trackUsage = enabled
	}
}

func defaultOptions() options {
	return options{
		seed:             engine.DefaultSeed,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}
