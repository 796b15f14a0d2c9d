package partition

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	unchecked        bool
}

// Option configures a Partition.
type Option func(*options)

// WithUnchecked disables input validation in New and Refine.
//
// Out-of-range items are then caught only by Go's bounds checks (a panic),
// and a universe containing duplicates yields an inconsistent Partition.
// Use it when the caller already guarantees valid input and the O(|X|)
// pre-scan shows up in profiles.
func WithUnchecked() Option {
	return func(o *options) {
		o.unchecked = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &partition.BasicMetricsCollector{}
//	p, _ := partition.NewRange(1024, partition.WithMetricsCollector(metrics))
//	// ... refine ...
//	stats := metrics.GetStats()
//	fmt.Printf("Refines: %d, Splits: %d\n", stats.RefineCount, stats.SplitCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := partition.NewJSONLogger(slog.LevelDebug)
//	p, _ := partition.NewRange(1024, partition.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
