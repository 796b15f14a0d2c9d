package partition

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInit is called after each New/NewRange.
	// n is the universe size, err is nil if successful.
	RecordInit(n int, duration time.Duration, err error)

	// RecordRefine is called after each Refine.
	// items is |X|, splits is the number of subsets split by the call.
	RecordRefine(items, splits int, duration time.Duration, err error)

	// RecordClose is called once when a Partition is closed.
	RecordClose()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInit(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordRefine(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordClose()                                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InitCount        atomic.Int64
	InitErrors       atomic.Int64
	RefineCount      atomic.Int64
	RefineErrors     atomic.Int64
	RefineItems      atomic.Int64
	RefineTotalNanos atomic.Int64
	SplitCount       atomic.Int64
	CloseCount       atomic.Int64
}

// RecordInit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInit(n int, duration time.Duration, err error) {
	b.InitCount.Add(1)
	if err != nil {
		b.InitErrors.Add(1)
	}
}

// RecordRefine implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRefine(items, splits int, duration time.Duration, err error) {
	b.RefineCount.Add(1)
	b.RefineTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RefineErrors.Add(1)
		return
	}
	b.RefineItems.Add(int64(items))
	b.SplitCount.Add(int64(splits))
}

// RecordClose implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClose() {
	b.CloseCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InitCount:      b.InitCount.Load(),
		InitErrors:     b.InitErrors.Load(),
		RefineCount:    b.RefineCount.Load(),
		RefineErrors:   b.RefineErrors.Load(),
		RefineItems:    b.RefineItems.Load(),
		RefineAvgNanos: b.getAvgRefineNanos(),
		SplitCount:     b.SplitCount.Load(),
		CloseCount:     b.CloseCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRefineNanos() int64 {
	count := b.RefineCount.Load()
	if count == 0 {
		return 0
	}
	return b.RefineTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InitCount      int64
	InitErrors     int64
	RefineCount    int64
	RefineErrors   int64
	RefineItems    int64
	RefineAvgNanos int64
	SplitCount     int64
	CloseCount     int64
}
