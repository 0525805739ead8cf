package raggo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordIndex is called after each index evaluation.
	// terms is the number of index terms in the expression, duration is the
	// total time taken, err is nil if successful.
	RecordIndex(terms int, duration time.Duration, err error)

	// RecordValidate is called after each explicit union validation.
	RecordValidate(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIndex(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordValidate(time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IndexCount         atomic.Int64
	IndexErrors        atomic.Int64
	IndexTotalNanos    atomic.Int64
	ValidateCount      atomic.Int64
	ValidateErrors     atomic.Int64
	ValidateTotalNanos atomic.Int64
}

// RecordIndex implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndex(terms int, duration time.Duration, err error) {
	b.IndexCount.Add(1)
	b.IndexTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IndexErrors.Add(1)
	}
}

// RecordValidate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordValidate(duration time.Duration, err error) {
	b.ValidateCount.Add(1)
	b.ValidateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ValidateErrors.Add(1)
	}
}
