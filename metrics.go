package locgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLibraryLoad is called once per probed major version at
	// construction. err is nil when the version was registered.
	RecordLibraryLoad(major int, err error)

	// RecordSearch is called after each selection. found reports
	// whether any provider satisfied the policy.
	RecordSearch(found bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLibraryLoad(int, error)     {}
func (NoopMetricsCollector) RecordSearch(bool, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadAttempts     atomic.Int64
	LoadFailures     atomic.Int64
	SearchCount      atomic.Int64
	SearchMisses     atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordLibraryLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLibraryLoad(major int, err error) {
	b.LoadAttempts.Add(1)
	if err != nil {
		b.LoadFailures.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(found bool, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.SearchMisses.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadAttempts:   b.LoadAttempts.Load(),
		LoadFailures:   b.LoadFailures.Load(),
		SearchCount:    b.SearchCount.Load(),
		SearchMisses:   b.SearchMisses.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadAttempts   int64
	LoadFailures   int64
	SearchCount    int64
	SearchMisses   int64
	SearchAvgNanos int64
}
