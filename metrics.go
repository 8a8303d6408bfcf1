package succinct

import (
	"sync/atomic"
	"time"
)

// SearchKind identifies a sequence-producing search operation.
type SearchKind uint8

const (
	// SearchPredictive is PredictiveSearch (and Words).
	SearchPredictive SearchKind = iota
	// SearchCommonPrefix is CommonPrefixSearch.
	SearchCommonPrefix
)

func (k SearchKind) String() string {
	switch k {
	case SearchPredictive:
		return "predictive"
	case SearchCommonPrefix:
		return "common_prefix"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations shared by several Tries must be safe for concurrent use.
type MetricsCollector interface {
	// RecordBuild is called after each Builder.Build.
	// nodes is the number of labeled nodes, words the number of distinct words.
	RecordBuild(nodes, words int, duration time.Duration)

	// RecordExactMatch is called after each ExactMatch.
	RecordExactMatch(found bool, duration time.Duration)

	// RecordSearch is called when iteration over a search sequence ends,
	// either exhausted or stopped by the caller. results is the number of
	// words yielded.
	RecordSearch(kind SearchKind, results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, int, time.Duration)         {}
func (NoopMetricsCollector) RecordExactMatch(bool, time.Duration)        {}
func (NoopMetricsCollector) RecordSearch(SearchKind, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount          atomic.Int64
	BuildTotalNanos     atomic.Int64
	LastBuildNodes      atomic.Int64
	LastBuildWords      atomic.Int64
	ExactMatchCount     atomic.Int64
	ExactMatchHits      atomic.Int64
	ExactMatchNanos     atomic.Int64
	PredictiveCount     atomic.Int64
	PredictiveResults   atomic.Int64
	CommonPrefixCount   atomic.Int64
	CommonPrefixResults atomic.Int64
	SearchTotalNanos    atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(nodes, words int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	b.LastBuildNodes.Store(int64(nodes))
	b.LastBuildWords.Store(int64(words))
}

// RecordExactMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExactMatch(found bool, duration time.Duration) {
	b.ExactMatchCount.Add(1)
	b.ExactMatchNanos.Add(duration.Nanoseconds())
	if found {
		b.ExactMatchHits.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(kind SearchKind, results int, duration time.Duration) {
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	switch kind {
	case SearchPredictive:
		b.PredictiveCount.Add(1)
		b.PredictiveResults.Add(int64(results))
	case SearchCommonPrefix:
		b.CommonPrefixCount.Add(1)
		b.CommonPrefixResults.Add(int64(results))
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:          b.BuildCount.Load(),
		BuildAvgNanos:       avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		LastBuildNodes:      b.LastBuildNodes.Load(),
		LastBuildWords:      b.LastBuildWords.Load(),
		ExactMatchCount:     b.ExactMatchCount.Load(),
		ExactMatchHits:      b.ExactMatchHits.Load(),
		ExactMatchAvgNanos:  avg(b.ExactMatchNanos.Load(), b.ExactMatchCount.Load()),
		PredictiveCount:     b.PredictiveCount.Load(),
		PredictiveResults:   b.PredictiveResults.Load(),
		CommonPrefixCount:   b.CommonPrefixCount.Load(),
		CommonPrefixResults: b.CommonPrefixResults.Load(),
		SearchAvgNanos:      avg(b.SearchTotalNanos.Load(), b.PredictiveCount.Load()+b.CommonPrefixCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount          int64
	BuildAvgNanos       int64
	LastBuildNodes      int64
	LastBuildWords      int64
	ExactMatchCount     int64
	ExactMatchHits      int64
	ExactMatchAvgNanos  int64
	PredictiveCount     int64
	PredictiveResults   int64
	CommonPrefixCount   int64
	CommonPrefixResults int64
	SearchAvgNanos      int64
}
