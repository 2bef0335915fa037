package wmgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordGenerate is called after each generation run. tokens is the
	// number of tokens produced across the batch, duration the total time
	// taken, err nil on success.
	RecordGenerate(tokens int, duration time.Duration, err error)

	// RecordDetect is called after each detection run. texts is the number
	// of texts scored, flagged how many were reported watermarked.
	RecordDetect(texts, flagged int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordDetect(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GenerateCount      atomic.Int64
	GenerateErrors     atomic.Int64
	GenerateTokens     atomic.Int64
	GenerateTotalNanos atomic.Int64
	DetectCount        atomic.Int64
	DetectErrors       atomic.Int64
	DetectTexts        atomic.Int64
	DetectFlagged      atomic.Int64
	DetectTotalNanos   atomic.Int64
}

func (m *BasicMetricsCollector) RecordGenerate(tokens int, duration time.Duration, err error) {
	m.GenerateCount.Add(1)
	if err != nil {
		m.GenerateErrors.Add(1)
		return
	}
	m.GenerateTokens.Add(int64(tokens))
	m.GenerateTotalNanos.Add(duration.Nanoseconds())
}

func (m *BasicMetricsCollector) RecordDetect(texts, flagged int, duration time.Duration, err error) {
	m.DetectCount.Add(1)
	if err != nil {
		m.DetectErrors.Add(1)
		return
	}
	m.DetectTexts.Add(int64(texts))
	m.DetectFlagged.Add(int64(flagged))
	m.DetectTotalNanos.Add(duration.Nanoseconds())
}

// MetricsStats is a point-in-time snapshot of a BasicMetricsCollector.
type MetricsStats struct {
	GenerateCount   int64
	GenerateErrors  int64
	GenerateTokens  int64
	GenerateAvgNano int64
	DetectCount     int64
	DetectErrors    int64
	DetectTexts     int64
	DetectFlagged   int64
	DetectAvgNano   int64
}

// GetStats returns a snapshot of the collected metrics.
func (m *BasicMetricsCollector) GetStats() MetricsStats {
	s := MetricsStats{
		GenerateCount:  m.GenerateCount.Load(),
		GenerateErrors: m.GenerateErrors.Load(),
		GenerateTokens: m.GenerateTokens.Load(),
		DetectCount:    m.DetectCount.Load(),
		DetectErrors:   m.DetectErrors.Load(),
		DetectTexts:    m.DetectTexts.Load(),
		DetectFlagged:  m.DetectFlagged.Load(),
	}
	if n := s.GenerateCount - s.GenerateErrors; n > 0 {
		s.GenerateAvgNano = m.GenerateTotalNanos.Load() / n
	}
	if n := s.DetectCount - s.DetectErrors; n > 0 {
		s.DetectAvgNano = m.DetectTotalNanos.Load() / n
	}
	return s
}
