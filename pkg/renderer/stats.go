package renderer

import (
	"sync/atomic"
	"time"
)

// Stats collects render counters across concurrent tile jobs.
type Stats struct {
	samples int64
	passes  int64
	start   time.Time
}

// NewStats creates stats with the clock started
func NewStats() *Stats {
	return &Stats{start: time.Now()}
}

// AddSamples records traced primary samples
func (s *Stats) AddSamples(n int) {
	atomic.AddInt64(&s.samples, int64(n))
}

// AddPass records a completed accumulation pass
func (s *Stats) AddPass() {
	atomic.AddInt64(&s.passes, 1)
}

// Samples returns the total primary samples traced
func (s *Stats) Samples() int64 {
	return atomic.LoadInt64(&s.samples)
}

// Passes returns the number of completed passes
func (s *Stats) Passes() int64 {
	return atomic.LoadInt64(&s.passes)
}

// Elapsed returns the wall time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.start)
}

// SamplesPerSecond returns the average sampling throughput
func (s *Stats) SamplesPerSecond() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Samples()) / elapsed
}
