package server

import (
	"sync/atomic"
	"time"

	"github.com/Brownie44l1/arenahttpd/internal/response"
)

// Metrics holds server runtime counters. The accept loop writes them;
// Snapshot may be called from any goroutine.
type Metrics struct {
	Connections atomic.Int64
	Served      atomic.Int64
	NotFound    atomic.Int64
	Invalid     atomic.Int64
	WriteErrors atomic.Int64
	BytesSent   atomic.Int64

	// Largest number of scratch arena bytes one connection used
	ScratchHighWater atomic.Int64

	TotalLatencyNs atomic.Int64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordResponse records a response that reached the client
func (m *Metrics) RecordResponse(status response.StatusCode, bytes int64, duration time.Duration) {
	m.TotalLatencyNs.Add(duration.Nanoseconds())
	m.BytesSent.Add(bytes)

	switch status {
	case response.StatusOK:
		m.Served.Add(1)
	case response.StatusNotFound:
		m.NotFound.Add(1)
	}
}

// RecordScratch raises the high-water mark to used if it is larger
func (m *Metrics) RecordScratch(used int) {
	n := int64(used)
	for {
		cur := m.ScratchHighWater.Load()
		if n <= cur || m.ScratchHighWater.CompareAndSwap(cur, n) {
			return
		}
	}
}

// AverageLatency returns average handling time per response
func (m *Metrics) AverageLatency() time.Duration {
	total := m.Served.Load() + m.NotFound.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.TotalLatencyNs.Load() / total)
}

// MetricsSnapshot is a point-in-time copy of Metrics
type MetricsSnapshot struct {
	Connections      int64
	Served           int64
	NotFound         int64
	Invalid          int64
	WriteErrors      int64
	BytesSent        int64
	ScratchHighWater int64
	AverageLatency   time.Duration
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Connections:      m.Connections.Load(),
		Served:           m.Served.Load(),
		NotFound:         m.NotFound.Load(),
		Invalid:          m.Invalid.Load(),
		WriteErrors:      m.WriteErrors.Load(),
		BytesSent:        m.BytesSent.Load(),
		ScratchHighWater: m.ScratchHighWater.Load(),
		AverageLatency:   m.AverageLatency(),
	}
}
