// File: fsmutex/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Optional Prometheus instrumentation for lock traffic. Every observer is
// nil-safe so backends carry no metrics branches.

package fsmutex

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Label and status constants for lock metrics.
const (
	LabelStatus = "status"

	StatusGranted = "granted"
	StatusTimeout = "timeout"
)

// Metrics collects lock acquisition and release counters for one mutex.
type Metrics struct {
	acquireTotal *prometheus.CounterVec
	releaseTotal prometheus.Counter
	entitiesHeld prometheus.Gauge
	waitSeconds  prometheus.Histogram
}

// NewMetrics builds and registers the lock metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		acquireTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hioload_fs",
			Subsystem: "fsmutex",
			Name:      "acquire_total",
			Help:      "Lock acquisition attempts by outcome.",
		}, []string{LabelStatus}),
		releaseTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hioload_fs",
			Subsystem: "fsmutex",
			Name:      "release_total",
			Help:      "Lock releases.",
		}),
		entitiesHeld: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hioload_fs",
			Subsystem: "fsmutex",
			Name:      "entities_held",
			Help:      "Entities currently held across all guards.",
		}),
		waitSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hioload_fs",
			Subsystem: "fsmutex",
			Name:      "acquire_wait_seconds",
			Help:      "Time spent waiting for lock acquisition.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}
	reg.MustRegister(m.acquireTotal, m.releaseTotal, m.entitiesHeld, m.waitSeconds)
	return m
}

func (m *Metrics) observeAcquire(status string, wait time.Duration, held int) {
	if m == nil {
		return
	}
	m.acquireTotal.WithLabelValues(status).Inc()
	m.waitSeconds.Observe(wait.Seconds())
	if held > 0 {
		m.entitiesHeld.Add(float64(held))
	}
}

func (m *Metrics) observeRelease(released int) {
	if m == nil {
		return
	}
	m.releaseTotal.Inc()
	m.entitiesHeld.Sub(float64(released))
}
