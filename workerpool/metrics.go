// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by a Pool.
// A nil *Metrics records nothing.
type Metrics struct {
	tasks    prometheus.Counter
	failures prometheus.Counter
	workers  prometheus.Gauge
	runs     prometheus.Histogram
}

// NewMetrics creates the pool collectors and registers them with reg.
// It panics if they are already registered there, like promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		tasks: f.NewCounter(prometheus.CounterOpts{
			Namespace: "parsort",
			Subsystem: "pool",
			Name:      "tasks_total",
			Help:      "Number of tasks executed by the worker pool.",
		}),
		failures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "parsort",
			Subsystem: "pool",
			Name:      "task_failures_total",
			Help:      "Number of tasks that returned an error or panicked.",
		}),
		workers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "parsort",
			Subsystem: "pool",
			Name:      "workers",
			Help:      "Number of live worker goroutines.",
		}),
		runs: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "parsort",
			Subsystem: "pool",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one Run call, from submission to the last task.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
}

func (m *Metrics) taskDone(failed bool) {
	if m == nil {
		return
	}
	m.tasks.Inc()
	if failed {
		m.failures.Inc()
	}
}

func (m *Metrics) addWorkers(n int) {
	if m == nil {
		return
	}
	m.workers.Add(float64(n))
}

func (m *Metrics) observeRun(start time.Time) {
	if m == nil {
		return
	}
	m.runs.Observe(time.Since(start).Seconds())
}
