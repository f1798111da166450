// Package prom exports bitvec buffer metrics to Prometheus.
package prom

import (
	"github.com/hupe1980/bitvec"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements bitvec.MetricsCollector on Prometheus counters and gauges.
//
// One Collector may be shared by many vectors; the metrics aggregate over all of them.
type Collector struct {
	allocs      *prometheus.CounterVec
	allocBytes  prometheus.Counter
	frees       prometheus.Counter
	freeBytes   prometheus.Counter
	reallocs    *prometheus.CounterVec
	liveBytes   prometheus.Gauge
	bufferBytes prometheus.Histogram
}

var _ bitvec.MetricsCollector = (*Collector)(nil)

// NewCollector creates the metrics under namespace (e.g. "bitvec") and registers
// them with reg. A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		allocs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Allocator requests by status",
		}, []string{"status"}),
		allocBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocated_bytes_total",
			Help:      "Bytes handed out by the allocator",
		}),
		frees: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "releases_total",
			Help:      "Buffers returned to the allocator",
		}),
		freeBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "released_bytes_total",
			Help:      "Bytes returned to the allocator",
		}),
		reallocs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reallocations_total",
			Help:      "Capacity changes by direction",
		}, []string{"direction"}),
		liveBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_bytes",
			Help:      "Bytes currently held by vectors",
		}),
		bufferBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "buffer_size_bytes",
			Help:      "Size of successfully allocated buffers",
			Buckets:   prometheus.ExponentialBuckets(8, 4, 12),
		}),
	}

	reg.MustRegister(
		c.allocs,
		c.allocBytes,
		c.frees,
		c.freeBytes,
		c.reallocs,
		c.liveBytes,
		c.bufferBytes,
	)
	return c
}

// RecordAlloc implements bitvec.MetricsCollector.
func (c *Collector) RecordAlloc(bytes int, err error) {
	if err != nil {
		c.allocs.WithLabelValues("error").Inc()
		return
	}
	c.allocs.WithLabelValues("success").Inc()
	c.allocBytes.Add(float64(bytes))
	c.liveBytes.Add(float64(bytes))
	c.bufferBytes.Observe(float64(bytes))
}

// RecordFree implements bitvec.MetricsCollector.
func (c *Collector) RecordFree(bytes int) {
	c.frees.Inc()
	c.freeBytes.Add(float64(bytes))
	c.liveBytes.Sub(float64(bytes))
}

// RecordRealloc implements bitvec.MetricsCollector.
func (c *Collector) RecordRealloc(from, to int) {
	switch {
	case to > from:
		c.reallocs.WithLabelValues("grow").Inc()
	case to < from:
		c.reallocs.WithLabelValues("shrink").Inc()
	}
}
