package ioweb

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	reg      *prometheus.Registry
	builds   *prometheus.CounterVec
	duration prometheus.Histogram
	sessions prometheus.Gauge
}

func newMetrics() *metrics {
	res := metrics{
		reg: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gnparks",
				Name:      "chart_builds_total",
				Help:      "Number of built figures by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "gnparks",
				Name:      "chart_build_seconds",
				Help:      "Time spent filtering and building a figure.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
		),
		sessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "gnparks",
				Name:      "sessions_active",
				Help:      "Number of open dashboard sessions.",
			},
		),
	}
	res.reg.MustRegister(
		res.builds,
		res.duration,
		res.sessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &res
}
