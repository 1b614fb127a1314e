package suspension

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suspension_transitions_total",
			Help: "Driver activity transitions made by balance evaluation",
		},
		[]string{"transition"},
	)

	sweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suspension_sweep_duration_seconds",
			Help:    "Duration of full-fleet suspension sweeps",
			Buckets: prometheus.DefBuckets,
		},
	)
)
