package fcm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_gateway_retries_total",
			Help: "Total number of push sends that needed more than one attempt",
		},
		[]string{"provider", "reason"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "push_gateway_request_duration_seconds",
			Help:    "Duration of push sends including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"provider", "code"},
	)
)
