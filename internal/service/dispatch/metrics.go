package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultNotified = "notified"
	resultSkipped  = "skipped"
	resultFailed   = "failed"
)

var (
	fanoutTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_fanout_drivers_total",
			Help: "Drivers considered during new-order fan-out by result",
		},
		[]string{"result"},
	)

	expansionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_radius_expansions_total",
			Help: "External radius expansion rounds",
		},
	)

	noDriversTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_no_drivers_total",
			Help: "Orders dispatched without any eligible driver",
		},
		[]string{"delivery_type"},
	)

	claimConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_claim_conflicts_total",
			Help: "Accept attempts that lost the claim",
		},
	)
)
