package minter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mintsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minter",
		Name:      "mints_submitted_total",
		Help:      "Mint transactions submitted to a chain",
	})

	mintsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minter",
		Name:      "mints_confirmed_total",
		Help:      "Mint transactions confirmed and finalized",
	})

	mintsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minter",
		Name:      "mints_failed_total",
		Help:      "Mint transactions rejected or reverted",
	})

	reconciliationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minter",
		Name:      "reconciliation_failures_total",
		Help:      "Confirmed mints whose database write failed",
	})
)
