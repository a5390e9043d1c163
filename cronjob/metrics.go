package cronjob

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	thoughtsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cronjob",
		Name:      "thoughts_expired_total",
		Help:      "Number of ephemeral thoughts removed after their retention window",
	})
	mintsReconciled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cronjob",
		Name:      "mints_reconciled_total",
		Help:      "Number of pending mints finalized by the reconcile job",
	})
	mintsAbandoned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cronjob",
		Name:      "mints_abandoned_total",
		Help:      "Number of pending mints given up on (reverted or never included)",
	})
)
