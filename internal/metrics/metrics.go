package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransactionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finance_service",
			Name:      "transactions_created_total",
			Help:      "Total number of transactions recorded, by originating module.",
		},
		[]string{"module"},
	)

	TransactionsApproved = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "finance_service",
			Name:      "transactions_approved_total",
			Help:      "Total number of transactions approved.",
		},
	)

	TransactionsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "finance_service",
			Name:      "transactions_rejected_total",
			Help:      "Total number of transactions rejected.",
		},
	)

	PendingApprovals = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "finance_service",
			Name:      "pending_approvals",
			Help:      "Transactions currently waiting for approval.",
		},
	)

	BroadcastFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finance_service",
			Name:      "broadcast_failures_total",
			Help:      "Cross-module signal publishes that failed, by topic.",
		},
		[]string{"topic"},
	)
)
