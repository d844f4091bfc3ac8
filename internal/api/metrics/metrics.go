// Package metrics registers the Prometheus counters the API layer increments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tasksflow"

var (
	// Logins counts login attempts, labelled by result (success or failure).
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Number of login attempts by result.",
	}, []string{"result"})

	// Registrations counts successfully created accounts.
	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Number of accounts registered.",
	})

	// ItemsCreated counts created board items by kind (task or job).
	ItemsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Number of tasks and jobs created.",
	}, []string{"kind"})

	// BoardOps counts column and tag mutations by kind and operation.
	BoardOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "board_ops_total",
		Help:      "Number of board configuration operations.",
	}, []string{"kind", "op"})

	// SalaryRequests counts salary estimate lookups by result.
	SalaryRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "salary_requests_total",
		Help:      "Number of salary estimate requests by result.",
	}, []string{"result"})
)
