package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teamboard",
			Name:      "records_created_total",
			Help:      "Records created, by collection",
		},
		[]string{"collection"},
	)

	boardsClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "teamboard",
			Name:      "boards_closed_total",
			Help:      "Boards moved to CLOSED",
		},
	)

	boardExports = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "teamboard",
			Name:      "board_exports_total",
			Help:      "Board export files written",
		},
	)

	membershipChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teamboard",
			Name:      "membership_changes_total",
			Help:      "Add/remove user batches applied to teams",
		},
		[]string{"op"},
	)
)
