package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StatusesCreated - total statuses published.
	StatusesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "statushub_statuses_created_total",
		Help: "Total number of statuses created",
	})

	// StatusesDeleted - explicit deletions, by trigger (id or user).
	StatusesDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statushub_statuses_deleted_total",
			Help: "Total number of statuses explicitly deleted",
		}, []string{"by"},
	)

	// StatusesExpired - records reclaimed by the sweeper.
	StatusesExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "statushub_statuses_expired_total",
		Help: "Total number of statuses removed by the cleanup sweeper",
	})

	// StoredStatuses - records physically present, expired-unswept included.
	StoredStatuses = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "statushub_stored_statuses",
		Help: "Current number of status records held in memory",
	})

	// SubscribersConnected - open websocket connections.
	SubscribersConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "statushub_subscribers_connected",
		Help: "Current number of open subscriber connections",
	})

	// GroupMembers - connections currently in the broadcast group.
	GroupMembers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "statushub_group_members",
		Help: "Current number of broadcast group members",
	})

	// EventsBroadcast - deliveries attempted, by event name.
	EventsBroadcast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statushub_events_broadcast_total",
			Help: "Total per-member event deliveries attempted, by event",
		}, []string{"event"},
	)

	// SweepFailures - sweep cycles that aborted and went into backoff.
	SweepFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "statushub_sweep_failures_total",
		Help: "Total number of failed sweep cycles",
	})

	// SweepDuration - registered explicitly in the composition root.
	SweepDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "statushub_sweep_duration_seconds",
		Help:    "Duration of one sweep-and-notify cycle",
		Buckets: prometheus.DefBuckets,
	})
)
