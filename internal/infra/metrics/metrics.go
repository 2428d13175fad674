package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	BookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_transitions_total",
			Help: "Number of committed booking status transitions",
		},
		[]string{"phase"},
	)

	CapacityRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_capacity_rejections_total",
			Help: "Number of payments refused because a session was full",
		},
	)

	RefundsIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refunds_issued_total",
			Help: "Number of refund records written, by percentage",
		},
		[]string{"percentage"},
	)

	PartialFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "drop_partial_failures_total",
			Help: "Number of drops whose refund was issued but whose local writes failed",
		},
	)

	ExpiredBookings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_expired_total",
			Help: "Number of pending bookings written back as expired",
		},
	)

	OutboxPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_events_published_total",
			Help: "Number of outbox events handed to the broker, by result",
		},
		[]string{"result"},
	)

	UnitOfWorkRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "uow_retries_total",
			Help: "Number of transactions retried after a serialization failure or deadlock",
		},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			BookingTransitions,
			CapacityRejections,
			RefundsIssued,
			PartialFailures,
			ExpiredBookings,
			OutboxPublished,
			UnitOfWorkRetries,
			HTTPRequestDuration,
		)
	})
}
