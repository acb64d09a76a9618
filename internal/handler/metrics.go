package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	relayDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "notification_relay",
			Name:      "messages_delivered_total",
			Help:      "Total number of notifications delivered to the messaging gateway",
		},
	)

	relayFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "notification_relay",
			Name:      "messages_failed_total",
			Help:      "Total number of notifications that could not be delivered",
		},
	)

	relayDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "notification_relay",
			Name:      "messages_dlq_total",
			Help:      "Total number of notifications written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "notification_relay",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	relayDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "perfume_shop",
			Subsystem: "notification_relay",
			Name:      "message_processing_duration_seconds",
			Help:      "Histogram of notification relay durations in seconds, retries included",
			Buckets:   prometheus.DefBuckets,
		},
	)

	relayInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "perfume_shop",
			Subsystem: "notification_relay",
			Name:      "messages_in_progress",
			Help:      "Number of notifications currently being relayed",
		},
	)
)

var (
	trackRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "http",
			Name:      "track_requests_total",
			Help:      "Total number of order tracking requests",
		},
		[]string{"status"},
	)

	trackRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "perfume_shop",
			Subsystem: "http",
			Name:      "track_request_duration_seconds",
			Help:      "Histogram of order tracking request durations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	trackRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "perfume_shop",
			Subsystem: "http",
			Name:      "track_requests_in_progress",
			Help:      "Number of in-progress order tracking requests",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		relayDelivered,
		relayFailed,
		relayDLQ,
		commitErrors,
		relayDuration,
		relayInProgress,

		trackRequestTotal,
		trackRequestDuration,
		trackRequestsInProgress,
	)
}
