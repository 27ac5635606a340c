package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	messagesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "order_requests_processed_total",
			Help:      "Total number of order requests accepted from Kafka",
		},
	)

	messagesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "order_requests_failed_total",
			Help:      "Total number of order requests that could not be handled",
		},
	)

	messagesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "order_requests_dlq_total",
			Help:      "Total number of order requests written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	messageProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "order_request_processing_duration_seconds",
			Help:      "Histogram of order request processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of accepted orders by intake source",
		},
		[]string{"source"},
	)

	statusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "status_updates_total",
			Help:      "Total number of per-order status updates by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)
)

const (
	sourceHTTP  = "http"
	sourceKafka = "kafka"

	modeSingle = "single"
	modeBulk   = "bulk"
)

func RegisterMetrics() {
	prometheus.MustRegister(
		messagesProcessed,
		messagesFailed,
		messagesDLQ,
		commitErrors,
		messageProcessingDuration,

		ordersCreated,
		statusUpdates,
	)
}
