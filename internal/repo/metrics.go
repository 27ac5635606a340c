package repo

import (
	"errors"

	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK            = "ok"
	outcomeNotFound      = "not_found"
	outcomeNotConfigured = "not_configured"
	outcomeRejected      = "rejected"
	outcomeUnavailable   = "unavailable"
	outcomeError         = "error"
)

var recordStoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "order_service",
	Subsystem: "record_store",
	Name:      "operations_total",
	Help:      "Record store operations by outcome.",
}, []string{"operation", "outcome"})

func observe(op, outcome string) {
	recordStoreOperations.WithLabelValues(op, outcome).Inc()
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		return outcomeNotFound
	case errors.Is(err, entities.ErrStoreNotConfigured):
		return outcomeNotConfigured
	case errors.Is(err, entities.ErrUpdateRejected):
		return outcomeRejected
	case errors.Is(err, entities.ErrStoreUnavailable):
		return outcomeUnavailable
	default:
		return outcomeError
	}
}
