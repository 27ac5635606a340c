package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	channelEmail = "email"
	channelChat  = "chat"

	outcomeSent    = "sent"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

var notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "order_service",
	Subsystem: "notify",
	Name:      "notifications_total",
	Help:      "Order notifications by channel and outcome.",
}, []string{"channel", "outcome"})
