package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	inboundEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rumbo_inbound_events_total",
			Help: "Webhook events received, by message type (text, interactive, status, other).",
		},
		[]string{"type"},
	)

	outboundMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rumbo_outbound_messages_total",
			Help: "Messages sent to the WhatsApp API, by kind and outcome.",
		},
		[]string{"kind", "status"},
	)
)

// MustRegister registers all collectors with the default registry exactly once.
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(inboundEvents, outboundMessages)
	})
}

func IncInbound(eventType string) {
	inboundEvents.WithLabelValues(eventType).Inc()
}

func IncOutbound(kind, status string) {
	outboundMessages.WithLabelValues(kind, status).Inc()
}
