// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fieldops"

var (
	IdentifiersIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identifiers_issued_total",
		Help:      "Request numbers and folios generated, by kind and generator mode.",
	}, []string{"kind", "mode"})

	IdentifierCollisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identifier_collisions_total",
		Help:      "Generated identifiers rejected by the uniqueness guard.",
	}, []string{"kind"})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Persisted status changes, by entity and target status.",
	}, []string{"entity", "to"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Business events handed to the notification queue, by outcome.",
	}, []string{"kind", "outcome"})

	NotificationsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_delivered_total",
		Help:      "Notification records written by the dispatcher.",
	})

	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Failed notification deliveries; outcome is retried or dropped.",
	}, []string{"outcome"})
)

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
