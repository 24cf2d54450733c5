// Package metrics exposes the server's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntityMutations counts successful create/update/delete operations by
	// entity kind.
	EntityMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mes_entity_mutations_total",
		Help: "Entity mutations by kind and operation.",
	}, []string{"kind", "op"})

	// RealtimeClients tracks currently connected dashboard subscribers.
	RealtimeClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mes_realtime_clients",
		Help: "Currently connected dashboard subscribers.",
	})

	// RealtimeEvents counts events fanned out to subscribers.
	RealtimeEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mes_realtime_events_total",
		Help: "Events broadcast to dashboard subscribers, by event name.",
	}, []string{"event"})

	// LoginFailures counts rejected login attempts.
	LoginFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mes_login_failures_total",
		Help: "Rejected login attempts.",
	})
)
