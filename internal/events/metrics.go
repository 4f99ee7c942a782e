package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "w3tokens_events_total",
			Help: "Correlated events delivered, by kind.",
		},
		[]string{"event"},
	)
	eventsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "w3tokens_events_skipped_total",
		Help: "Gateway events that did not belong to this connector.",
	})
	batchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "w3tokens_event_batches_total",
			Help: "Gateway event batches, by outcome.",
		},
		[]string{"status"},
	)
)
