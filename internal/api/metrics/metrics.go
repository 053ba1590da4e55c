// Package metrics defines and registers the custom Prometheus metrics of the
// skill swap API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Every collector is registered with the default registry at package init via
// promauto; the /metrics route exposes them next to the echoprometheus
// request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skillswap"

// ── Swap metrics ──────────────────────────────────────────────────────────────

// SwapsProposedTotal counts proposals accepted by the API.
// Label:
//   - result: "created" or "replayed" (idempotency key matched)
var SwapsProposedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "swaps_proposed_total",
		Help:      "Total number of swap proposals, by result (created/replayed).",
	},
	[]string{"result"},
)

// SwapTransitionsTotal counts successful lifecycle moves.
// Label:
//   - to: "accepted", "rejected", "completed" or "withdrawn"
var SwapTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "swap_transitions_total",
		Help:      "Total number of swap lifecycle transitions, by target state.",
	},
	[]string{"to"},
)

// ── Rating event metrics ──────────────────────────────────────────────────────

// RatingEventsProcessedTotal counts completion events folded into ratings.
var RatingEventsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_events_processed_total",
		Help:      "Total number of swap completion events aggregated into user ratings.",
	},
)

// RatingEventsErrorsTotal counts completion events that failed aggregation.
var RatingEventsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_events_errors_total",
		Help:      "Total number of swap completion events that failed aggregation.",
	},
)

// RatingQueueDepth tracks events waiting in each dispatcher worker channel.
var RatingQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rating_queue_depth",
		Help:      "Current number of completion events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// RatingProcessingDuration measures one aggregation from dequeue to store write.
var RatingProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rating_processing_duration_seconds",
		Help:      "Duration of rating aggregation per completion event.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Announcement metrics ──────────────────────────────────────────────────────

// AnnouncementsPublishedTotal counts admin announcements.
var AnnouncementsPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "announcements_published_total",
		Help:      "Total number of announcements broadcast by admins.",
	},
)

// LiveSubscribers tracks connected announcement websocket clients.
var LiveSubscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "announcement_subscribers",
		Help:      "Current number of connected announcement feed clients.",
	},
)
