// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "loan_offer"

// OffersComputed counts offers by tenure in years.
var OffersComputed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "offer",
	Name:      "computed_total",
	Help:      "Offers computed, by tenure in years.",
}, []string{"tenure"})

// ScoreFallbacks counts offers priced with the sanctioned score because the
// request carried none.
var ScoreFallbacks = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "offer",
	Name:      "score_fallbacks_total",
	Help:      "Offers priced with the stored sanction score.",
})

var NonFiniteOffers = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "offer",
	Name:      "non_finite_total",
	Help:      "Offers whose installment could not be represented.",
})

var SanctionLookupFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "sanction",
	Name:      "lookup_failures_total",
	Help:      "Sanction store reads that failed and were treated as absent.",
})

var SanctionsRecorded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "sanction",
	Name:      "recorded_total",
	Help:      "Sanctions written to the store.",
})

var RateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "rate_limited_total",
	Help:      "Requests rejected by the per-client rate limiter.",
})

var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by route and status.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method", "status"})
