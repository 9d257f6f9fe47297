package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "braintrainer"

var (
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	exercisesCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "exercises",
		Name:      "completed_total",
		Help:      "Exercise completions recorded, by category.",
	}, []string{"category"})

	roundsIssued = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "exercises",
		Name:      "rounds_issued_total",
		Help:      "Exercise rounds handed out for server-side grading, by engine kind.",
	}, []string{"kind"})

	coachRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "coach",
		Name:      "requests_total",
		Help:      "AI coach relay requests, by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(httpDuration, exercisesCompleted, roundsIssued, coachRequests)
}

func ObserveHTTP(method, route, status string, d time.Duration) {
	httpDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

func RecordCompletion(category string) {
	exercisesCompleted.WithLabelValues(category).Inc()
}

func RecordRoundIssued(kind string) {
	roundsIssued.WithLabelValues(kind).Inc()
}

// RecordCoachRequest counts a coach call; ok=false means the LLM call or a
// store write failed.
func RecordCoachRequest(ok bool) {
	outcome := "success"
	if !ok {
		outcome = "error"
	}
	coachRequests.WithLabelValues(outcome).Inc()
}
