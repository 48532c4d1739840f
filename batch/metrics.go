package batch

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// jobsTotal counts completed batch constructions.
	//
	// Labels:
	//   - kind: "vector" or "set".
	//   - outcome: "ok", "error", or "canceled".
	//
	// Jobs that end in a comparator panic are not counted; the panic
	// propagates to the caller before the outcome is recorded.
	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "sorted",
		Subsystem: "batch",
		Name:      "jobs_total",
		Help:      "The total number of completed parallel batch constructions",
	}, []string{"kind", "outcome"})

	// elementsTotal counts elements taken in by batch constructions,
	// whatever the job outcome.
	elementsTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "sorted",
		Subsystem: "batch",
		Name:      "elements_total",
		Help:      "The total number of elements ingested by parallel batch constructions",
	})
)

const (
	kindVector = "vector"
	kindSet    = "set"

	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeCanceled = "canceled"
)

// recordOutcome classifies err and counts the finished job.
func recordOutcome(kind string, err error) {
	switch {
	case err == nil:
		jobsTotal.WithLabelValues(kind, outcomeOK).Inc()
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		jobsTotal.WithLabelValues(kind, outcomeCanceled).Inc()
	default:
		jobsTotal.WithLabelValues(kind, outcomeError).Inc()
	}
}
