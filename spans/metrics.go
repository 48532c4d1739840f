package spans

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// untracedCounter counts operations that ran without a tracer in the
// context. Tracing is opt-in through WithTracer, so untraced runs are
// normal; the counter shows how much of the workload runs dark.
//
// Metric name: sorted_spans_untraced_total
// Labels:
//   - span_name: the name the span would have carried.
var untracedCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "sorted",
		Subsystem: "spans",
		Name:      "untraced_total",
		Help:      "Total number of operations executed without a tracer in context",
	},
	[]string{"span_name"},
)
