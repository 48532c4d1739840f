package sorted

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// validationFailures counts deserialization attempts rejected because
	// the payload violated the container's ordering contract.
	//
	// Labels:
	//   - format: "json" or "yaml".
	//   - reason: "unsorted" if elements were out of order, "duplicate" if
	//     a unique container received equal elements.
	//
	// Decode errors from malformed payloads are not counted here; only
	// payloads that parsed but failed validation.
	validationFailures = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorted_codec_validation_failures_total",
		Help: "The total number of deserialization attempts rejected by sortedness validation",
	}, []string{"format", "reason"})
)
