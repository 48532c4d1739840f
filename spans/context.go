package spans

import (
	"context"

	"github.com/JohnScience/sorted-vec2/contexts"
	"go.opentelemetry.io/otel/trace"
)

// contextKey keeps this package's context keys from colliding with other
// packages.
type contextKey string

// TracerKey is the context key under which the OpenTelemetry tracer is stored.
const TracerKey contextKey = "tracer"

// WithTracer stores an OpenTelemetry tracer in the context. The StartErr and
// StartValErr orchestrators use it to create spans when executing wrapped
// functions; without it they execute the function without creating a span.
//
// Example:
//
//	ctx = spans.WithTracer(ctx, otel.Tracer("my-service"))
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return contexts.WithValue[contextKey, trace.Tracer](ctx, TracerKey, tracer)
}

// TracerFromContext returns the tracer stored by WithTracer, with a
// second result reporting whether one was present.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	return contexts.GetValue[contextKey, trace.Tracer](ctx, TracerKey)
}
