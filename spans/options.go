package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WithAttribute attaches one key-value pair to the span at start time.
// Use OpenTelemetry's value constructors for the value: StringValue,
// IntValue, BoolValue, and so on. Repeat the option for more pairs, or
// use WithSpanStartOptions with trace.WithAttributes to add a batch.
//
// Example:
//
//	spans.StartErr(ctx, "sort-shards",
//	    spans.WithAttribute("shards", attribute.IntValue(len(shards))),
//	    spans.WithAttribute("items", attribute.IntValue(total)),
//	).Enter(func(ctx context.Context, span trace.Span) error {
//	    return sortShards(ctx, shards)
//	})
func WithAttribute(key attribute.Key, value attribute.Value) Option {
	return func(r *runner) {
		r.sso = append(r.sso, trace.WithAttributes(attribute.KeyValue{
			Key:   key,
			Value: value,
		}))
	}
}

// WithSpanKind declares the span's role in the trace. The default,
// SpanKindInternal, fits in-process library work; the client, server,
// producer, and consumer kinds describe operations that cross a process
// boundary.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.spanKind = kind
	}
}

// WithSuccessMessage replaces the default "ok" status description
// reported when the wrapped function returns nil.
func WithSuccessMessage(description string) Option {
	return func(r *runner) {
		r.success = description
	}
}

// WithErrorMessage prefixes the span's error status description. With
// the option, a failing span's status reads "description: error text";
// without it, just the error text.
//
// Example:
//
//	err := spans.StartErr(ctx, "merge-runs",
//	    spans.WithErrorMessage("merge failed"),
//	).Enter(func(ctx context.Context, span trace.Span) error {
//	    return merge(ctx, runs)
//	})
//	// If an error occurs, the span status reads: "merge failed: {error message}"
func WithErrorMessage(description string) Option {
	return func(r *runner) {
		r.failure = description
	}
}

// WithSpanStartOptions passes raw OpenTelemetry start options through to
// tracer.Start, for span configuration the other options here do not
// cover: links, timestamps, attribute batches.
//
// Example:
//
//	spans.StartErr(ctx, "sort-shards",
//	    spans.WithSpanStartOptions(
//	        trace.WithAttributes(
//	            attribute.Int("shards", len(shards)),
//	            attribute.Int("shard_size", size),
//	        ),
//	    ),
//	).Enter(func(ctx context.Context, span trace.Span) error {
//	    return sortShards(ctx, shards)
//	})
func WithSpanStartOptions(options ...trace.SpanStartOption) Option {
	return func(r *runner) {
		r.sso = append(r.sso, options...)
	}
}
