// Package spans wraps function calls in OpenTelemetry spans through a small
// fluent API.
//
// Tracing is opt-in: callers put a tracer in the context with WithTracer,
// and the orchestrators create spans only when one is present. Without a
// tracer the wrapped function runs unchanged, so library code can
// instrument its operations without forcing tracing on every caller.
//
// Two function signatures are supported, both receiving a context and span:
//   - StartErr: func(context.Context, trace.Span) error
//   - StartValErr: func(context.Context, trace.Span) (T, error)
//
// Usage example:
//
//	ctx = spans.WithTracer(ctx, tracer)
//	merged, err := spans.StartValErr[[]int](ctx, "merge-runs",
//	    spans.WithAttribute("runs", attribute.IntValue(len(runs))),
//	).Enter(func(ctx context.Context, span trace.Span) ([]int, error) {
//	    return merge(ctx, runs)
//	})
package spans
