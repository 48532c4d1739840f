package spans

import "context"

// StartErr builds an orchestrator for an operation that can fail but
// produces no value. The operation runs inside an OpenTelemetry span
// when the context carries a tracer (see WithTracer); otherwise it runs
// bare. An error returned by the operation is recorded on the span with
// an Error status.
//
// Example:
//
//	err := spans.StartErr(ctx, "sort-shards",
//	    spans.WithErrorMessage("shard sort failed"),
//	).Enter(func(ctx context.Context, span trace.Span) error {
//	    return sortShards(ctx, shards)
//	})
func StartErr(
	ctx context.Context, name string, opts ...Option,
) *StartErrorOrchestrator {
	return &StartErrorOrchestrator{
		ctx:  ctx,
		name: name,
		opts: opts,
	}
}

// StartValErr builds an orchestrator for an operation that produces a
// value or fails, the usual shape of fallible work. Span handling is as
// in StartErr; additionally a panic in the operation is recorded on the
// span and re-raised with its original panic value.
//
// Example:
//
//	merged, err := spans.StartValErr[[]Record](ctx, "merge-runs",
//	    spans.WithAttribute("runs", attribute.IntValue(len(runs))),
//	).Enter(func(ctx context.Context, span trace.Span) ([]Record, error) {
//	    return merge(ctx, runs)
//	})
func StartValErr[Value any](
	ctx context.Context, name string, opts ...Option,
) *StartValueErrorOrchestrator[Value] {
	return &StartValueErrorOrchestrator[Value]{
		ctx:  ctx,
		name: name,
		opts: opts,
	}
}
