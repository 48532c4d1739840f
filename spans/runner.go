package spans

import (
	"context"
	"runtime/debug"

	"github.com/JohnScience/sorted-vec2/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Option adjusts how a traced invocation is run. Options are passed to
// StartErr and StartValErr; nil options are skipped.
type Option func(*runner)

// runner carries the configuration for one traced invocation.
type runner struct {
	spanName string
	spanKind trace.SpanKind
	tracer   trace.Tracer

	// success and failure override the status descriptions reported on
	// the span. failure is used as a prefix on the error text.
	success string
	failure string

	// sso is passed through to tracer.Start.
	sso []trace.SpanStartOption
}

func newRunner(tracer trace.Tracer, spanName string, opts ...Option) *runner {
	r := &runner{
		spanName: spanName,
		spanKind: trace.SpanKindInternal,
		tracer:   tracer,
	}

	for _, option := range opts {
		if option != nil {
			option(r)
		}
	}

	return r
}

// runWithSpan executes the given function within an OpenTelemetry span.
// It creates the span, runs the function, records any error, sets the
// final status, and ends the span. A panic in the function is recorded
// with a stack trace and re-raised with its original panic value, so a
// recover site further up the stack sees exactly what the function
// panicked with.
//
// If the runner or its tracer is nil, the function runs without a new span.
func runWithSpan[T any](
	r *runner,
	ctx context.Context,
	operation func(ctx context.Context, span trace.Span) (T, error),
) (T, error) {
	if r == nil || r.tracer == nil {
		return operation(ctx, trace.SpanFromContext(ctx))
	}

	opts := make([]trace.SpanStartOption, len(r.sso)+1)

	copy(opts, r.sso)
	opts[len(r.sso)] = trace.WithSpanKind(r.spanKind)

	ctx, span := r.tracer.Start(ctx, r.spanName, opts...) //nolint:spancheck

	defer func() {
		defer span.End()

		if panicVal := recover(); panicVal != nil {
			span.SetAttributes(attribute.KeyValue{
				Key:   "panic",
				Value: attribute.Int64Value(1),
			})

			err := errors.FromPanic(panicVal, debug.Stack())

			span.RecordError(err)
			r.setStatus(span, err)

			panic(panicVal)
		}
	}()

	val, err := operation(ctx, span)
	if err != nil {
		span.RecordError(err)
	}

	r.setStatus(span, err)

	return val, err
}

// setStatus reports the final span status, honoring the configured
// success and failure descriptions.
func (r *runner) setStatus(span trace.Span, err error) {
	if err == nil {
		msg := r.success
		if msg == "" {
			msg = "ok"
		}

		span.SetStatus(codes.Ok, msg)

		return
	}

	msg := err.Error()
	if r.failure != "" {
		msg = r.failure + ": " + msg
	}

	span.SetStatus(codes.Error, msg)
}

// invoke runs call inside a span when the context carries a tracer.
// Without one the call still runs, and the untraced-operations counter
// is incremented. Both orchestrators' Enter methods land here.
func invoke[T any](
	ctx context.Context, name string,
	call func(ctx context.Context, span trace.Span) (T, error), opts ...Option,
) (T, error) {
	tracer, found := TracerFromContext(ctx)
	if !found {
		untracedCounter.WithLabelValues(name).Inc()

		return call(ctx, trace.SpanFromContext(ctx))
	}

	return runWithSpan(newRunner(tracer, name, opts...), ctx, call)
}
