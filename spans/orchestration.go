package spans

import (
	"context"

	"github.com/JohnScience/sorted-vec2/zero"
	"go.opentelemetry.io/otel/trace"
)

// StartErrorOrchestrator runs a fallible function that produces no
// value. Build one with StartErr.
type StartErrorOrchestrator struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// Enter runs f inside a span when the orchestrator's context carries a
// tracer, and returns f's error. A nil f is a no-op returning nil.
func (o *StartErrorOrchestrator) Enter(f func(ctx context.Context, span trace.Span) error) error {
	if f == nil {
		return nil
	}

	_, err := invoke(o.ctx, o.name, func(ctx context.Context, span trace.Span) (struct{}, error) {
		return struct{}{}, f(ctx, span)
	}, o.opts...)

	return err
}

// StartValueErrorOrchestrator runs a fallible function that produces a
// value. Build one with StartValErr.
type StartValueErrorOrchestrator[T any] struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// Enter runs f inside a span when the orchestrator's context carries a
// tracer, returning f's value and error. A nil f returns the zero value
// and no error. A panic inside f is recorded on the span and re-raised
// with its original panic value.
func (o *StartValueErrorOrchestrator[T]) Enter(f func(ctx context.Context, span trace.Span) (T, error)) (T, error) {
	if f == nil {
		return zero.Value[T](), nil
	}

	return invoke(o.ctx, o.name, f, o.opts...)
}
