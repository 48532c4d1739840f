//nolint:err113 // Test file uses errors.New() for creating test errors
package spans_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/JohnScience/sorted-vec2/spans"
)

// tracedContext returns a context carrying a tracer whose finished spans
// land in the returned recorder.
func tracedContext(t *testing.T) (context.Context, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	ctx := spans.WithTracer(context.Background(), provider.Tracer("sorted-test"))

	return ctx, recorder
}

// attrValue looks up a span attribute by key.
func attrValue(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestTracerRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("stored tracer is retrievable", func(t *testing.T) {
		t.Parallel()

		ctx, _ := tracedContext(t)

		tracer, found := spans.TracerFromContext(ctx)
		assert.True(t, found)
		assert.NotNil(t, tracer)
	})

	t.Run("plain context has no tracer", func(t *testing.T) {
		t.Parallel()

		tracer, found := spans.TracerFromContext(context.Background())
		assert.False(t, found)
		assert.Nil(t, tracer)
	})
}

func TestStartErr(t *testing.T) {
	t.Parallel()

	t.Run("success ends the span ok", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)

		err := spans.StartErr(ctx, "rebuild-index").Enter(
			func(_ context.Context, _ trace.Span) error {
				return nil
			})
		require.NoError(t, err)

		ended := recorder.Ended()
		require.Len(t, ended, 1)
		assert.Equal(t, "rebuild-index", ended[0].Name())
		assert.Equal(t, codes.Ok, ended[0].Status().Code)
		assert.Equal(t, "ok", ended[0].Status().Description)
	})

	t.Run("failure is recorded on the span", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)
		sortErr := errors.New("comparator misbehaved")

		err := spans.StartErr(ctx, "rebuild-index").Enter(
			func(_ context.Context, _ trace.Span) error {
				return sortErr
			})
		require.ErrorIs(t, err, sortErr)

		ended := recorder.Ended()
		require.Len(t, ended, 1)
		assert.Equal(t, codes.Error, ended[0].Status().Code)
		assert.Equal(t, "comparator misbehaved", ended[0].Status().Description)
		assert.NotEmpty(t, ended[0].Events(), "RecordError should leave an event")
	})

	t.Run("nil function is a no-op", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)

		require.NoError(t, spans.StartErr(ctx, "noop").Enter(nil))
		assert.Empty(t, recorder.Ended())
	})

	t.Run("runs without a tracer", func(t *testing.T) {
		t.Parallel()

		ran := false

		err := spans.StartErr(context.Background(), "untraced").Enter(
			func(_ context.Context, _ trace.Span) error {
				ran = true

				return nil
			})
		require.NoError(t, err)
		assert.True(t, ran)
	})
}

func TestStartValErr(t *testing.T) {
	t.Parallel()

	t.Run("returns the computed value", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)

		got, err := spans.StartValErr[int](ctx, "count-runs").Enter(
			func(_ context.Context, _ trace.Span) (int, error) {
				return 42, nil
			})
		require.NoError(t, err)
		assert.Equal(t, 42, got)

		ended := recorder.Ended()
		require.Len(t, ended, 1)
		assert.Equal(t, codes.Ok, ended[0].Status().Code)
	})

	t.Run("error passes the returned value through", func(t *testing.T) {
		t.Parallel()

		ctx, _ := tracedContext(t)
		lookupErr := errors.New("run missing")

		got, err := spans.StartValErr[string](ctx, "find-run").Enter(
			func(_ context.Context, _ trace.Span) (string, error) {
				return "partial", lookupErr
			})
		require.ErrorIs(t, err, lookupErr)
		assert.Equal(t, "partial", got, "the function's return value passes through")
	})

	t.Run("nil function yields the zero value", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)

		got, err := spans.StartValErr[[]string](ctx, "noop").Enter(nil)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Empty(t, recorder.Ended())
	})

	t.Run("untraced call still returns the value", func(t *testing.T) {
		t.Parallel()

		got, err := spans.StartValErr[int](context.Background(), "untraced").Enter(
			func(_ context.Context, _ trace.Span) (int, error) {
				return 7, nil
			})
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})
}

func TestSpanOptions(t *testing.T) {
	t.Parallel()

	t.Run("attributes are attached", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)

		err := spans.StartErr(ctx, "merge-runs",
			spans.WithAttribute("elements", attribute.IntValue(128)),
			spans.WithAttribute("container", attribute.StringValue("set")),
		).Enter(func(_ context.Context, _ trace.Span) error {
			return nil
		})
		require.NoError(t, err)

		ended := recorder.Ended()
		require.Len(t, ended, 1)

		elements, ok := attrValue(ended[0], "elements")
		require.True(t, ok)
		assert.Equal(t, int64(128), elements.AsInt64())

		container, ok := attrValue(ended[0], "container")
		require.True(t, ok)
		assert.Equal(t, "set", container.AsString())
	})

	t.Run("span kind", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)

		err := spans.StartErr(ctx, "flush",
			spans.WithSpanKind(trace.SpanKindProducer),
		).Enter(func(_ context.Context, _ trace.Span) error {
			return nil
		})
		require.NoError(t, err)

		ended := recorder.Ended()
		require.Len(t, ended, 1)
		assert.Equal(t, trace.SpanKindProducer, ended[0].SpanKind())
	})

	t.Run("custom success message", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)

		err := spans.StartErr(ctx, "merge-runs",
			spans.WithSuccessMessage("runs merged"),
		).Enter(func(_ context.Context, _ trace.Span) error {
			return nil
		})
		require.NoError(t, err)

		ended := recorder.Ended()
		require.Len(t, ended, 1)
		assert.Equal(t, "runs merged", ended[0].Status().Description)
	})

	t.Run("error message prefixes the status", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)

		err := spans.StartErr(ctx, "merge-runs",
			spans.WithErrorMessage("merge failed"),
		).Enter(func(_ context.Context, _ trace.Span) error {
			return errors.New("runs collided")
		})
		require.Error(t, err)

		ended := recorder.Ended()
		require.Len(t, ended, 1)
		assert.Equal(t, "merge failed: runs collided", ended[0].Status().Description)
	})

	t.Run("raw span start options", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)

		err := spans.StartErr(ctx, "merge-runs",
			spans.WithSpanStartOptions(trace.WithAttributes(
				attribute.Int("runs", 3),
				attribute.Bool("parallel", true),
			)),
		).Enter(func(_ context.Context, _ trace.Span) error {
			return nil
		})
		require.NoError(t, err)

		ended := recorder.Ended()
		require.Len(t, ended, 1)

		runs, ok := attrValue(ended[0], "runs")
		require.True(t, ok)
		assert.Equal(t, int64(3), runs.AsInt64())

		parallel, ok := attrValue(ended[0], "parallel")
		require.True(t, ok)
		assert.True(t, parallel.AsBool())
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		t.Parallel()

		ctx, recorder := tracedContext(t)

		err := spans.StartErr(ctx, "merge-runs", nil,
			spans.WithSuccessMessage("done"),
		).Enter(func(_ context.Context, _ trace.Span) error {
			return nil
		})
		require.NoError(t, err)

		ended := recorder.Ended()
		require.Len(t, ended, 1)
		assert.Equal(t, "done", ended[0].Status().Description)
	})
}

func TestPanicPropagation(t *testing.T) {
	t.Parallel()

	ctx, recorder := tracedContext(t)

	require.PanicsWithValue(t, "comparator exploded", func() {
		_, _ = spans.StartValErr[int](ctx, "sort-batch").Enter(
			func(_ context.Context, _ trace.Span) (int, error) {
				panic("comparator exploded")
			})
	})

	// The span still ends, carrying the panic marker and the recovered
	// error before the panic is re-raised.
	ended := recorder.Ended()
	require.Len(t, ended, 1)

	marker, ok := attrValue(ended[0], "panic")
	require.True(t, ok)
	assert.Equal(t, int64(1), marker.AsInt64())

	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Contains(t, ended[0].Status().Description, "comparator exploded")
	assert.NotEmpty(t, ended[0].Events())
}
