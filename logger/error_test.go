//nolint:err113 // Test file uses errors.New() for creating test errors
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture returns a handler that extracts annotated errors and writes
// JSON records into the returned buffer.
func capture() (*bytes.Buffer, *errorAttrHandler) {
	var buf bytes.Buffer

	return &buf, &errorAttrHandler{inner: slog.NewJSONHandler(&buf, nil)}
}

func handleError(t *testing.T, handler *errorAttrHandler, msg string, attrs ...slog.Attr) {
	t.Helper()

	record := slog.NewRecord(time.Now(), slog.LevelError, msg, 0)
	record.AddAttrs(attrs...)

	require.NoError(t, handler.Handle(context.Background(), record))
}

func TestAnnotateError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, AnnotateError(nil, "key", "value"))
	})

	t.Run("records key-value pairs", func(t *testing.T) {
		t.Parallel()

		base := errors.New("merge failed")
		annotated := AnnotateError(base, "phase", "merge", "runs", 7)

		require.Error(t, annotated)
		assert.Equal(t, "merge failed", annotated.Error())

		var se *annotatedError
		require.ErrorAs(t, annotated, &se)
		assert.Equal(t, base, se.cause)
		require.Len(t, se.attrs, 2)
		assert.Equal(t, "phase", se.attrs[0].Key)
		assert.Equal(t, "merge", se.attrs[0].Value.Any())
		assert.Equal(t, "runs", se.attrs[1].Key)
		assert.Equal(t, int64(7), se.attrs[1].Value.Any())
	})

	t.Run("no attributes is allowed", func(t *testing.T) {
		t.Parallel()

		var se *annotatedError
		require.ErrorAs(t, AnnotateError(errors.New("bare")), &se)
		assert.Empty(t, se.attrs)
	})

	t.Run("wrapping stays transparent to errors.Is and As", func(t *testing.T) {
		t.Parallel()

		base := errors.New("root cause")
		annotated := AnnotateError(base, "phase", "sort")

		assert.ErrorIs(t, annotated, base)
		assert.Equal(t, base, errors.Unwrap(annotated))

		custom := &opError{msg: "stamped"}

		var te *opError
		require.ErrorAs(t, AnnotateError(custom, "k", "v"), &te)
		assert.Equal(t, "stamped", te.msg)
	})

	t.Run("annotating twice layers the attributes", func(t *testing.T) {
		t.Parallel()

		inner := AnnotateError(errors.New("base"), "phase", "sort")
		outer := AnnotateError(inner, "job_id", "j-1")

		var se *annotatedError
		require.ErrorAs(t, outer, &se)
		require.Len(t, se.attrs, 1)
		assert.Equal(t, "job_id", se.attrs[0].Key)

		// The inner layer stays reachable through the chain.
		require.ErrorAs(t, errors.Unwrap(outer), &se)
		require.Len(t, se.attrs, 1)
		assert.Equal(t, "phase", se.attrs[0].Key)
	})
}

func TestHandlerEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := &errorAttrHandler{inner: slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})}

	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
}

func TestHandlerExtraction(t *testing.T) {
	t.Parallel()

	t.Run("plain errors pass through untouched", func(t *testing.T) {
		t.Parallel()

		buf, handler := capture()
		handleError(t, handler, "sort failed", slog.Any("error", errors.New("plain error")))

		assert.Contains(t, buf.String(), "sort failed")
		assert.Contains(t, buf.String(), "plain error")
	})

	t.Run("annotated attributes surface on the record", func(t *testing.T) {
		t.Parallel()

		buf, handler := capture()
		annotated := AnnotateError(errors.New("bad shard"), "shard", 3, "len", 4096)

		handleError(t, handler, "sort failed", slog.Any("error", annotated))

		var logData map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))

		assert.Equal(t, "bad shard", logData["error"])
		assert.InDelta(t, 3, logData["shard"], 0.001)
		assert.InDelta(t, 4096, logData["len"], 0.001)
	})

	t.Run("unrelated attributes survive the rewrite", func(t *testing.T) {
		t.Parallel()

		buf, handler := capture()
		annotated := AnnotateError(errors.New("bad shard"), "shard", 3)

		handleError(t, handler, "sort failed",
			slog.String("job_id", "j-9"),
			slog.Any("error", annotated),
			slog.Int("items", 100),
		)

		var logData map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))

		assert.Equal(t, "j-9", logData["job_id"])
		assert.InDelta(t, 100, logData["items"], 0.001)
		assert.InDelta(t, 3, logData["shard"], 0.001)
	})

	t.Run("plain error beside an annotated one is kept", func(t *testing.T) {
		t.Parallel()

		buf, handler := capture()
		annotated := AnnotateError(errors.New("annotated"), "shard", 1)

		handleError(t, handler, "two errors",
			slog.Any("first", annotated),
			slog.Any("second", errors.New("plain")),
		)

		assert.Contains(t, buf.String(), "annotated")
		assert.Contains(t, buf.String(), "plain")
	})
}

func TestHandlerJoinedErrors(t *testing.T) {
	t.Parallel()

	t.Run("branches get indexed keys", func(t *testing.T) {
		t.Parallel()

		buf, handler := capture()
		joined := errors.Join(
			AnnotateError(errors.New("shard one failed"), "shard", 1),
			AnnotateError(errors.New("shard two failed"), "shard", 2),
			errors.New("shard three failed"),
		)

		handleError(t, handler, "batch failed", slog.Any("error", joined))

		var logData map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))

		assert.Equal(t, "shard one failed", logData["error[0]"])
		assert.Equal(t, "shard two failed", logData["error[1]"])
		assert.Equal(t, "shard three failed", logData["error[2]"])
	})

	t.Run("branch attributes are extracted", func(t *testing.T) {
		t.Parallel()

		buf, handler := capture()
		joined := errors.Join(
			AnnotateError(errors.New("sort failed"), "phase", "sort"),
			AnnotateError(errors.New("merge failed"), "phase", "merge"),
		)

		handleError(t, handler, "batch failed", slog.Any("error", joined))

		assert.Contains(t, buf.String(), "sort failed")
		assert.Contains(t, buf.String(), "merge failed")
		assert.Contains(t, buf.String(), "phase")
	})

	t.Run("nested joins nest the indexes", func(t *testing.T) {
		t.Parallel()

		buf, handler := capture()
		inner := errors.Join(errors.New("one"), errors.New("two"))
		outer := errors.Join(inner, errors.New("three"))

		handleError(t, handler, "nested", slog.Any("error", outer))

		var logData map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))

		assert.Equal(t, "one", logData["error[0][0]"])
		assert.Equal(t, "two", logData["error[0][1]"])
		assert.Equal(t, "three", logData["error[1]"])
	})
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	t.Run("WithAttrs keeps extraction", func(t *testing.T) {
		t.Parallel()

		buf, handler := capture()

		derived, ok := handler.WithAttrs([]slog.Attr{slog.String("host", "box-1")}).(*errorAttrHandler)
		require.True(t, ok)

		annotated := AnnotateError(errors.New("boom"), "shard", 5)
		record := slog.NewRecord(time.Now(), slog.LevelInfo, "derived", 0)
		record.AddAttrs(slog.Any("error", annotated))

		require.NoError(t, derived.Handle(context.Background(), record))

		assert.Contains(t, buf.String(), "box-1")
		assert.Contains(t, buf.String(), "shard")
	})

	t.Run("WithGroup keeps extraction", func(t *testing.T) {
		t.Parallel()

		buf, handler := capture()

		derived, ok := handler.WithGroup("batch").(*errorAttrHandler)
		require.True(t, ok)

		annotated := AnnotateError(errors.New("boom"), "shard", 5)
		record := slog.NewRecord(time.Now(), slog.LevelInfo, "grouped", 0)
		record.AddAttrs(slog.Any("error", annotated))

		require.NoError(t, derived.Handle(context.Background(), record))

		assert.Contains(t, buf.String(), "batch")
		assert.Contains(t, buf.String(), "shard")
	})
}

// The integration tests reconfigure the process-wide default logger, so
// they do not run in parallel.
func TestAnnotatedErrorLogging(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "error-test",
		JSON:      true,
		Output:    &buf,
	})

	annotated := AnnotateError(errors.New("merge failed"), "round", 2, "runs", 5)
	ctx := With(context.Background(), "job_id", "job-123")

	Get(ctx).Error("could not build vector", "error", annotated)

	output := buf.String()
	assert.Contains(t, output, "error-test")
	assert.Contains(t, output, "job-123")
	assert.Contains(t, output, "merge failed")
	assert.Contains(t, output, "round")
	assert.Contains(t, output, "runs")
}

func TestJoinedErrorLogging(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "join-test",
		JSON:      true,
		Output:    &buf,
	})

	combined := errors.Join(
		AnnotateError(errors.New("sort failed"), "shard", 0, "len", 4096),
		AnnotateError(errors.New("unsorted input"), "index", 17),
	)

	Get(context.Background()).Error("shards failed", "error", combined)

	output := buf.String()
	assert.Contains(t, output, "sort failed")
	assert.Contains(t, output, "unsorted input")
	assert.Contains(t, output, "4096")
	assert.Contains(t, output, "index")
}

// opError exists to exercise errors.As through an annotation.
type opError struct {
	msg string
}

func (e *opError) Error() string {
	return e.msg
}
