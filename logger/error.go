package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to an error. The pairs ride
// along through any amount of fmt.Errorf("%w") wrapping, and a handler
// installed by ConfigureLogging unpacks them into the record when the
// error is finally logged. Context gets attached where it is known, not
// where the error surfaces.
//
// Example:
//
//	err := mergeShards(ctx, shards)
//	if err != nil {
//	    return AnnotateError(err, "shards", len(shards), "operation", "merge")
//	}
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	// Borrow slog's own pairing rules for the loose args, including its
	// handling of dangling keys.
	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var attrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &annotatedError{cause: err, attrs: attrs}
}

// annotatedError carries slog attributes alongside the error they
// describe. Error and Unwrap delegate to the cause, so errors.Is and
// errors.As see through the annotation.
type annotatedError struct {
	cause error
	attrs []slog.Attr
}

var _ error = (*annotatedError)(nil)

func (a *annotatedError) Error() string {
	return a.cause.Error()
}

func (a *annotatedError) Unwrap() error {
	return a.cause
}

// errorAttrHandler decorates a slog.Handler with annotation unpacking:
// error attributes produced by AnnotateError are split back into the
// plain error plus its attached attributes before the record reaches the
// wrapped handler.
type errorAttrHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*errorAttrHandler)(nil)

func (h *errorAttrHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle rewrites the record's error attributes before delegating:
//   - An annotated error is replaced with its underlying error, and the
//     embedded attributes are added to the record.
//   - A joined error (errors.Join) is expanded into one indexed attribute
//     per branch ("err" becomes "err[0]", "err[1]", ...), each branch
//     rewritten recursively.
//   - Any other attribute passes through unchanged.
//
// Records without any annotated or joined errors are forwarded as-is.
func (h *errorAttrHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		attrs     []slog.Attr
		rewritten bool
	)

	record.Attrs(func(attr slog.Attr) bool {
		err, ok := attr.Value.Any().(error)
		if !ok {
			attrs = append(attrs, attr)

			return true
		}

		expanded, changed := expandErrorAttr(attr.Key, err)
		if changed {
			rewritten = true
		}

		attrs = append(attrs, expanded...)

		return true
	})

	if !rewritten {
		return h.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(attrs...)

	return h.inner.Handle(ctx, r)
}

// expandErrorAttr rewrites a single error attribute. The second return value
// reports whether the result differs from the original attribute.
func expandErrorAttr(key string, err error) ([]slog.Attr, bool) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var attrs []slog.Attr

		for i, branch := range joined.Unwrap() {
			sub, _ := expandErrorAttr(fmt.Sprintf("%s[%d]", key, i), branch)
			attrs = append(attrs, sub...)
		}

		return attrs, true
	}

	var annotated *annotatedError

	if errors.As(err, &annotated) {
		attrs := []slog.Attr{{Key: key, Value: slog.AnyValue(annotated.cause)}}

		return append(attrs, annotated.attrs...), true
	}

	return []slog.Attr{{Key: key, Value: slog.AnyValue(err)}}, false
}

// WithAttrs and WithGroup rewrap the derived inner handler so unpacking
// survives logger.With and group scoping.

func (h *errorAttrHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errorAttrHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *errorAttrHandler) WithGroup(name string) slog.Handler {
	return &errorAttrHandler{inner: h.inner.WithGroup(name)}
}
