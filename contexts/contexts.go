// Package contexts provides small helpers on top of context.Context:
// nil-safe defaulting, liveness checks, and type-safe value storage.
package contexts

import "context"

// EnsureContext returns the first non-nil context given, or a fresh
// background context when there is none. It lets exported entry points
// accept a nil context without sprinkling nil checks downstream.
func EnsureContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// IsContextAlive reports whether the context is still usable, meaning it
// is non-nil and not yet done. The check never blocks.
func IsContextAlive(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	select {
	case <-ctx.Done():
		return false
	default:
		return true
	}
}

// WithValue stores a value on the context with compile-time key and
// value types. A nil ctx is replaced with a background context.
func WithValue[K any, V any](ctx context.Context, key K, value V) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, key, value)
}

// GetValue retrieves a value stored with WithValue. The boolean is false
// when ctx is nil, the key is absent, or the stored value has a
// different type than V.
func GetValue[K any, V any](ctx context.Context, key K) (V, bool) {
	var zero V

	if ctx == nil {
		return zero, false
	}

	v, ok := ctx.Value(key).(V)
	if !ok {
		return zero, false
	}

	return v, true
}
