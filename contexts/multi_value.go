package contexts

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// WithMultipleValues attaches a batch of key-value pairs to a context in
// a single wrapper instead of one nested context per pair. That keeps
// the context chain shallow when many values travel together, as with
// the identifiers the test helpers attach to every test context.
//
// Keys are looked up with exact type matching: a stored key of type Key
// is only found when Value is called with a key of exactly that type.
// Panics when parent or vals is nil.
func WithMultipleValues[Key comparable](parent context.Context, vals map[Key]any) context.Context {
	if parent == nil {
		panic("cannot create context from nil parent")
	}

	if vals == nil {
		panic("nil vals passed to WithMultipleValues")
	}

	return &multiValueCtx[Key]{parent, vals}
}

// multiValueCtx wraps a parent context with a map of values. Value
// checks the map first and falls back to the parent, so local entries
// shadow parent entries with the same key.
type multiValueCtx[Key comparable] struct {
	context.Context //nolint:containedctx

	vals map[Key]any
}

func (c *multiValueCtx[T]) Value(key any) any {
	if typed, ok := key.(T); ok && reflect.TypeOf(key) == reflect.TypeFor[T]() {
		if v, found := c.vals[typed]; found {
			return v
		}
	}

	return c.Context.Value(key)
}

// String renders the parent context followed by the stored pairs, for
// debugging. Pair order is not deterministic.
func (c *multiValueCtx[T]) String() string {
	pairs := make([]string, 0, len(c.vals))

	for k, v := range c.vals {
		pairs = append(pairs, stringify(k)+"="+stringify(v))
	}

	return stringify(c.Context) + ".WithMultipleValues(" + strings.Join(pairs, ", ") + ")"
}

// stringify renders a value for String output: Stringer and string
// values as themselves, nil as "<nil>", anything else as its type name.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return "<nil>"
	case fmt.Stringer:
		return s.String()
	case string:
		return s
	default:
		return reflect.TypeOf(v).String()
	}
}
