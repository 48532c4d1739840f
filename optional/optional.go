// Package optional models a value that may be absent. An absent value
// is not a nil pointer or a sentinel but an explicit state, so callers
// must decide what absence means before they can touch the value.
//
// Throughout this module, operations whose result can legitimately be
// absent (removing an element that is not there, popping an empty
// container) return a Value instead of a sentinel or a panic.
package optional

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
)

var errMissingValueField = errors.New("optional: missing 'value' field in JSON")

// Value holds either one value of type T or nothing. The zero value of
// Value is the absent state. Build a present Value with Some and an
// absent one with None.
type Value[T any] struct {
	val     T
	present bool
}

// Some returns a Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{val: v, present: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// All returns an iterator yielding the value when present and nothing
// when absent, so a Value can drive a range loop.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.val)
		}
	}
}

// ForEach calls f with the value when present and does nothing when
// absent.
func (o Value[T]) ForEach(f func(T)) {
	for v := range o.All() {
		f(v)
	}
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.present
}

// Empty reports whether the Value is absent.
func (o Value[T]) Empty() bool {
	return !o.present
}

// Get returns the value and whether it is present. This is the
// comma-ok way to unpack a Value.
func (o Value[T]) Get() (T, bool) {
	return o.val, o.present
}

// GetOrPanic returns the value or panics when absent. Reserve it for
// spots where presence was already established.
func (o Value[T]) GetOrPanic() T {
	if !o.present {
		panic("called GetOrPanic on None")
	}

	return o.val
}

// GetOrElse returns the value when present, or defaultValue otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.present {
		return o.val
	}

	return defaultValue
}

// GetOrElseFunc returns the value when present, or the result of
// defaultFunc otherwise. The callback only runs in the absent case,
// which matters when the default is expensive to build.
func (o Value[T]) GetOrElseFunc(defaultFunc func() T) T {
	if o.present {
		return o.val
	}

	return defaultFunc()
}

// OrElse returns this Value when present, or alternative otherwise.
func (o Value[T]) OrElse(alternative Value[T]) Value[T] {
	if o.present {
		return o
	}

	return alternative
}

// OrElseFunc returns this Value when present, or the result of
// alternativeFunc otherwise. The callback only runs in the absent case.
func (o Value[T]) OrElseFunc(alternativeFunc func() Value[T]) Value[T] {
	if o.present {
		return o
	}

	return alternativeFunc()
}

// Equals reports whether two Values are both absent, or both present
// with values equal under eq.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.present != other.present {
		return false
	}

	if !o.present {
		return true
	}

	return eq(o.val, other.val)
}

// Filter returns this Value when it holds a value satisfying the
// predicate, or None otherwise.
func (o Value[T]) Filter(predicate func(T) bool) Value[T] {
	if o.present && predicate(o.val) {
		return o
	}

	return None[T]()
}

// Size returns 1 when a value is present and 0 when absent, treating
// the Value as a set of at most one element.
func (o Value[T]) Size() int {
	if o.present {
		return 1
	}

	return 0
}

// String renders the Value as "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.val)
	}

	return "None"
}

// Map applies f to the value when present, producing a Value of the
// result type. An absent input stays absent.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.present {
		return Some(f(o.val))
	}

	return None[U]()
}

// FlatMap applies f to the value when present, where f itself returns a
// Value. This chains absence-producing steps without nesting.
func FlatMap[T any, U any](o Value[T], f func(T) Value[U]) Value[U] {
	if o.present {
		return f(o.val)
	}

	return None[U]()
}

// MarshalJSON encodes None as null and Some(v) as {"value": v}.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}

	return json.Marshal(struct {
		Value T `json:"value"`
	}{o.val})
}

// UnmarshalJSON decodes null as None and {"value": v} as Some(v).
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		var zero T

		o.val = zero
		o.present = false

		return nil
	}

	var wrapper map[string]T
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	v, ok := wrapper["value"]
	if !ok {
		return errMissingValueField
	}

	o.val = v
	o.present = true

	return nil
}
