// Package errors holds the error values and accumulation helpers shared
// across this module. Domain-specific sentinels live next to the code that
// returns them; only errors with more than one owner belong here.
package errors

import (
	"errors"
	"fmt"
)

// ErrWrongType indicates a runtime type assertion against an unexpected type.
var ErrWrongType = errors.New("wrong type")

// ErrPanic is the sentinel wrapped by errors built from recovered panics.
var ErrPanic = errors.New("recovered from panic")

// FromPanic converts a value recovered from a panic into an error wrapping
// ErrPanic. Panic values that are themselves errors stay reachable through
// errors.Is and errors.As; other values are formatted with %v. A non-nil
// stack trace is appended to the message. Returns nil when val is nil.
func FromPanic(val any, stack []byte) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok {
		if stack != nil {
			return fmt.Errorf("%w: %w\nstack trace:\n%s", ErrPanic, err, string(stack))
		}

		return fmt.Errorf("%w: %w", ErrPanic, err)
	}

	if stack != nil {
		return fmt.Errorf("%w: %v\nstack trace:\n%s", ErrPanic, val, string(stack))
	}

	return fmt.Errorf("%w: %v", ErrPanic, val)
}

// Collection accumulates errors from a sequence of operations so they can
// be reported as one. It is not safe for concurrent use; have each
// goroutine collect into its own Collection and merge afterwards.
type Collection struct {
	errors []error
}

// Add records err. Nil errors are ignored, so results can be added
// unconditionally.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear drops every recorded error, making the collection reusable.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError reports whether at least one error has been recorded.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// Errors returns the collected errors in the order they were added.
// The returned slice is a copy; mutating it does not affect the collection.
func (c *Collection) Errors() []error {
	if len(c.errors) == 0 {
		return nil
	}

	out := make([]error, len(c.errors))
	copy(out, c.errors)

	return out
}

// GetError reduces the collection to a single error value: nil when
// nothing was recorded, the error itself when there is exactly one, and
// an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
