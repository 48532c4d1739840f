// Package assert provides type assertion utilities with error handling,
// plus a set of panic-on-failure invariant checks. The invariant checks
// (True, False, Nil, NotNil, SortedFunc) can be compiled out with the
// assertions_disabled build tag; Type is always available.
package assert

import (
	"fmt"

	"github.com/JohnScience/sorted-vec2/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error indicating the mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}
