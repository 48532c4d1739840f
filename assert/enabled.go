//go:build !assertions_disabled

package assert

import (
	"fmt"
	"slices"
)

// True panics unless value is true. The optional args shape the panic
// message: a leading string is treated as a format string for the
// remaining args, anything else is dumped into a generic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// False panics unless value is false. Message args work as in True.
func False(value bool, args ...any) {
	True(!value, args...)
}

// Nil panics unless value is nil. A typed nil pointer stored in an
// interface is not nil. Message args work as in True.
func Nil(value any, args ...any) {
	True(value == nil, args...)
}

// NotNil panics when value is nil. Message args work as in True.
func NotNil(value any, args ...any) {
	True(value != nil, args...)
}

// SortedFunc panics unless items is sorted in ascending order under
// cmp. Message args work as in True.
func SortedFunc[T any](items []T, cmp func(a, b T) int, args ...any) {
	True(slices.IsSortedFunc(items, cmp), args...)
}
