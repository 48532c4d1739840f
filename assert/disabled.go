//go:build assertions_disabled

package assert

// True is a no-op under the assertions_disabled build tag.
func True(value bool, args ...any) {
}

// False is a no-op under the assertions_disabled build tag.
func False(value bool, args ...any) {
}

// Nil is a no-op under the assertions_disabled build tag.
func Nil(value any, args ...any) {
}

// NotNil is a no-op under the assertions_disabled build tag.
func NotNil(value any, args ...any) {
}

// SortedFunc is a no-op under the assertions_disabled build tag.
func SortedFunc[T any](items []T, cmp func(a, b T) int, args ...any) {
}
