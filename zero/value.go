// Package zero provides the zero value of a generic type parameter.
package zero

// Value returns the zero value for type T. It reads better than declaring
// a throwaway variable when generic code needs an explicit zero, for
// example when returning early from a function with a generic result.
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
