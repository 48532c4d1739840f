// Package compare provides utilities for comparing and ordering values.
//
// The package has two halves. The [Comparable] interface lets a type define
// its own equality. The [Func] comparator is what drives the ordered
// containers in this module: it reports the relative order of two values the
// same way the standard library's cmp.Compare does, and the constructors in
// this package build comparators from ordered types, less-than predicates,
// and natural or locale-aware string rules.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Func is a three-way comparator. It returns a negative number when a orders
// before b, zero when the two are equivalent, and a positive number when a
// orders after b.
//
// A Func handed to a sorted container must describe a total order: every pair
// of values must be comparable and the result must be consistent across calls.
// Comparators over domains where some pairs have no defined order (NaN,
// partially ordered keys) are built with the partial package, which turns an
// undefined comparison into a panic instead of a silent misordering.
type Func[T any] func(a, b T) int

// Equal reports whether a and b are equivalent under f.
func Equal[T any](f Func[T], a, b T) bool {
	return f(a, b) == 0
}

// Natural returns a comparator for types with a built-in order, with the same
// semantics as cmp.Compare. For floating-point types a NaN is considered less
// than any non-NaN and equal to another NaN; use the partial package to treat
// NaN comparisons as errors instead.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reversed returns a comparator with the opposite order of f.
// Reversing twice restores the original order.
func Reversed[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// FromLess adapts a strict less-than predicate into a three-way comparator.
// Two values are considered equivalent when neither is less than the other.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// ByKey orders values by a key derived from each value. Values whose keys
// compare equal are equivalent, even if the values themselves differ.
func ByKey[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}
