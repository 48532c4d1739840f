// Package sortable provides wrapper types that give primitive values an intrinsic sort order.
package sortable

import (
	"github.com/JohnScience/sorted-vec2/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// CompareFunc derives a three-way comparator from a Sortable implementation.
// Values for which LessThan holds in neither direction are considered
// equivalent, even when Equals would distinguish them.
func CompareFunc[T Sortable[T]]() compare.Func[T] {
	return func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case b.LessThan(a):
			return 1
		default:
			return 0
		}
	}
}
