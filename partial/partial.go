// Package partial builds comparators for domains where some pairs of values
// have no defined order.
//
// The sorted containers require a total order, and a comparator that quietly
// invents an order for an incomparable pair (the usual treatment of NaN)
// corrupts the container's sortedness without any visible failure. The
// adapters here take the opposite stance: comparing an incomparable pair is a
// fatal condition. The returned comparator panics with a [*CompareError]
// wrapping [ErrIncomparable], and the panic propagates out of whichever
// container operation invoked the comparison. Nothing in the containers
// recovers it; callers that can tolerate the failure recover it themselves
// and identify it with errors.Is.
package partial

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"github.com/JohnScience/sorted-vec2/compare"
)

// ErrIncomparable is the sentinel wrapped by the panic raised when a
// comparator meets a pair of values with no defined order.
var ErrIncomparable = errors.New("values are incomparable")

// CompareError carries the two operands of a failed comparison. It wraps
// ErrIncomparable so recover sites can identify the failure with errors.Is.
type CompareError struct {
	A any
	B any
}

// Compile-time check that CompareError implements error.
var _ error = (*CompareError)(nil)

// Error returns the failure message with both operands.
func (e *CompareError) Error() string {
	return fmt.Sprintf("%s: %v and %v", ErrIncomparable, e.A, e.B)
}

// Unwrap returns ErrIncomparable, supporting errors.Is on recovered values.
func (e *CompareError) Unwrap() error {
	return ErrIncomparable
}

// FromPartial adapts a partial comparator into one the sorted containers can
// use. The partial comparator reports ok=false when the pair has no defined
// order; the returned comparator then panics with a *CompareError instead of
// returning.
func FromPartial[T any](f func(a, b T) (result int, ok bool)) compare.Func[T] {
	return func(a, b T) int {
		result, ok := f(a, b)
		if !ok {
			panic(&CompareError{A: a, B: b})
		}

		return result
	}
}

// Float64 returns a comparator for float64 values that panics on NaN
// operands instead of ordering them arbitrarily.
func Float64() compare.Func[float64] {
	return FromPartial(func(a, b float64) (int, bool) {
		if math.IsNaN(a) || math.IsNaN(b) {
			return 0, false
		}

		return cmp.Compare(a, b), true
	})
}

// Float32 returns a comparator for float32 values that panics on NaN
// operands instead of ordering them arbitrarily.
func Float32() compare.Func[float32] {
	return FromPartial(func(a, b float32) (int, bool) {
		if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
			return 0, false
		}

		return cmp.Compare(a, b), true
	})
}
