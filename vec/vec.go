// Package vec provides a growable ordered sequence with explicit ownership
// semantics. It is the storage layer underneath the sorted containers:
// positional reads and writes, tail push/pop, range splicing, and binary
// search over a caller-supplied comparator.
//
// Out-of-range indexes are programming errors and panic. Operations whose
// result can legitimately be absent (First, Last, Pop on an empty vector)
// return an optional.Value instead.
package vec

import (
	"fmt"
	"iter"
	"slices"

	"github.com/JohnScience/sorted-vec2/optional"
)

// Vector is a growable ordered sequence of elements. The zero value is an
// empty vector ready for use, though most callers construct one with New,
// Of, or FromSlice.
//
// A Vector owns its backing slice exclusively. Constructors and methods
// that accept a slice take ownership of it; methods that hand a slice back
// either copy (Slice) or transfer ownership and reset the vector (Take).
// Vector is not safe for concurrent use.
type Vector[T any] struct {
	items []T
}

// New returns a new empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns a new empty vector with space preallocated for
// capacity elements.
func WithCapacity[T any](capacity int) *Vector[T] {
	return &Vector[T]{items: make([]T, 0, capacity)}
}

// Of returns a new vector holding the given items in order.
func Of[T any](items ...T) *Vector[T] {
	return &Vector[T]{items: items}
}

// FromSlice returns a new vector that takes ownership of the given slice.
// The caller must not use the slice afterwards.
func FromSlice[T any](items []T) *Vector[T] {
	return &Vector[T]{items: items}
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return len(v.items)
}

// Cap returns the capacity of the vector's backing slice.
func (v *Vector[T]) Cap() int {
	return cap(v.items)
}

// IsEmpty returns true if the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return len(v.items) == 0
}

// At returns the element at index i. It panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("vec: index out of range [%d] with length %d", i, len(v.items)))
	}

	return v.items[i]
}

// First returns the first element, or an empty optional if the vector is
// empty.
func (v *Vector[T]) First() optional.Value[T] {
	if len(v.items) == 0 {
		return optional.None[T]()
	}

	return optional.Some(v.items[0])
}

// Last returns the last element, or an empty optional if the vector is
// empty.
func (v *Vector[T]) Last() optional.Value[T] {
	if len(v.items) == 0 {
		return optional.None[T]()
	}

	return optional.Some(v.items[len(v.items)-1])
}

// Slice returns a copy of the vector's elements. The returned slice is
// independent of the vector.
func (v *Vector[T]) Slice() []T {
	return slices.Clone(v.items)
}

// Take transfers ownership of the backing slice to the caller and leaves
// the vector empty.
func (v *Vector[T]) Take() []T {
	items := v.items
	v.items = nil

	return items
}

// Replace discards the vector's current elements and takes ownership of
// the given slice. The caller must not use the slice afterwards.
func (v *Vector[T]) Replace(items []T) {
	v.items = items
}

// All returns an iterator over index-element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.items)
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return slices.Values(v.items)
}

// Push appends an element to the end of the vector.
func (v *Vector[T]) Push(item T) {
	v.items = append(v.items, item)
}

// Append appends all given elements to the end of the vector.
func (v *Vector[T]) Append(items ...T) {
	v.items = append(v.items, items...)
}

// Pop removes and returns the last element, or an empty optional if the
// vector is empty. The vacated slot is zeroed so the vector does not pin
// the removed element in memory.
func (v *Vector[T]) Pop() optional.Value[T] {
	if len(v.items) == 0 {
		return optional.None[T]()
	}

	last := len(v.items) - 1
	item := v.items[last]

	var zero T
	v.items[last] = zero
	v.items = v.items[:last]

	return optional.Some(item)
}

// InsertAt inserts an element at index i, shifting later elements right.
// Inserting at i == Len() appends. It panics if i is out of range.
func (v *Vector[T]) InsertAt(i int, item T) {
	if i < 0 || i > len(v.items) {
		panic(fmt.Sprintf("vec: insert index out of range [%d] with length %d", i, len(v.items)))
	}

	v.items = slices.Insert(v.items, i, item)
}

// RemoveAt removes and returns the element at index i, shifting later
// elements left. It panics if i is out of range.
func (v *Vector[T]) RemoveAt(i int) T {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("vec: index out of range [%d] with length %d", i, len(v.items)))
	}

	item := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)

	return item
}

// Set replaces the element at index i. It panics if i is out of range.
func (v *Vector[T]) Set(i int, item T) {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("vec: index out of range [%d] with length %d", i, len(v.items)))
	}

	v.items[i] = item
}

// Swap exchanges the elements at indexes i and j. It panics if either
// index is out of range.
func (v *Vector[T]) Swap(i, j int) {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("vec: index out of range [%d] with length %d", i, len(v.items)))
	}

	if j < 0 || j >= len(v.items) {
		panic(fmt.Sprintf("vec: index out of range [%d] with length %d", j, len(v.items)))
	}

	v.items[i], v.items[j] = v.items[j], v.items[i]
}

// Clear removes all elements but keeps the allocated capacity. Vacated
// slots are zeroed.
func (v *Vector[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

// Truncate shortens the vector to n elements, dropping the tail. It is a
// no-op when n >= Len. It panics if n is negative. Vacated slots are
// zeroed.
func (v *Vector[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vec: truncate length out of range [%d]", n))
	}

	if n >= len(v.items) {
		return
	}

	v.items = slices.Delete(v.items, n, len(v.items))
}

// Grow ensures the vector has capacity for at least n more elements
// without reallocating.
func (v *Vector[T]) Grow(n int) {
	v.items = slices.Grow(v.items, n)
}

// Drain removes the elements in the half-open range [from, to) and returns
// an iterator over them. The vector is spliced before Drain returns, so
// the removal happens whether or not the iterator is consumed. It panics
// if the range is invalid.
func (v *Vector[T]) Drain(from, to int) iter.Seq[T] {
	if from < 0 || to > len(v.items) || from > to {
		panic(fmt.Sprintf("vec: drain bounds out of range [%d:%d] with length %d", from, to, len(v.items)))
	}

	removed := make([]T, to-from)
	copy(removed, v.items[from:to])
	v.items = slices.Delete(v.items, from, to)

	return slices.Values(removed)
}

// Retain removes every element for which pred returns false, preserving
// the order of the remaining elements. Vacated slots are zeroed.
func (v *Vector[T]) Retain(pred func(item T) bool) {
	v.items = slices.DeleteFunc(v.items, func(item T) bool {
		return !pred(item)
	})
}

// DedupFunc collapses consecutive runs of equal elements to their first
// element, using eq to decide equality. Only adjacent elements are
// compared, so on a sorted vector this removes all duplicates.
func (v *Vector[T]) DedupFunc(eq func(a, b T) bool) {
	v.items = slices.CompactFunc(v.items, eq)
}

// Search binary-searches for target using cmp and returns the position
// where target is found, or the position where it would appear in sort
// order. The boolean reports whether target was actually found. If there
// are multiple equal elements, Search returns the position of the first.
// The vector must be sorted in ascending order with respect to cmp.
func (v *Vector[T]) Search(target T, cmp func(a, b T) int) (int, bool) {
	return slices.BinarySearchFunc(v.items, target, cmp)
}

// SortFunc sorts the vector in ascending order as determined by cmp. The
// sort is not guaranteed to be stable.
func (v *Vector[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortFunc(v.items, cmp)
}

// IsSortedFunc reports whether the vector is sorted in ascending order
// with respect to cmp.
func (v *Vector[T]) IsSortedFunc(cmp func(a, b T) int) bool {
	return slices.IsSortedFunc(v.items, cmp)
}

// Reverse reverses the order of the elements in place.
func (v *Vector[T]) Reverse() {
	slices.Reverse(v.items)
}

// Clone returns a new vector with a copy of this vector's elements.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{items: slices.Clone(v.items)}
}

// Equal reports whether both vectors hold equal elements in the same
// order, using eq to compare elements pairwise.
func (v *Vector[T]) Equal(other *Vector[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(v.items, other.items, eq)
}

// String returns a string representation of the vector's elements.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("%v", v.items)
}
