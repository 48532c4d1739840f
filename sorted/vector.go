package sorted

import (
	"cmp"
	"hash"
	"iter"

	"github.com/JohnScience/sorted-vec2/assert"
	"github.com/JohnScience/sorted-vec2/compare"
	"github.com/JohnScience/sorted-vec2/hashing"
	"github.com/JohnScience/sorted-vec2/optional"
	"github.com/JohnScience/sorted-vec2/sortable"
	"github.com/JohnScience/sorted-vec2/vec"
)

// Vector is a vector whose elements are always in ascending order for its
// comparator. Duplicate elements are allowed; equal elements form adjacent
// runs. Use Set for a container that keeps one element per equivalence
// class.
//
// The zero value has no comparator and is not usable; construct a Vector
// with New, FromUnsorted, NewOrdered, or one of the other constructors.
// Vector is not safe for concurrent use.
type Vector[T any] struct {
	cmp   compare.Func[T]
	items vec.Vector[T]
}

// New returns a new empty vector ordered by cmp.
func New[T any](cmp compare.Func[T]) *Vector[T] {
	assert.True(cmp != nil, "sorted: comparator must not be nil")

	return &Vector[T]{cmp: cmp}
}

// WithCapacity returns a new empty vector ordered by cmp, with space
// preallocated for capacity elements.
func WithCapacity[T any](cmp compare.Func[T], capacity int) *Vector[T] {
	assert.True(cmp != nil, "sorted: comparator must not be nil")

	return &Vector[T]{cmp: cmp, items: *vec.WithCapacity[T](capacity)}
}

// FromUnsorted returns a new vector holding the given items in sorted
// order. It takes ownership of the slice and sorts it in place; the sort
// is not stable, so the relative order of equal elements is unspecified.
// The caller must not use the slice afterwards.
func FromUnsorted[T any](cmp compare.Func[T], items []T) *Vector[T] {
	assert.True(cmp != nil, "sorted: comparator must not be nil")

	v := &Vector[T]{cmp: cmp, items: *vec.FromSlice(items)}
	v.items.SortFunc(cmp)

	return v
}

// FromSorted returns a new vector that takes ownership of the given
// already-sorted slice. It returns ErrUnsorted if the elements are not in
// ascending order for cmp; ownership does not transfer on error.
func FromSorted[T any](cmp compare.Func[T], items []T) (*Vector[T], error) {
	assert.True(cmp != nil, "sorted: comparator must not be nil")

	if err := validateSorted(cmp, items, false); err != nil {
		return nil, err
	}

	return &Vector[T]{cmp: cmp, items: *vec.FromSlice(items)}, nil
}

// NewOrdered returns a new empty vector of a naturally ordered type,
// sorted ascending.
func NewOrdered[T cmp.Ordered]() *Vector[T] {
	return New(compare.Natural[T]())
}

// ReverseOrdered returns a new empty vector of a naturally ordered type,
// sorted descending.
func ReverseOrdered[T cmp.Ordered]() *Vector[T] {
	return New(compare.Reversed(compare.Natural[T]()))
}

// NewSortable returns a new empty vector ordered by the element type's own
// LessThan method.
func NewSortable[T sortable.Sortable[T]]() *Vector[T] {
	return New(sortable.CompareFunc[T]())
}

// Insert adds an element at its sorted position and returns the index it
// landed at. When equal elements are present, the new element is placed at
// the leftmost position of the equal run.
func (v *Vector[T]) Insert(item T) int {
	i, _ := v.items.Search(item, v.cmp)
	v.items.InsertAt(i, item)

	return i
}

// FindOrInsert returns the index of an element equal to item if one is
// present; otherwise it inserts item at its sorted position. The result
// reports which of the two happened. The container is never left with a
// new duplicate.
func (v *Vector[T]) FindOrInsert(item T) FindOrInsertResult {
	i, found := v.items.Search(item, v.cmp)
	if found {
		return foundAt(i)
	}

	v.items.InsertAt(i, item)

	return insertedAt(i)
}

// Extend inserts each of the given items at its sorted position, in the
// order given.
func (v *Vector[T]) Extend(items ...T) {
	for _, item := range items {
		v.Insert(item)
	}
}

// ExtendSeq inserts each element yielded by seq at its sorted position.
func (v *Vector[T]) ExtendSeq(seq iter.Seq[T]) {
	for item := range seq {
		v.Insert(item)
	}
}

// Search binary-searches for an element equal to item and returns its
// index, or the index where item would be inserted. The boolean reports
// whether an equal element was found. With duplicates present, the index
// points at the first element of the equal run.
func (v *Vector[T]) Search(item T) (int, bool) {
	return v.items.Search(item, v.cmp)
}

// Contains reports whether an element equal to item is present.
func (v *Vector[T]) Contains(item T) bool {
	_, found := v.items.Search(item, v.cmp)

	return found
}

// Count returns the number of elements equal to item. Equal elements are
// adjacent, so this walks the run starting at the leftmost match.
func (v *Vector[T]) Count(item T) int {
	i, found := v.items.Search(item, v.cmp)
	if !found {
		return 0
	}

	count := 0
	for ; i < v.items.Len() && v.cmp(v.items.At(i), item) == 0; i++ {
		count++
	}

	return count
}

// RemoveItem removes the first element equal to item and returns the index
// it occupied, or an empty optional if no equal element was present.
func (v *Vector[T]) RemoveItem(item T) optional.Value[int] {
	i, found := v.items.Search(item, v.cmp)
	if !found {
		return optional.None[int]()
	}

	v.items.RemoveAt(i)

	return optional.Some(i)
}

// RemoveIndex removes and returns the element at index i. It panics if i
// is out of range.
func (v *Vector[T]) RemoveIndex(i int) T {
	return v.items.RemoveAt(i)
}

// Pop removes and returns the largest element, or an empty optional if the
// vector is empty.
func (v *Vector[T]) Pop() optional.Value[T] {
	return v.items.Pop()
}

// Clear removes all elements but keeps the allocated capacity.
func (v *Vector[T]) Clear() {
	v.items.Clear()
}

// Dedup removes all but the first element of every run of equal elements.
func (v *Vector[T]) Dedup() {
	v.items.DedupFunc(func(a, b T) bool {
		return v.cmp(a, b) == 0
	})
}

// DedupByKey removes all but the first element of every run of elements
// sharing the same key. This is a package function rather than a method
// because the key type is an extra type parameter.
func DedupByKey[T any, K comparable](v *Vector[T], key func(item T) K) {
	v.items.DedupFunc(func(a, b T) bool {
		return key(a) == key(b)
	})
}

// Retain removes every element for which pred returns false. The
// remaining elements keep their order, so the vector stays sorted.
func (v *Vector[T]) Retain(pred func(item T) bool) {
	v.items.Retain(pred)
}

// Drain removes the elements in the half-open index range [from, to) and
// returns an iterator over them in ascending order. The removal happens
// before Drain returns, whether or not the iterator is consumed. It panics
// if the range is invalid.
func (v *Vector[T]) Drain(from, to int) iter.Seq[T] {
	return v.items.Drain(from, to)
}

// Mutate hands the backing slice to f for arbitrary modification,
// including reassignment. When f finishes the vector re-sorts itself, so
// the ordering guarantee holds again by the time Mutate returns. The
// re-sort also runs if f panics, which keeps the vector usable after the
// panic is recovered further up the stack.
//
// Use MutateValue when the closure needs to hand a result back.
func (v *Vector[T]) Mutate(f func(items *[]T)) {
	items := v.items.Take()

	defer func() {
		v.items.Replace(items)
		v.items.SortFunc(v.cmp)
		assert.SortedFunc(items, v.cmp, "sorted: vector unsorted after mutate")
	}()

	f(&items)
}

// Mutable is satisfied by the sorted containers' Mutate method.
type Mutable[T any] interface {
	Mutate(f func(items *[]T))
}

// MutateValue runs f against the container's backing slice via Mutate and
// returns f's result. Order is restored on every exit path, exactly as
// with Mutate.
func MutateValue[T any, R any](c Mutable[T], f func(items *[]T) R) R {
	var result R

	c.Mutate(func(items *[]T) {
		result = f(items)
	})

	return result
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.items.Len()
}

// IsEmpty returns true if the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.items.IsEmpty()
}

// At returns the element at index i. It panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	return v.items.At(i)
}

// First returns the smallest element, or an empty optional if the vector
// is empty.
func (v *Vector[T]) First() optional.Value[T] {
	return v.items.First()
}

// Last returns the largest element, or an empty optional if the vector is
// empty.
func (v *Vector[T]) Last() optional.Value[T] {
	return v.items.Last()
}

// Slice returns a copy of the elements in sorted order.
func (v *Vector[T]) Slice() []T {
	return v.items.Slice()
}

// IntoSlice transfers ownership of the backing slice to the caller and
// leaves the vector empty. The returned slice is sorted.
func (v *Vector[T]) IntoSlice() []T {
	return v.items.Take()
}

// All returns an iterator over index-element pairs in ascending order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return v.items.All()
}

// Values returns an iterator over the elements in ascending order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return v.items.Values()
}

// Comparator returns the comparator the vector orders by.
func (v *Vector[T]) Comparator() compare.Func[T] {
	return v.cmp
}

// Clone returns a new vector with the same comparator and a copy of the
// elements.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{cmp: v.cmp, items: *v.items.Clone()}
}

// Reversed returns a new vector holding a copy of the elements under the
// inverted comparator, so iteration runs largest to smallest. The receiver
// is unchanged.
func (v *Vector[T]) Reversed() *Vector[T] {
	items := v.items.Clone()
	items.Reverse()

	return &Vector[T]{cmp: compare.Reversed(v.cmp), items: *items}
}

// Equal reports whether both vectors hold pairwise equal elements, using
// the receiver's comparator for equality.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	return v.items.Equal(&other.items, func(a, b T) bool {
		return v.cmp(a, b) == 0
	})
}

// String returns a string representation of the elements in sorted order.
func (v *Vector[T]) String() string {
	return v.items.String()
}

// UpdateHash folds the vector's length and every element into h, giving
// structurally equal vectors equal digests. Elements must implement
// hashing.Hashable; the first element that does not aborts with an error.
func (v *Vector[T]) UpdateHash(h hash.Hash) error {
	if err := hashing.HashableInt(v.items.Len()).UpdateHash(h); err != nil {
		return err
	}

	for item := range v.items.Values() {
		hashable, err := assert.Type[hashing.Hashable](item)
		if err != nil {
			return err
		}

		if err := hashable.UpdateHash(h); err != nil {
			return err
		}
	}

	return nil
}

var _ hashing.Hashable = (*Vector[hashing.HashableString])(nil)
