package sorted

import (
	"cmp"
	"hash"
	"iter"

	"github.com/JohnScience/sorted-vec2/compare"
	"github.com/JohnScience/sorted-vec2/hashing"
	"github.com/JohnScience/sorted-vec2/optional"
	"github.com/JohnScience/sorted-vec2/sortable"
)

// Set is a vector whose elements are always in ascending order and unique
// for its comparator: at most one element per equivalence class. Inserting
// an element equal to a resident one replaces the resident, so with a
// comparator that inspects only a key field a Set behaves like a small
// keyed table with ordered iteration.
//
// The zero value has no comparator and is not usable; construct a Set with
// NewSet, SetFromUnsorted, NewOrderedSet, or one of the other
// constructors. Set is not safe for concurrent use.
type Set[T any] struct {
	vec Vector[T]
}

// NewSet returns a new empty set ordered by cmp.
func NewSet[T any](cmp compare.Func[T]) *Set[T] {
	return &Set[T]{vec: *New(cmp)}
}

// SetWithCapacity returns a new empty set ordered by cmp, with space
// preallocated for capacity elements.
func SetWithCapacity[T any](cmp compare.Func[T], capacity int) *Set[T] {
	return &Set[T]{vec: *WithCapacity(cmp, capacity)}
}

// SetFromUnsorted returns a new set holding the given items sorted and
// deduplicated. It takes ownership of the slice; the caller must not use
// it afterwards. When the input carries several elements of one
// equivalence class, which of them survives is unspecified because the
// sort is not stable.
func SetFromUnsorted[T any](cmp compare.Func[T], items []T) *Set[T] {
	v := FromUnsorted(cmp, items)
	v.Dedup()

	return &Set[T]{vec: *v}
}

// SetFromSorted returns a new set that takes ownership of the given slice,
// which must be sorted and free of duplicates. It returns ErrUnsorted if
// the elements are out of order and ErrDuplicate if two adjacent elements
// are equal; ownership does not transfer on error.
func SetFromSorted[T any](cmp compare.Func[T], items []T) (*Set[T], error) {
	if err := validateSorted(cmp, items, true); err != nil {
		return nil, err
	}

	v, err := FromSorted(cmp, items)
	if err != nil {
		return nil, err
	}

	return &Set[T]{vec: *v}, nil
}

// NewOrderedSet returns a new empty set of a naturally ordered type,
// sorted ascending.
func NewOrderedSet[T cmp.Ordered]() *Set[T] {
	return NewSet(compare.Natural[T]())
}

// ReverseOrderedSet returns a new empty set of a naturally ordered type,
// sorted descending.
func ReverseOrderedSet[T cmp.Ordered]() *Set[T] {
	return NewSet(compare.Reversed(compare.Natural[T]()))
}

// NewSortableSet returns a new empty set ordered by the element type's own
// LessThan method.
func NewSortableSet[T sortable.Sortable[T]]() *Set[T] {
	return NewSet(sortable.CompareFunc[T]())
}

// Insert adds an element at its sorted position and returns the index it
// landed at. If an element equal to item is already present, it is removed
// first and item takes its place, so comparators that ignore part of the
// element see the incoming element's fields win.
func (s *Set[T]) Insert(item T) int {
	if i, found := s.vec.Search(item); found {
		s.vec.RemoveIndex(i)
	}

	return s.vec.Insert(item)
}

// FindOrInsert returns the index of the element equal to item if one is
// present; otherwise it inserts item at its sorted position. Unlike
// Insert, a resident equal element is kept, not replaced. The result
// reports which of the two happened.
func (s *Set[T]) FindOrInsert(item T) FindOrInsertResult {
	return s.vec.FindOrInsert(item)
}

// Extend inserts each of the given items in the order given, with Insert's
// replacement semantics for elements equal to resident ones.
func (s *Set[T]) Extend(items ...T) {
	for _, item := range items {
		s.Insert(item)
	}
}

// ExtendSeq inserts each element yielded by seq, with Insert's replacement
// semantics.
func (s *Set[T]) ExtendSeq(seq iter.Seq[T]) {
	for item := range seq {
		s.Insert(item)
	}
}

// Search binary-searches for the element equal to item and returns its
// index, or the index where item would be inserted. The boolean reports
// whether an equal element was found.
func (s *Set[T]) Search(item T) (int, bool) {
	return s.vec.Search(item)
}

// Contains reports whether an element equal to item is present.
func (s *Set[T]) Contains(item T) bool {
	return s.vec.Contains(item)
}

// RemoveItem removes the element equal to item and returns the index it
// occupied, or an empty optional if no equal element was present.
func (s *Set[T]) RemoveItem(item T) optional.Value[int] {
	return s.vec.RemoveItem(item)
}

// RemoveIndex removes and returns the element at index i. It panics if i
// is out of range.
func (s *Set[T]) RemoveIndex(i int) T {
	return s.vec.RemoveIndex(i)
}

// Pop removes and returns the largest element, or an empty optional if the
// set is empty.
func (s *Set[T]) Pop() optional.Value[T] {
	return s.vec.Pop()
}

// Clear removes all elements but keeps the allocated capacity.
func (s *Set[T]) Clear() {
	s.vec.Clear()
}

// Retain removes every element for which pred returns false. Removing
// elements cannot introduce duplicates, so the set invariants hold.
func (s *Set[T]) Retain(pred func(item T) bool) {
	s.vec.Retain(pred)
}

// Drain removes the elements in the half-open index range [from, to) and
// returns an iterator over them in ascending order. The removal happens
// before Drain returns, whether or not the iterator is consumed.
func (s *Set[T]) Drain(from, to int) iter.Seq[T] {
	return s.vec.Drain(from, to)
}

// Mutate hands the backing slice to f for arbitrary modification. When f
// finishes the set re-sorts and deduplicates itself, so both invariants
// hold again by the time Mutate returns, even if f panics. Of the
// duplicates f may have introduced, the first of each equal run survives.
//
// Use MutateValue when the closure needs to hand a result back.
func (s *Set[T]) Mutate(f func(items *[]T)) {
	defer s.vec.Dedup()

	s.vec.Mutate(f)
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return s.vec.Len()
}

// IsEmpty returns true if the set holds no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.vec.IsEmpty()
}

// At returns the element at index i. It panics if i is out of range.
func (s *Set[T]) At(i int) T {
	return s.vec.At(i)
}

// First returns the smallest element, or an empty optional if the set is
// empty.
func (s *Set[T]) First() optional.Value[T] {
	return s.vec.First()
}

// Last returns the largest element, or an empty optional if the set is
// empty.
func (s *Set[T]) Last() optional.Value[T] {
	return s.vec.Last()
}

// Slice returns a copy of the elements in sorted order.
func (s *Set[T]) Slice() []T {
	return s.vec.Slice()
}

// IntoSlice transfers ownership of the backing slice to the caller and
// leaves the set empty. The returned slice is sorted and duplicate-free.
func (s *Set[T]) IntoSlice() []T {
	return s.vec.IntoSlice()
}

// All returns an iterator over index-element pairs in ascending order.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return s.vec.All()
}

// Values returns an iterator over the elements in ascending order.
func (s *Set[T]) Values() iter.Seq[T] {
	return s.vec.Values()
}

// Comparator returns the comparator the set orders by.
func (s *Set[T]) Comparator() compare.Func[T] {
	return s.vec.Comparator()
}

// Clone returns a new set with the same comparator and a copy of the
// elements.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{vec: *s.vec.Clone()}
}

// Reversed returns a new set holding a copy of the elements under the
// inverted comparator, so iteration runs largest to smallest. The receiver
// is unchanged.
func (s *Set[T]) Reversed() *Set[T] {
	return &Set[T]{vec: *s.vec.Reversed()}
}

// Equal reports whether both sets hold pairwise equal elements, using the
// receiver's comparator for equality.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.vec.Equal(&other.vec)
}

// String returns a string representation of the elements in sorted order.
func (s *Set[T]) String() string {
	return s.vec.String()
}

// UpdateHash folds the set's length and every element into h. Elements
// must implement hashing.Hashable.
func (s *Set[T]) UpdateHash(h hash.Hash) error {
	return s.vec.UpdateHash(h)
}

var _ hashing.Hashable = (*Set[hashing.HashableString])(nil)
