// Package sorted provides vectors that keep their elements in sorted order
// at all times: [Vector] allows duplicate elements, [Set] keeps exactly one
// element per equivalence class of its comparator.
//
// # Overview
//
// Both containers maintain two guarantees across every operation: elements
// are always in ascending order for the container's comparator, and the
// container owns its backing storage exclusively. Because order always
// holds, lookups are binary searches and iteration yields elements smallest
// to largest with no extra work.
//
// A container is parameterized by a [github.com/JohnScience/sorted-vec2/compare.Func]
// rather than by an ordered type constraint, so the same element type can
// live in differently ordered containers. [NewOrdered] covers the common
// case of naturally ordered element types, [ReverseOrdered] the same order
// inverted, and [NewSortable] derives the comparator from an element type's
// own LessThan method.
//
// # Duplicates and Ties
//
// [Vector.Insert] places a new element at the leftmost position of its
// equal run and returns that index:
//
//	v := sorted.NewOrdered[int]()
//	v.Insert(5) // index 0
//	v.Insert(3) // index 0
//	v.Insert(4) // index 1
//	v.Insert(4) // index 1 again; contents are now [3 4 4 5]
//
// [Set.Insert] replaces the resident element when an equal one is already
// present. With comparators that inspect only part of the element (say, a
// key field) the incoming element's other fields win, which makes a Set
// behave like a small keyed table.
//
// # Escape Hatch
//
// [Vector.Mutate] hands the raw backing slice to a closure for operations
// the sorted API does not cover. The container re-sorts when the closure
// finishes, even if it panics, so order holds again by the time control
// returns to the caller. [MutateValue] is the same thing for closures that
// produce a result.
//
// # Errors
//
// Out-of-range indexes panic, matching slice semantics. Lookups that can
// legitimately miss return an
// [github.com/JohnScience/sorted-vec2/optional.Value] instead. Constructing
// a container from data that claims to be sorted but is not (FromSorted,
// UnmarshalJSON, UnmarshalYAML) returns [ErrUnsorted] or [ErrDuplicate]
// and leaves the container untouched.
//
// # Serialization
//
// Containers marshal to bare JSON and YAML arrays and validate order (and
// uniqueness, for Set) on the way back in. [Record] and [SetRecord] wrap a
// container in a named "elements" field for formats that require an object
// at the top level.
//
// Containers are not safe for concurrent use.
package sorted
