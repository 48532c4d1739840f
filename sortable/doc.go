// Package sortable defines the Sortable interface for self-ordering element
// types, along with wrapper types that let primitives satisfy it.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides
// ready-to-use implementations for common primitive types: [Int], [Int64],
// [Byte], [Float64], and [String]. These types are designed to work with the
// sorted containers in this module (see
// [github.com/JohnScience/sorted-vec2/sorted.NewSortable]).
//
// The Sortable interface extends
// [github.com/JohnScience/sorted-vec2/compare.Comparable] by adding a
// LessThan method, providing both equality comparison and ordering.
// [CompareFunc] turns any Sortable implementation into the three-way
// comparator the containers are parameterized over.
//
// # Usage
//
// The wrapper types drop straight into the containers:
//
//	v := sorted.NewSortable[sortable.Int]()
//	v.Insert(sortable.Int(42))
//	v.Insert(sortable.Int(10))
//	v.Insert(sortable.Int(25))
//
//	// iterating now yields 10, 25, 42
//	for val := range v.Values() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// Any struct can order itself by implementing the two methods. A release
// version that sorts by major then minor number:
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// # When to Use Sortable vs a Bare Comparator
//
// Use Sortable types when the element type itself should carry its ordering,
// so every container of that type agrees on one order. Use a
// [github.com/JohnScience/sorted-vec2/compare.Func] comparator directly when
// the ordering is a property of the container rather than the type, such as
// ordering the same records by different keys in different containers.
//
// The wrapper types are plain values and can be shared freely; the
// containers holding them are not safe for concurrent use.
package sortable
