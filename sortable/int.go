package sortable

// Int is a sortable wrapper type for the built-in int type. Wrapping
// gives int values the Sortable[Int] methods that sorted containers are
// parameterized over.
//
// Example:
//
//	v := sorted.NewSortable[sortable.Int]()
//	v.Insert(sortable.Int(5))
//	v.Insert(sortable.Int(3))
//	v.Insert(sortable.Int(7))
//	// the elements now read 3, 5, 7
//
// A plain type conversion recovers the underlying int:
//
//	count := sortable.Int(42)
//	n := int(count)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals reports whether both ints hold the same value.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan reports whether this int is numerically smaller than other.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Int64 is a sortable wrapper type for the built-in int64 type. It exists
// alongside Int for code that must be explicit about width, such as
// identifiers read from storage.
type Int64 int64

// Compile-time check that Int64 implements Sortable[Int64].
var _ Sortable[Int64] = (*Int64)(nil)

// Equals reports whether both int64s hold the same value.
func (i Int64) Equals(other Int64) bool {
	return int64(i) == int64(other)
}

// LessThan reports whether this int64 is numerically smaller than other.
func (i Int64) LessThan(other Int64) bool {
	return int64(i) < int64(other)
}
