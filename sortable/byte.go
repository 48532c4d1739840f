package sortable

// Byte is a sortable wrapper type for the built-in byte type. Wrapping
// gives byte values the Sortable[Byte] methods that sorted containers
// are parameterized over.
//
// Example:
//
//	v := sorted.NewSortable[sortable.Byte]()
//	v.Insert(sortable.Byte('c'))
//	v.Insert(sortable.Byte('a'))
//	v.Insert(sortable.Byte('b'))
//	// the elements now read 'a', 'b', 'c'
//
// A plain type conversion recovers the underlying byte:
//
//	tag := sortable.Byte('x')
//	raw := byte(tag)
type Byte byte

// Compile-time check that Byte implements Sortable[Byte].
var _ Sortable[Byte] = (*Byte)(nil)

// Equals reports whether both bytes hold the same value.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// LessThan reports whether this byte is numerically smaller than other.
func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}
