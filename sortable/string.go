package sortable

// String is a sortable wrapper type for the built-in string type.
// LessThan orders bytewise, which matches Go's < operator but not human
// expectations for numbered or localized text. When "item10" should sort
// after "item2", or ordering should follow a locale, use a plain string
// container with compare.NaturalStrings or compare.Collate instead.
type String string

// Compile-time check that String implements Sortable[String].
var _ Sortable[String] = (*String)(nil)

// Equals returns true if this String has the same value as the other String.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String sorts bytewise before the other String.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
