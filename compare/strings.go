package compare

import (
	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalStrings returns a comparator that orders strings the way humans
// expect sequences with embedded numbers to sort: "item2" before "item10".
// Strings that differ only in digit padding may compare as equivalent.
func NaturalStrings() Func[string] {
	return func(a, b string) int {
		if a == b {
			return 0
		}

		if natsort.Compare(a, b) {
			return -1
		}

		if natsort.Compare(b, a) {
			return 1
		}

		return 0
	}
}

// Collate returns a comparator that orders strings according to the collation
// rules of the given language. Options are passed through to the collator.
//
// The underlying collator carries internal buffers, so the returned Func must
// not be called from multiple goroutines at once.
func Collate(tag language.Tag, opts ...collate.Option) Func[string] {
	c := collate.New(tag, opts...)

	return func(a, b string) int {
		return c.CompareString(a, b)
	}
}
