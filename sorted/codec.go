package sorted

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/JohnScience/sorted-vec2/compare"
)

var (
	// ErrUnsorted reports input that claims to be sorted but has elements
	// out of ascending order for the container's comparator.
	ErrUnsorted = errors.New("elements are not in sorted order")

	// ErrDuplicate reports input carrying equal elements where uniqueness
	// is required.
	ErrDuplicate = errors.New("duplicate element")

	// ErrNoComparator reports an unmarshal into a container whose
	// comparator has not been set, i.e. a zero-value container.
	ErrNoComparator = errors.New("container has no comparator")
)

// validateSorted checks that items are in ascending order for cmp, and
// with unique set, that no two adjacent elements are equal. The returned
// error wraps ErrUnsorted or ErrDuplicate and names the offending index.
func validateSorted[T any](cmp compare.Func[T], items []T, unique bool) error {
	for i := 1; i < len(items); i++ {
		order := cmp(items[i-1], items[i])

		if order > 0 {
			return fmt.Errorf("%w: index %d", ErrUnsorted, i)
		}

		if unique && order == 0 {
			return fmt.Errorf("%w: index %d", ErrDuplicate, i)
		}
	}

	return nil
}

func reasonLabel(err error) string {
	if errors.Is(err, ErrDuplicate) {
		return "duplicate"
	}

	return "unsorted"
}

// MarshalJSON encodes the vector as a bare JSON array of its elements, in
// sorted order. An empty vector encodes as [].
func (v Vector[T]) MarshalJSON() ([]byte, error) {
	items := v.items.Slice()
	if items == nil {
		items = []T{}
	}

	return json.Marshal(items)
}

// UnmarshalJSON decodes a bare JSON array into the vector. The elements
// must already be in ascending order for the vector's comparator; input
// that is not sorted is rejected with ErrUnsorted and the vector's
// previous contents are kept. The vector must have been constructed with
// a comparator before unmarshaling into it.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	if v.cmp == nil {
		return ErrNoComparator
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	if err := validateSorted(v.cmp, items, false); err != nil {
		validationFailures.WithLabelValues("json", reasonLabel(err)).Inc()

		return err
	}

	v.items.Replace(items)

	return nil
}

// MarshalYAML encodes the vector as a bare YAML sequence of its elements,
// in sorted order.
func (v Vector[T]) MarshalYAML() (any, error) {
	items := v.items.Slice()
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// UnmarshalYAML decodes a bare YAML sequence into the vector, with the
// same validation and all-or-nothing behavior as UnmarshalJSON.
func (v *Vector[T]) UnmarshalYAML(node *yaml.Node) error {
	if v.cmp == nil {
		return ErrNoComparator
	}

	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}

	if err := validateSorted(v.cmp, items, false); err != nil {
		validationFailures.WithLabelValues("yaml", reasonLabel(err)).Inc()

		return err
	}

	v.items.Replace(items)

	return nil
}

// MarshalJSON encodes the set as a bare JSON array of its elements, in
// sorted order. An empty set encodes as [].
func (s Set[T]) MarshalJSON() ([]byte, error) {
	return s.vec.MarshalJSON()
}

// UnmarshalJSON decodes a bare JSON array into the set. The elements must
// be in ascending order and free of duplicates; input violating either is
// rejected with ErrUnsorted or ErrDuplicate and the set's previous
// contents are kept.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	if s.vec.cmp == nil {
		return ErrNoComparator
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	if err := validateSorted(s.vec.cmp, items, true); err != nil {
		validationFailures.WithLabelValues("json", reasonLabel(err)).Inc()

		return err
	}

	s.vec.items.Replace(items)

	return nil
}

// MarshalYAML encodes the set as a bare YAML sequence of its elements, in
// sorted order.
func (s Set[T]) MarshalYAML() (any, error) {
	return s.vec.MarshalYAML()
}

// UnmarshalYAML decodes a bare YAML sequence into the set, with the same
// validation and all-or-nothing behavior as the set's UnmarshalJSON.
func (s *Set[T]) UnmarshalYAML(node *yaml.Node) error {
	if s.vec.cmp == nil {
		return ErrNoComparator
	}

	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}

	if err := validateSorted(s.vec.cmp, items, true); err != nil {
		validationFailures.WithLabelValues("yaml", reasonLabel(err)).Inc()

		return err
	}

	s.vec.items.Replace(items)

	return nil
}

// Record wraps a vector in an object with a named "elements" field, for
// callers whose wire format wants {"elements": [...]} rather than a bare
// array. To unmarshal, point Elements at a constructed vector first so the
// comparator is in place:
//
//	record := sorted.Record[int]{Elements: sorted.NewOrdered[int]()}
//	err := json.Unmarshal(data, &record)
type Record[T any] struct {
	Elements *Vector[T] `json:"elements" yaml:"elements"`
}

// SetRecord wraps a set in an object with a named "elements" field, the
// Set counterpart of Record.
type SetRecord[T any] struct {
	Elements *Set[T] `json:"elements" yaml:"elements"`
}

var (
	_ json.Marshaler   = (*Vector[int])(nil)
	_ json.Unmarshaler = (*Vector[int])(nil)
	_ yaml.Marshaler   = (*Vector[int])(nil)
	_ yaml.Unmarshaler = (*Vector[int])(nil)
	_ json.Marshaler   = (*Set[int])(nil)
	_ json.Unmarshaler = (*Set[int])(nil)
	_ yaml.Marshaler   = (*Set[int])(nil)
	_ yaml.Unmarshaler = (*Set[int])(nil)
)
