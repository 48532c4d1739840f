package sorted

import (
	"fmt"

	"github.com/JohnScience/sorted-vec2/optional"
)

// FindOrInsertResult reports the outcome of a find-or-insert operation:
// the element was either found at Index or inserted at Index. The two
// cases matter to callers that must not double-count, so the result keeps
// them distinct instead of collapsing to a bare index.
type FindOrInsertResult struct {
	index    int
	inserted bool
}

func foundAt(index int) FindOrInsertResult {
	return FindOrInsertResult{index: index}
}

func insertedAt(index int) FindOrInsertResult {
	return FindOrInsertResult{index: index, inserted: true}
}

// Index returns the element's position, whether it was found or inserted.
func (r FindOrInsertResult) Index() int {
	return r.index
}

// Found returns true if an equal element was already present.
func (r FindOrInsertResult) Found() bool {
	return !r.inserted
}

// Inserted returns true if the element was newly inserted.
func (r FindOrInsertResult) Inserted() bool {
	return r.inserted
}

// FoundIndex returns the position of the pre-existing element, or an empty
// optional if the element was newly inserted.
func (r FindOrInsertResult) FoundIndex() optional.Value[int] {
	if r.inserted {
		return optional.None[int]()
	}

	return optional.Some(r.index)
}

// InsertedIndex returns the position of the newly inserted element, or an
// empty optional if an equal element was already present.
func (r FindOrInsertResult) InsertedIndex() optional.Value[int] {
	if !r.inserted {
		return optional.None[int]()
	}

	return optional.Some(r.index)
}

// String returns "Found(i)" or "Inserted(i)".
func (r FindOrInsertResult) String() string {
	if r.inserted {
		return fmt.Sprintf("Inserted(%d)", r.index)
	}

	return fmt.Sprintf("Found(%d)", r.index)
}
