package tests

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/JohnScience/sorted-vec2/compare"
)

// Record is a small keyed payload for tests that need non-trivial ordered
// elements. The payload takes no part in ordering, so tests can tell apart
// records whose keys compare equal.
type Record struct {
	Key     int
	Payload string
}

// NewRecord returns a record with the given key and a unique payload.
func NewRecord(key int) Record {
	return Record{
		Key:     key,
		Payload: uuid.NewString(),
	}
}

// RecordByKey orders records by key only.
func RecordByKey() compare.Func[Record] {
	return compare.ByKey(func(r Record) int { return r.Key })
}

// RandomRecords returns n records with random keys. Keys may repeat.
func RandomRecords(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = NewRecord(rand.IntN(n*10 + 1))
	}

	return out
}
