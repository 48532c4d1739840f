package hashing

import (
	"bytes"
	"encoding/binary"
	"hash"
)

// Hashable wrappers for primitive types. Numeric wrappers encode as
// fixed-width big-endian so digests are stable across platforms.

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)
	if err != nil {
		return err
	}

	return nil
}

func (b HashableBytes) Equals(other HashableBytes) bool {
	return bytes.Equal(b, other)
}

type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return binary.Write(h, binary.BigEndian, int64(i))
}

func (i HashableInt) Equals(other HashableInt) bool {
	return i == other
}

type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	return binary.Write(h, binary.BigEndian, int64(i))
}

func (i HashableInt64) Equals(other HashableInt64) bool {
	return i == other
}

type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	return binary.Write(h, binary.BigEndian, float64(f))
}

func (f HashableFloat64) Equals(other HashableFloat64) bool {
	return f == other
}

type HashableBool bool

func (b HashableBool) UpdateHash(h hash.Hash) error {
	return binary.Write(h, binary.BigEndian, bool(b))
}

func (b HashableBool) Equals(other HashableBool) bool {
	return b == other
}
