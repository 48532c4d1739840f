// Package hashing provides content hashing for container types and their
// elements. Containers fold their elements into a running hash.Hash through
// the Hashable interface, so structurally equal containers produce equal
// digests regardless of how they were built.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is the signature shared by the digest helpers in this package:
// fold a Hashable through an algorithm and return the hex-encoded sum.
// Code that does not care which algorithm it runs takes a HashFunc.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is implemented by values that can fold their contents into a
// hash.Hash. Containers implement it by feeding their elements through in
// iteration order.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 digests the Hashable with SHA-256 and returns the hex-encoded
// sum. Use it when digests cross a trust boundary; for cache keys and
// deduplication the xxHash variants below are far cheaper.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	bts := h.Sum(nil)

	return hex.EncodeToString(bts), nil
}

// XXHash64 returns the 64-bit xxHash of the given Hashable as a
// hex-encoded string. It is much faster than Sha256 and is the right
// choice for deduplication and cache keys; it is not cryptographic.
func XXHash64(hashable Hashable) (string, error) {
	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	bts := h.Sum(nil)

	return hex.EncodeToString(bts), nil
}

// XXH3 returns the 64-bit XXH3 hashing of the given Hashable as a
// hex-encoded string. Like XXHash64 it is non-cryptographic, but with
// better throughput on small inputs.
func XXH3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	bts := h.Sum(nil)

	return hex.EncodeToString(bts), nil
}
