// Package hashing provides interchangeable seeded 64-bit hash functions.
//
// Every implementation satisfies Hasher: it produces a deterministic digest
// of a byte slice and can be rebuilt from an explicit seed. The
// implementations differ only in speed and distribution quality:
//
//   - MetroHasher: a fast keyed hash, good on short keys.
//   - XXHasher: high-throughput xxHash64, good on bulk data.
//   - Murmur3Hasher: MurmurHash3 x64 128-bit, truncated to 64 bits.
//
// None of them is cryptographic. Collision resistance only serves to spread
// bits evenly, not to resist adversarial inputs.
package hashing

import "math/rand/v2"

// Hasher is a seeded 64-bit hash function. H is the concrete hasher type, so
// that WithSeed returns the same implementation it was called on.
type Hasher[H any] interface {
	// Hash returns the digest of data. For a fixed seed the result is
	// identical across calls and across process runs.
	Hash(data []byte) uint64
	// WithSeed returns an instance of the same algorithm keyed with seed.
	WithSeed(seed uint64) H
}

// HashWithSeed builds a hasher of type H keyed with seed and hashes data
// with it in one call.
func HashWithSeed[H Hasher[H]](seed uint64, data []byte) uint64 {
	var h H
	return h.WithSeed(seed).Hash(data)
}

// randomSeed returns a seed for the default constructors.
func randomSeed() uint64 {
	return rand.Uint64()
}
