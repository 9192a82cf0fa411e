package hashing

import "github.com/twmb/murmur3"

// Murmur3Hasher hashes with MurmurHash3 x64 128 and keeps the low 64 bits
// of the digest.
//
// The reference algorithm takes a 32-bit seed that initializes both 64-bit
// lanes. Here the full 64-bit seed initializes both lanes, so seeds that
// differ only in their upper 32 bits still produce different digests.
type Murmur3Hasher struct {
	seed uint64
}

// NewMurmur3Hasher returns a Murmur3Hasher with a random seed.
func NewMurmur3Hasher() Murmur3Hasher {
	return Murmur3Hasher{seed: randomSeed()}
}

// NewMurmur3HasherWithSeed returns a Murmur3Hasher keyed with seed.
func NewMurmur3HasherWithSeed(seed uint64) Murmur3Hasher {
	return Murmur3Hasher{seed: seed}
}

// Seed returns the seed the hasher is keyed with.
func (h Murmur3Hasher) Seed() uint64 {
	return h.seed
}

// WithSeed returns a copy of the hasher keyed with seed.
func (h Murmur3Hasher) WithSeed(seed uint64) Murmur3Hasher {
	return Murmur3Hasher{seed: seed}
}

// Hash returns the 64-bit digest of data under the hasher's seed.
func (h Murmur3Hasher) Hash(data []byte) uint64 {
	lo, _ := murmur3.SeedSum128(h.seed, h.seed, data)
	return lo
}
