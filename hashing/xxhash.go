package hashing

import "github.com/cespare/xxhash/v2"

// XXHasher hashes with seeded xxHash64, optimized for throughput on larger
// inputs.
type XXHasher struct {
	seed uint64
}

// NewXXHasher returns an XXHasher with a random seed.
func NewXXHasher() XXHasher {
	return XXHasher{seed: randomSeed()}
}

// NewXXHasherWithSeed returns an XXHasher keyed with seed.
func NewXXHasherWithSeed(seed uint64) XXHasher {
	return XXHasher{seed: seed}
}

// Seed returns the seed the hasher is keyed with.
func (h XXHasher) Seed() uint64 {
	return h.seed
}

// WithSeed returns a copy of the hasher keyed with seed.
func (h XXHasher) WithSeed(seed uint64) XXHasher {
	return XXHasher{seed: seed}
}

// Hash returns the 64-bit digest of data under the hasher's seed.
func (h XXHasher) Hash(data []byte) uint64 {
	if h.seed == 0 {
		return xxhash.Sum64(data)
	}
	d := xxhash.NewWithSeed(h.seed)
	// Digest.Write never returns an error.
	_, _ = d.Write(data)
	return d.Sum64()
}
