package bloomfilter

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/FastFilter/bloomfilter/hashing"
)

var (
	ErrZeroCapacity      = errors.New("bloomfilter: capacity must be greater than 0")
	ErrFalsePositiveRate = errors.New("bloomfilter: false positive rate must be in (0, 1)")
	ErrNilEncoder        = errors.New("bloomfilter: encoder is nil")
	ErrCapacityTooLarge  = errors.New("bloomfilter: capacity needs more bits than can be allocated")
)

// Membership is an approximate membership query: Contains may report items
// that were never inserted, but never misses an inserted one.
type Membership[T any] interface {
	Insert(item T)
	Contains(item T) bool
	FalsePositiveRate() float64
	Capacity() uint
	Len() uint
	IsEmpty() bool
}

// Filter is a standard Bloom filter over items of type T, hashed with H.
//
// A Filter is not safe for concurrent use when any goroutine calls Insert.
type Filter[T any, H hashing.Hasher[H]] struct {
	bits *bitset.BitSet
	m    uint64 // number of bits
	k    uint64 // number of hash functions
	n    uint   // capacity the filter was sized for
	f    float64
	// count of Insert calls, duplicates included
	count uint

	hasher H
	base0  H
	base1  H
	enc    Encoder[T]
}
