package bloomfilter

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/FastFilter/bloomfilter/hashing"
)

var _ Membership[uint64] = (*Filter[uint64, hashing.XXHasher])(nil)

// OptimalM returns the number of bits needed to hold n items at a false
// positive rate of f:
//
//	m = ceil(-n * ln(f) / (ln 2)^2)
//
// The result saturates at math.MaxUint64 when m does not fit in 64 bits.
func OptimalM(n uint, f float64) uint64 {
	m := math.Ceil(optimalBits(n, f))
	if !(m < math.MaxUint64) {
		return math.MaxUint64
	}
	return uint64(m)
}

func optimalBits(n uint, f float64) float64 {
	return -float64(n) * math.Log(f) / (math.Ln2 * math.Ln2)
}

// OptimalK returns the number of hash functions for m bits and n items,
// rounded up and never less than one:
//
//	k = ceil((m / n) * ln 2)
func OptimalK(m uint64, n uint) uint64 {
	return max(1, uint64(math.Ceil(float64(m)/float64(n)*math.Ln2)))
}

// EstimateParameters returns m and k for a filter sized for n items at a
// false positive rate of f.
func EstimateParameters(n uint, f float64) (m uint64, k uint64) {
	m = OptimalM(n, f)
	k = OptimalK(m, n)
	return
}

// New creates a Bloom filter sized for capacity items at the target false
// positive rate fpr. Items are turned into bytes by enc, and the bit
// positions are derived from two digests computed by hasher keyed with seeds
// 0 and 1.
//
// New returns ErrZeroCapacity when capacity is 0, ErrFalsePositiveRate
// when fpr is not strictly between 0 and 1, and ErrCapacityTooLarge when the
// bit array cannot be addressed or allocated.
func New[T any, H hashing.Hasher[H]](capacity uint, fpr float64, hasher H, enc Encoder[T]) (*Filter[T, H], error) {
	if capacity == 0 {
		return nil, ErrZeroCapacity
	}
	// written so that NaN is rejected too
	if !(fpr > 0 && fpr < 1) {
		return nil, ErrFalsePositiveRate
	}
	if enc == nil {
		return nil, ErrNilEncoder
	}
	if !(math.Ceil(optimalBits(capacity, fpr)) < float64(^uint(0))) {
		return nil, ErrCapacityTooLarge
	}
	m, k := EstimateParameters(capacity, fpr)
	// bitset.New hands back an empty set when the allocation fails
	bits := bitset.New(uint(m))
	if bits.Len() != uint(m) {
		return nil, ErrCapacityTooLarge
	}
	return &Filter[T, H]{
		bits:   bits,
		m:      m,
		k:      k,
		n:      capacity,
		f:      fpr,
		hasher: hasher,
		base0:  hasher.WithSeed(0),
		base1:  hasher.WithSeed(1),
		enc:    enc,
	}, nil
}

// NewIntegerFilter creates a filter over integer items.
func NewIntegerFilter[T Integer, H hashing.Hasher[H]](capacity uint, fpr float64, hasher H) (*Filter[T, H], error) {
	return New[T](capacity, fpr, hasher, IntegerEncoder[T]{})
}

// NewStringFilter creates a filter over string items.
func NewStringFilter[T ~string, H hashing.Hasher[H]](capacity uint, fpr float64, hasher H) (*Filter[T, H], error) {
	return New[T](capacity, fpr, hasher, StringEncoder[T]{})
}

// NewBytesFilter creates a filter over byte slice items.
func NewBytesFilter[T ~[]byte, H hashing.Hasher[H]](capacity uint, fpr float64, hasher H) (*Filter[T, H], error) {
	return New[T](capacity, fpr, hasher, BytesEncoder[T]{})
}

// NewCBORFilter creates a filter over arbitrary values, encoded with the
// deterministic CBOR encoding.
func NewCBORFilter[T any, H hashing.Hasher[H]](capacity uint, fpr float64, hasher H) (*Filter[T, H], error) {
	enc, err := NewCBOREncoder[T]()
	if err != nil {
		return nil, err
	}
	return New[T](capacity, fpr, hasher, enc)
}

// baseHashes returns the two digests all k positions of item derive from.
func (f *Filter[T, H]) baseHashes(item T) (h1, h2 uint64) {
	var buf [16]byte
	data := f.enc.AppendItem(buf[:0], item)
	return f.base0.Hash(data), f.base1.Hash(data)
}

// location returns the ith position, (h1 + i*h2) mod m, computed with
// wrapping 64-bit arithmetic.
func (f *Filter[T, H]) location(h1, h2, i uint64) uint {
	return uint((h1 + i*h2) % f.m)
}

// Insert adds item to the filter. Inserting an item that is already present
// still counts towards Len.
func (f *Filter[T, H]) Insert(item T) {
	h1, h2 := f.baseHashes(item)
	for i := uint64(0); i < f.k; i++ {
		f.bits.Set(f.location(h1, h2, i))
	}
	f.count++
}

// Contains tells you whether item is likely part of the set. It never
// returns false for an inserted item.
func (f *Filter[T, H]) Contains(item T) bool {
	h1, h2 := f.baseHashes(item)
	for i := uint64(0); i < f.k; i++ {
		if !f.bits.Test(f.location(h1, h2, i)) {
			return false
		}
	}
	return true
}

// TestAndInsert is the equivalent to calling Contains(item) then
// Insert(item), hashing the item once. Returns the result of Contains.
func (f *Filter[T, H]) TestAndInsert(item T) bool {
	present := true
	h1, h2 := f.baseHashes(item)
	for i := uint64(0); i < f.k; i++ {
		l := f.location(h1, h2, i)
		if !f.bits.Test(l) {
			present = false
			f.bits.Set(l)
		}
	}
	f.count++
	return present
}

// Capacity returns the number of items the filter was sized for.
func (f *Filter[T, H]) Capacity() uint {
	return f.n
}

// FalsePositiveRate returns the target rate the filter was sized for, not a
// measurement. See EstimatedFalsePositiveRate.
func (f *Filter[T, H]) FalsePositiveRate() float64 {
	return f.f
}

// Len returns the number of Insert calls, duplicates included.
func (f *Filter[T, H]) Len() uint {
	return f.count
}

// IsEmpty reports whether nothing has been inserted yet.
func (f *Filter[T, H]) IsEmpty() bool {
	return f.Len() == 0
}

// M returns the size of the bit array.
func (f *Filter[T, H]) M() uint64 {
	return f.m
}

// K returns the number of positions set per item.
func (f *Filter[T, H]) K() uint64 {
	return f.k
}

// Hasher returns the hasher the filter was built with.
func (f *Filter[T, H]) Hasher() H {
	return f.hasher
}

// ApproximatedSize estimates the number of distinct items inserted from the
// number of set bits.
// https://en.wikipedia.org/wiki/Bloom_filter#Approximating_the_number_of_items_in_a_Bloom_filter
// A saturated filter returns math.MaxUint64.
func (f *Filter[T, H]) ApproximatedSize() uint64 {
	x := float64(f.bits.Count())
	m := float64(f.m)
	if x >= m {
		return math.MaxUint64
	}
	size := -m / float64(f.k) * math.Log(1-x/m)
	return uint64(math.Floor(size + 0.5))
}

// EstimatedFalsePositiveRate returns the theoretical false positive rate at
// the current load, (1 - e^(-k*len/m))^k.
func (f *Filter[T, H]) EstimatedFalsePositiveRate() float64 {
	k := float64(f.k)
	return math.Pow(1-math.Exp(-k*float64(f.count)/float64(f.m)), k)
}
