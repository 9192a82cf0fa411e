package hashing

import (
	"testing"
	"testing/quick"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Hasher[MetroHasher]   = MetroHasher{}
	_ Hasher[XXHasher]      = XXHasher{}
	_ Hasher[Murmur3Hasher] = Murmur3Hasher{}
)

func propDeterministic[H Hasher[H]](t *testing.T) {
	t.Helper()
	f := func(seed uint64, data []byte) bool {
		var zero H
		h := zero.WithSeed(seed)
		return h.Hash(data) == h.Hash(data) &&
			h.Hash(data) == HashWithSeed[H](seed, data)
	}
	require.NoError(t, quick.Check(f, nil))
}

func propDifferentSeeds[H Hasher[H]](t *testing.T) {
	t.Helper()
	f := func(seed1, seed2 uint64, data []byte) bool {
		if seed1 == seed2 || len(data) == 0 {
			// discard
			return true
		}
		return HashWithSeed[H](seed1, data) != HashWithSeed[H](seed2, data)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestMetroHasherProperties(t *testing.T) {
	propDeterministic[MetroHasher](t)
	propDifferentSeeds[MetroHasher](t)
}

func TestXXHasherProperties(t *testing.T) {
	propDeterministic[XXHasher](t)
	propDifferentSeeds[XXHasher](t)
}

func TestMurmur3HasherProperties(t *testing.T) {
	propDeterministic[Murmur3Hasher](t)
	propDifferentSeeds[Murmur3Hasher](t)
}

func TestMurmur3UpperSeedBits(t *testing.T) {
	data := []byte("upper seed bits")
	lo := NewMurmur3HasherWithSeed(7)
	hi := NewMurmur3HasherWithSeed(7 | 1<<40)
	assert.NotEqual(t, lo.Hash(data), hi.Hash(data))
}

func TestKnownDigests(t *testing.T) {
	// xxHash64 of the empty input with seed 0.
	assert.Equal(t, uint64(0xef46db3751d8e999), XXHasher{}.Hash(nil))
	// MurmurHash3 x64 128 of the empty input with seed 0 is all zeroes.
	assert.Equal(t, uint64(0), Murmur3Hasher{}.Hash(nil))

	data := []byte("Love")
	assert.Equal(t, xxhash.Sum64(data), HashWithSeed[XXHasher](0, data))
}

func TestSeededXXHasherDiffersFromUnseeded(t *testing.T) {
	data := []byte("Bess")
	assert.NotEqual(t, xxhash.Sum64(data), NewXXHasherWithSeed(1).Hash(data))
}

func TestSeedAccessors(t *testing.T) {
	assert.Equal(t, uint64(42), NewMetroHasherWithSeed(42).Seed())
	assert.Equal(t, uint64(42), NewXXHasherWithSeed(42).Seed())
	assert.Equal(t, uint64(42), NewMurmur3HasherWithSeed(42).Seed())
	assert.Equal(t, uint64(9), NewXXHasherWithSeed(42).WithSeed(9).Seed())
}

func TestRandomSeededConstructors(t *testing.T) {
	// Two random 64-bit seeds colliding is not a realistic outcome.
	assert.NotEqual(t, NewMetroHasher().Seed(), NewMetroHasher().Seed())
	assert.NotEqual(t, NewXXHasher().Seed(), NewXXHasher().Seed())
	assert.NotEqual(t, NewMurmur3Hasher().Seed(), NewMurmur3Hasher().Seed())
}

func benchmarkHasher[H Hasher[H]](b *testing.B, size int) {
	var zero H
	h := zero.WithSeed(1)
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	b.SetBytes(int64(size))
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		h.Hash(data)
	}
}

func BenchmarkMetroHasher8(b *testing.B) { benchmarkHasher[MetroHasher](b, 8) }
func BenchmarkXXHasher8(b *testing.B) { benchmarkHasher[XXHasher](b, 8) }
func BenchmarkMurmur3Hasher8(b *testing.B) { benchmarkHasher[Murmur3Hasher](b, 8) }
func BenchmarkMetroHasher4096(b *testing.B) { benchmarkHasher[MetroHasher](b, 4096) }
func BenchmarkXXHasher4096(b *testing.B) { benchmarkHasher[XXHasher](b, 4096) }
func BenchmarkMurmur3Hasher4096(b *testing.B) { benchmarkHasher[Murmur3Hasher](b, 4096) }
