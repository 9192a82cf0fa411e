// Package dataset generates reproducible workloads for exercising and
// benchmarking membership filters.
package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/axiomhq/hyperloglog"
	"github.com/tidwall/btree"
)

var ErrZipfParameters = errors.New("dataset: zipfian alpha must be > 1 and cardinality >= 2")

// Dataset holds the items to insert and two query sets: items known to be
// inserted, and items known not to be.
type Dataset struct {
	Inserted       []uint64
	QueriesPresent []uint64
	QueriesAbsent  []uint64
}

// Stats summarizes a Dataset.
type Stats struct {
	TotalItems int
	// UniqueItems is exact; UniqueEstimate comes from a HyperLogLog sketch.
	UniqueItems     int
	UniqueEstimate  uint64
	DuplicationRate float64
	QueriesPresent  int
	QueriesAbsent   int
}

func (s Stats) String() string {
	return fmt.Sprintf("Dataset Stats:\n  Total: %d\n  Unique: %d (~%d)\n  Duplication: %.1f%%\n  Queries: %d present, %d absent",
		s.TotalItems, s.UniqueItems, s.UniqueEstimate, s.DuplicationRate*100, s.QueriesPresent, s.QueriesAbsent)
}

// returns random number, modifies the seed
func splitmix64(seed *uint64) uint64 {
	*seed = *seed + 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func setOf(items []uint64) *btree.Set[uint64] {
	var set btree.Set[uint64]
	for _, v := range items {
		set.Insert(v)
	}
	return &set
}

// samplePresent takes every 10th inserted item, n/10 of them.
func samplePresent(inserted []uint64) []uint64 {
	n := len(inserted) / 10
	present := make([]uint64, 0, n)
	for i := 0; i < len(inserted) && len(present) < n; i += 10 {
		present = append(present, inserted[i])
	}
	return present
}

// Uniform returns n pseudo-random items. The same seed always yields the
// same dataset.
func Uniform(n int, seed uint64) Dataset {
	rng := seed
	inserted := make([]uint64, n)
	for i := range inserted {
		inserted[i] = splitmix64(&rng)
	}
	set := setOf(inserted)
	absent := make([]uint64, 0, n/10)
	for len(absent) < n/10 {
		v := splitmix64(&rng)
		if !set.Contains(v) {
			absent = append(absent, v)
		}
	}
	return Dataset{
		Inserted:       inserted,
		QueriesPresent: samplePresent(inserted),
		QueriesAbsent:  absent,
	}
}

// Zipfian returns n items drawn from [1, cardinality] with a power-law
// distribution of exponent alpha: a few items are very frequent and most
// are rare. Absent queries are taken from the rarely drawn upper half of
// the universe when possible.
func Zipfian(n int, cardinality uint64, alpha float64, seed uint64) (Dataset, error) {
	if !(alpha > 1) || cardinality < 2 {
		return Dataset{}, ErrZipfParameters
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	zipf := rand.NewZipf(r, alpha, 1, cardinality-1)

	inserted := make([]uint64, n)
	for i := range inserted {
		inserted[i] = zipf.Uint64() + 1
	}
	set := setOf(inserted)

	half := cardinality / 2
	absent := make([]uint64, 0, n/10)
	for attempts := 0; len(absent) < n/10 && attempts < n*2; attempts++ {
		v := half + r.Uint64()%half
		if !set.Contains(v) {
			absent = append(absent, v)
		}
	}
	for len(absent) < n/10 {
		v := r.Uint64()
		if !set.Contains(v) {
			absent = append(absent, v)
		}
	}
	return Dataset{
		Inserted:       inserted,
		QueriesPresent: samplePresent(inserted),
		QueriesAbsent:  absent,
	}, nil
}

func Small(seed uint64) Dataset { return Uniform(1_000, seed) }
func Medium(seed uint64) Dataset { return Uniform(100_000, seed) }
func Large(seed uint64) Dataset { return Uniform(1_000_000, seed) }

// Cardinality returns the exact number of distinct inserted items.
func (d Dataset) Cardinality() int {
	return setOf(d.Inserted).Len()
}

func (d Dataset) Stats() Stats {
	sketch := hyperloglog.New()
	var buf [8]byte
	for _, v := range d.Inserted {
		binary.LittleEndian.PutUint64(buf[:], v)
		sketch.Insert(buf[:])
	}
	unique := d.Cardinality()
	total := len(d.Inserted)
	dup := 0.0
	if total > 0 {
		dup = 1 - float64(unique)/float64(total)
	}
	return Stats{
		TotalItems:      total,
		UniqueItems:     unique,
		UniqueEstimate:  sketch.Estimate(),
		DuplicationRate: dup,
		QueriesPresent:  len(d.QueriesPresent),
		QueriesAbsent:   len(d.QueriesAbsent),
	}
}
