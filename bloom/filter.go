// Package bloom de-duplicates catalog records using Bloom filters.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// Filter is a Bloom filter over string keys. Keys are reduced to their
// 64-bit xxhash before insertion.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd reports whether key might already be in the filter and adds it.
// False positives are possible; false negatives are not.
func (f *Filter) TestAndAdd(key string) bool {
	return f.f.TestAndAdd(digest(key))
}

func digest(key string) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], xxhash.Sum64String(key))
	return b[:]
}
