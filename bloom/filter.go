// Package bloom detects repeated media URLs using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/mediacsv"
)

// DefaultFalsePositiveRate is used when counting duplicates in one export.
const DefaultFalsePositiveRate = 0.001

// Ensure Filter implements mediacsv.URLSet at compile time.
var _ mediacsv.URLSet = (*Filter)(nil)

// Filter remembers URLs in a fixed amount of memory.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(max(n, 1), fpRate),
	}
}

// Seen reports whether url was probably added before, then adds it.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}

// CountDuplicateURLs returns how many records repeat a URL of an earlier
// record. Records are never removed; the count is informational.
func CountDuplicateURLs(records []*mediacsv.MediaRecord) int {
	f := NewFilter(uint(len(records)), DefaultFalsePositiveRate)
	var n int
	for _, rec := range records {
		if f.Seen(rec.CDNURL) {
			n++
		}
	}
	return n
}
