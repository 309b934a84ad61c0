package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/hashtable/internal/prime"
)

// XXDoubleHashAlgorithm - Alternative algorithm using one xxhash digest over the key for both the home slot and the
// probe step. The step is kept within 1 -> table size - 1 so that every probe sequence covers the whole table.
type XXDoubleHashAlgorithm struct {
	tableSize int64
}

// NewXXDoubleHashAlgorithm - Returns a pointer to a new XXDoubleHashAlgorithm instance
func NewXXDoubleHashAlgorithm(tableSize int64) *XXDoubleHashAlgorithm {
	ha := &XXDoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, rounded up to its nearest higher prime number
func (X *XXDoubleHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = prime.NextPrime(tableSize)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (X *XXDoubleHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}

// HashFunc1 - Given key it generates the home slot between 0 and table size - 1
func (X *XXDoubleHashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(xxhash.Sum64(key) % uint64(X.tableSize))
}

// HashFunc2 - Given key it generates the probe step base between 0 and table size - 2
func (X *XXDoubleHashAlgorithm) HashFunc2(key []byte) int64 {
	k := xxhash.Sum64(key)

	return int64((k / uint64(X.tableSize)) % uint64(X.tableSize-1))
}

// ProbeIteration - Returns (hf1Value + iteration * (hf2Value + 1)) mod table size
func (X *XXDoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return probe(hf1Value, hf2Value, iteration, X.tableSize)
}
