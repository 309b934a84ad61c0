package hash

import (
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/prime"
)

// PolynomialDoubleHashAlgorithm - The internally used default algorithm. Two polynomial hashes over the key bytes
// with the distinct coefficients conf.HashPrime1 and conf.HashPrime2 give the home slot respective the probe step.
type PolynomialDoubleHashAlgorithm struct {
	tableSize int64
}

// NewPolynomialDoubleHashAlgorithm - Returns a pointer to a new PolynomialDoubleHashAlgorithm instance
func NewPolynomialDoubleHashAlgorithm(tableSize int64) *PolynomialDoubleHashAlgorithm {
	ha := &PolynomialDoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to its nearest higher prime number, which allows a probe step
// not divisible by the table size to visit every slot once and only once.
//   - tableSize is the requested number of slots
func (P *PolynomialDoubleHashAlgorithm) SetTableSize(tableSize int64) {
	P.tableSize = prime.NextPrime(tableSize)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (P *PolynomialDoubleHashAlgorithm) GetTableSize() int64 {
	return P.tableSize
}

// HashFunc1 - Given key it generates the home slot between 0 and table size - 1
func (P *PolynomialDoubleHashAlgorithm) HashFunc1(key []byte) int64 {
	return polynomialHash(key, conf.HashPrime1, P.tableSize)
}

// HashFunc2 - Given key it generates the probe step base between 0 and table size - 1
func (P *PolynomialDoubleHashAlgorithm) HashFunc2(key []byte) int64 {
	return polynomialHash(key, conf.HashPrime2, P.tableSize)
}

// ProbeIteration - Returns (hf1Value + iteration * (hf2Value + 1)) mod table size
func (P *PolynomialDoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return probe(hf1Value, hf2Value, iteration, P.tableSize)
}
