package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom double hashing
// pair suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the hash table is created and every time it is resized, with the requested base size.
	// Implementations are free to adjust it (for instance to the nearest higher prime), the hash table will
	// read back the actual size using GetTableSize and size its backing storage accordingly.
	//   - tableSize is the requested number of slots
	SetTableSize(tableSize int64)

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// HashFunc1 - Given key it generates a home slot index between 0 and table size - 1
	HashFunc1(key []byte) int64

	// HashFunc2 - Given key it generates a value used to derive the probe step in ProbeIteration
	HashFunc2(key []byte) int64

	// ProbeIteration - Returns the slot index to visit in the given iteration, given values from HashFunc1 and HashFunc2.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash values
	// from HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes those values
	// rather than the key itself.
	// A probe outside 0 -> table size - 1 is skipped and the next iteration is requested instead.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
