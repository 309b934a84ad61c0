package hashtable

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/storage/openaddressing"
)

// Conf - Is a struct used in the call to NewHashTableWithConf. Fields left at their Go zero value get the defaults.
//   - InitialBaseSize is the base size of the new table and the floor below which it never shrinks, default 53
//   - ShrinkLoadFactor is the load factor in percent below which a successful Delete halves the base size, default 25
//   - MaxBaseSize is the largest base size the table may grow to before failing with OutOfMemory, default and max 1<<30
//   - UseXXHash selects the internal xxhash based double hashing instead of the polynomial one
//   - HashAlgorithm is an optional custom double hashing pair following the hashfunc.HashAlgorithm interface
type Conf struct {
	InitialBaseSize  int64
	ShrinkLoadFactor int64
	MaxBaseSize      int64
	UseXXHash        bool
	HashAlgorithm    hashfunc.HashAlgorithm
}

// HashTableStat - Statistics on the overall usage of the backing storage
//   - Records is the number of live entries, same as Count
//   - Tombstones is the number of slots holding a deleted marker
//   - EmptySlots is the number of slots never used since the storage was last built
//   - Size is the number of slots in the backing storage, always a prime
//   - BaseSize is the requested capacity Size was derived from
//   - LoadFactor is Records * 100 / Size
//   - InternalAlgorithm tells whether one of the internal hash algorithms is used
type HashTableStat struct {
	Records           int64
	Tombstones        int64
	EmptySlots        int64
	Size              int64
	BaseSize          int64
	LoadFactor        int64
	InternalAlgorithm bool
}

// HashTable - The main implementation struct. It is not safe for concurrent use, callers sharing a table
// between goroutines must serialize access themselves.
type HashTable struct {
	slots            *openaddressing.Slots
	baseSize         int64
	minBaseSize      int64
	maxBaseSize      int64
	shrinkLoadFactor int64
	newHashAlgorithm func(tableSize int64) hashfunc.HashAlgorithm
	internalAlg      bool
}

// NewHashTable - Returns a new empty hash table using the default configuration.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is of type OutOfMemory if the backing storage could not be allocated
func NewHashTable() (hashTable *HashTable, err error) {
	hashTable, err = NewHashTableWithConf(Conf{})

	return
}

// NewHashTableWithConf - Returns a new empty hash table given a configuration.
//   - c is a Conf struct, any field at its zero value gets its default
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is either of type OutOfMemory or a standard error if the configuration is invalid
func NewHashTableWithConf(c Conf) (hashTable *HashTable, err error) {
	c, err = validateConf(c)
	if err != nil {
		return
	}

	ht := &HashTable{
		minBaseSize:      c.InitialBaseSize,
		maxBaseSize:      c.MaxBaseSize,
		shrinkLoadFactor: c.ShrinkLoadFactor,
	}

	switch {
	case c.HashAlgorithm != nil:
		custom := c.HashAlgorithm
		ht.newHashAlgorithm = func(tableSize int64) hashfunc.HashAlgorithm {
			custom.SetTableSize(tableSize)
			return custom
		}
	case c.UseXXHash:
		ht.newHashAlgorithm = func(tableSize int64) hashfunc.HashAlgorithm {
			return hash.NewXXDoubleHashAlgorithm(tableSize)
		}
		ht.internalAlg = true
	default:
		ht.newHashAlgorithm = func(tableSize int64) hashfunc.HashAlgorithm {
			return hash.NewPolynomialDoubleHashAlgorithm(tableSize)
		}
		ht.internalAlg = true
	}

	ht.slots, err = ht.newSlots(c.InitialBaseSize)
	if err != nil {
		err = fmt.Errorf("error while creating hash table: %w", err)
		return
	}
	ht.baseSize = c.InitialBaseSize

	hashTable = ht

	return
}

// validateConf - Checks a Conf and fills in defaults for zero fields
func validateConf(c Conf) (validated Conf, err error) {
	if c.InitialBaseSize < 0 {
		err = fmt.Errorf("initial base size can not be negative")
		return
	}
	if c.ShrinkLoadFactor < 0 || c.ShrinkLoadFactor > 100 {
		err = fmt.Errorf("shrink load factor must be a percentage between 0 and 100")
		return
	}
	if c.MaxBaseSize < 0 {
		err = fmt.Errorf("max base size can not be negative")
		return
	}
	if c.UseXXHash && c.HashAlgorithm != nil {
		err = fmt.Errorf("UseXXHash can not be combined with a custom hash algorithm")
		return
	}

	if c.InitialBaseSize == 0 {
		c.InitialBaseSize = conf.InitialBaseSize
	}
	if c.ShrinkLoadFactor == 0 {
		c.ShrinkLoadFactor = conf.ShrinkLoadFactor
	}
	if c.MaxBaseSize == 0 || c.MaxBaseSize > conf.MaxBaseSize {
		c.MaxBaseSize = conf.MaxBaseSize
	}
	if c.InitialBaseSize > c.MaxBaseSize {
		err = fmt.Errorf("initial base size %d exceeds max base size %d: %w", c.InitialBaseSize, c.MaxBaseSize, crt.OutOfMemory{})
		return
	}

	validated = c

	return
}
