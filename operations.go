package hashtable

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/storage/openaddressing"
	"github.com/gostonefire/hashtable/internal/utils"
)

// Insert - Adds a new entry or replaces the value of an existing entry with the same key.
// The hash table keeps its own copies of key and value. If no slot can be found along the key's probe sequence,
// the table grows by doubling its base size until the entry fits.
//   - key is the identifier of the entry, any byte string including the empty one
//   - value is the value to store
//
// It returns:
//   - err is of type OutOfMemory if growing would exceed the max base size, in which case the table is unchanged,
//     or a standard error if the table has been destroyed or a custom hash algorithm misbehaves
func (H *HashTable) Insert(key, value []byte) (err error) {
	if H.slots == nil {
		err = fmt.Errorf("hash table has been destroyed")
		return
	}

	for {
		err = H.slots.Set(key, value)
		if !errors.Is(err, crt.TableFull{}) {
			return
		}

		err = H.grow()
		if err != nil {
			err = fmt.Errorf("error while growing hash table: %w", err)
			return
		}
	}
}

// Search - Gets the value stored for the given key.
//   - key is the identifier of the entry
//
// It returns:
//   - value is a copy of the matching entry's value if found, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (H *HashTable) Search(key []byte) (value []byte, err error) {
	if H.slots == nil {
		err = crt.NoRecordFound{}
		return
	}

	v, err := H.slots.Get(key)
	if err != nil {
		return
	}

	value = utils.CloneBytes(v)

	return
}

// Delete - Removes the entry with the given key, an absent key is silently ignored.
// After a successful removal the table shrinks by halving its base size if the load factor has dropped below
// the configured shrink load factor, but never below the initial base size.
//   - key is the identifier of the entry
//
// It returns:
//   - err is a standard error if a custom hash algorithm misbehaves
func (H *HashTable) Delete(key []byte) (err error) {
	if H.slots == nil {
		return
	}

	deleted, err := H.slots.Delete(key)
	if err != nil || !deleted {
		return
	}

	err = H.shrink()
	if err != nil {
		err = fmt.Errorf("error while shrinking hash table: %w", err)
	}

	return
}

// Pop - Returns the value corresponding to key and removes the entry from the hash table.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the matching entry if found, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (H *HashTable) Pop(key []byte) (value []byte, err error) {
	value, err = H.Search(key)
	if err != nil {
		return
	}

	err = H.Delete(key)

	return
}

// Destroy - Releases all entries and the backing storage. Search on a destroyed table finds nothing, Delete does
// nothing and Insert fails.
func (H *HashTable) Destroy() {
	if H.slots != nil {
		H.slots.Release()
		H.slots = nil
	}
	H.baseSize = 0
}

// Count - Returns the number of live entries
func (H *HashTable) Count() int64 {
	if H.slots == nil {
		return 0
	}
	return H.slots.GetStorageParameters().NumberOfOccupied
}

// Size - Returns the number of slots in the backing storage
func (H *HashTable) Size() int64 {
	if H.slots == nil {
		return 0
	}
	return H.slots.GetStorageParameters().TableSize
}

// BaseSize - Returns the requested capacity the backing storage size was derived from
func (H *HashTable) BaseSize() int64 {
	return H.baseSize
}

// Stat - Produces a HashTableStat struct with information on the backing storage
func (H *HashTable) Stat() (hashTableStat HashTableStat) {
	if H.slots == nil {
		return
	}

	sp := H.slots.GetStorageParameters()

	hashTableStat = HashTableStat{
		Records:           sp.NumberOfOccupied,
		Tombstones:        sp.NumberOfTombstones,
		EmptySlots:        sp.NumberOfEmpty,
		Size:              sp.TableSize,
		BaseSize:          H.baseSize,
		LoadFactor:        sp.NumberOfOccupied * 100 / sp.TableSize,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// grow - Doubles the base size until every entry fits in the rebuilt storage
func (H *HashTable) grow() (err error) {
	for baseSize := H.baseSize * 2; ; baseSize *= 2 {
		err = H.resize(baseSize)
		if !errors.Is(err, crt.TableFull{}) {
			return
		}
	}
}

// shrink - Halves the base size if the load factor is below the shrink load factor.
// A rebuild that can not place every entry leaves the table as it was.
func (H *HashTable) shrink() (err error) {
	sp := H.slots.GetStorageParameters()
	if sp.NumberOfOccupied*100/sp.TableSize >= H.shrinkLoadFactor {
		return
	}

	err = H.resize(H.baseSize / 2)
	if errors.Is(err, crt.TableFull{}) {
		err = nil
	}

	return
}

// resize - Rebuilds the backing storage for a new base size by reinserting every live entry in physical slot order,
// then swaps it in. A base size below the initial base size is a no-op. On error the current storage is kept.
func (H *HashTable) resize(baseSize int64) (err error) {
	if baseSize < H.minBaseSize {
		return
	}

	slots, err := H.newSlots(baseSize)
	if err == nil {
		err = H.slots.ForEachOccupied(func(entry model.Entry) error {
			return slots.Reinsert(entry)
		})
	}
	if err != nil {
		if !H.internalAlg {
			// The custom algorithm instance is shared with the current storage
			H.newHashAlgorithm(H.baseSize)
		}
		return
	}

	H.slots.Release()
	H.slots = slots
	H.baseSize = baseSize

	return
}

// newSlots - Creates backing storage for a base size
func (H *HashTable) newSlots(baseSize int64) (slots *openaddressing.Slots, err error) {
	if baseSize > H.maxBaseSize {
		err = fmt.Errorf("base size %d exceeds max base size %d: %w", baseSize, H.maxBaseSize, crt.OutOfMemory{})
		return
	}

	slots, err = openaddressing.NewSlots(H.newHashAlgorithm(baseSize), H.internalAlg)

	return
}
