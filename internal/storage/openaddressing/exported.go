package openaddressing

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/utils"
)

// Slots - Represents the backing storage for the Open Addressing Collision Resolution Technique.
// It uses one fixed length sequence of slots where each slot holds at most one entry. In case of a collision, it probes
// through the table using the hash algorithm's probe sequence, looking for an empty slot.
// Once all slots along a probe sequence are occupied the storage will accept no more entries for that key.
type Slots struct {
	slots             []model.Slot
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nOccupied         int64
	nTombstones       int64
}

// NewSlots - Returns a pointer to a new backing storage with all slots empty.
// The number of slots is whatever the hash algorithm reports from GetTableSize, so its table size must already be set.
//   - hashAlgorithm is the double hashing pair to probe with
//   - internalAlgorithm tells whether the hash algorithm is one of the internal ones
//
// It returns:
//   - slots which is a pointer to the created instance
//   - err which is either of type crt.OutOfMemory or a standard error
func NewSlots(hashAlgorithm hashfunc.HashAlgorithm, internalAlgorithm bool) (slots *Slots, err error) {
	if hashAlgorithm == nil {
		err = fmt.Errorf("hash algorithm can not be nil")
		return
	}

	tableSize := hashAlgorithm.GetTableSize()
	if tableSize <= 0 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero), got %d", tableSize)
		return
	}

	s, err := allocate(tableSize)
	if err != nil {
		return
	}

	slots = &Slots{
		slots:             s,
		tableSize:         tableSize,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlgorithm,
	}

	return
}

// GetStorageParameters - Returns a struct with sizes and utilization of the storage
func (S *Slots) GetStorageParameters() (params model.SlotsParameters) {
	params = model.SlotsParameters{
		TableSize:          S.tableSize,
		NumberOfOccupied:   S.nOccupied,
		NumberOfTombstones: S.nTombstones,
		NumberOfEmpty:      S.tableSize - S.nOccupied - S.nTombstones,
		InternalAlgorithm:  S.internalAlgorithm,
	}

	return
}

// Get - Gets the value stored for the given key.
// The returned slice is owned by the storage and must not be modified.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound, crt.ProbingAlgorithm or nil
func (S *Slots) Get(key []byte) (value []byte, err error) {
	index, err := S.probingForGet(key)
	if err != nil {
		return
	}

	value = S.slots[index].Entry.Value

	return
}

// Set - Updates the value of an existing entry or adds a new entry if no entry is found with same key.
// Both key and value are copied, the storage never keeps references to caller buffers.
//   - key is the identifier of the entry
//   - value is the value to store
//
// It returns:
//   - err is either of type crt.TableFull if no slot could be found along the probe sequence, crt.ProbingAlgorithm or nil
func (S *Slots) Set(key, value []byte) (err error) {
	entry := model.Entry{
		Key:   utils.CloneBytes(key),
		Value: utils.CloneBytes(value),
	}

	err = S.setEntry(entry)

	return
}

// Reinsert - Places an entry taken from another storage. Ownership of the entry is transferred, nothing is copied.
//   - entry is the entry to place
//
// It returns:
//   - err is either of type crt.TableFull, crt.ProbingAlgorithm or nil
func (S *Slots) Reinsert(entry model.Entry) (err error) {
	err = S.setEntry(entry)

	return
}

// Delete - Deletes the entry with the given key by turning its slot into a tombstone.
// An absent key is not an error.
//   - key is the identifier of the entry
//
// It returns:
//   - deleted is true if an entry was found and deleted
//   - err is of type crt.ProbingAlgorithm if the hash algorithm misbehaves, otherwise nil
func (S *Slots) Delete(key []byte) (deleted bool, err error) {
	index, err := S.probingForGet(key)
	if err != nil {
		if errors.Is(err, crt.NoRecordFound{}) {
			err = nil
		}
		return
	}

	S.slots[index] = model.Slot{State: model.SlotTombstone}
	S.updateUtilizationInfo(model.SlotOccupied, model.SlotTombstone)
	deleted = true

	return
}

// ForEachOccupied - Calls fn with every live entry in physical slot order, stopping at the first error from fn
func (S *Slots) ForEachOccupied(fn func(entry model.Entry) error) (err error) {
	for i := range S.slots {
		if S.slots[i].State == model.SlotOccupied {
			err = fn(S.slots[i].Entry)
			if err != nil {
				return
			}
		}
	}

	return
}

// Release - Drops all entries and the slots themselves, the storage can not be used after this
func (S *Slots) Release() {
	S.slots = nil
	S.tableSize = 0
	S.nOccupied = 0
	S.nTombstones = 0
}
