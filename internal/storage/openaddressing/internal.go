package openaddressing

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/utils"
)

// allocate - Creates the slot sequence, a request the runtime refuses is reported as crt.OutOfMemory
func allocate(tableSize int64) (slots []model.Slot, err error) {
	defer func() {
		if r := recover(); r != nil {
			slots = nil
			err = fmt.Errorf("unable to allocate %d slots: %v: %w", tableSize, r, crt.OutOfMemory{})
		}
	}()

	slots = make([]model.Slot, tableSize)

	return
}

// setEntry - Places entry in the slot selected by probingForSet and keeps utilization info up to date
func (S *Slots) setEntry(entry model.Entry) (err error) {
	index, err := S.probingForSet(entry.Key)
	if err != nil {
		return
	}

	fromState := S.slots[index].State
	S.slots[index] = model.Slot{State: model.SlotOccupied, Entry: entry}
	S.updateUtilizationInfo(fromState, model.SlotOccupied)

	return
}

// updateUtilizationInfo - Updates the occupied and tombstone counters given a slot state transition
func (S *Slots) updateUtilizationInfo(fromState, toState uint8) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.SlotOccupied:
		S.nOccupied--
	case model.SlotTombstone:
		S.nTombstones--
	}

	switch toState {
	case model.SlotOccupied:
		S.nOccupied++
	case model.SlotTombstone:
		S.nTombstones++
	}
}

// probingForGet - Is the Probing Collision Resolution Technique algorithm for finding the slot of an existing key.
func (S *Slots) probingForGet(key []byte) (index int64, err error) {
	var probe, n int64

	hf1Value := S.hashAlgorithm.HashFunc1(key)
	hf2Value := S.hashAlgorithm.HashFunc2(key)

	iMax := S.tableSize * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = S.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < S.tableSize && probe >= 0 {
			switch S.slots[probe].State {
			case model.SlotEmpty:
				err = crt.NoRecordFound{}
				return

			case model.SlotOccupied:
				if utils.IsEqual(key, S.slots[probe].Entry.Key) {
					index = probe
					return
				}
			}

			n++
			if n >= S.tableSize {
				err = crt.NoRecordFound{}
				return
			}
		}
	}

	// This is just a failsafe for custom hash algorithms, the internal ones never end up here
	err = crt.ProbingAlgorithm{}
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for finding the slot to set a key in.
// It returns the slot holding the key if it exists, otherwise the first tombstone passed over before the first empty
// slot, otherwise that empty slot. If the whole probe sequence is walked, a passed tombstone is still used.
func (S *Slots) probingForSet(key []byte) (index int64, err error) {
	var probe, n int64
	var tombstone int64 = -1

	hf1Value := S.hashAlgorithm.HashFunc1(key)
	hf2Value := S.hashAlgorithm.HashFunc2(key)

	iMax := S.tableSize * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = S.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < S.tableSize && probe >= 0 {
			switch S.slots[probe].State {
			case model.SlotEmpty:
				if tombstone >= 0 {
					index = tombstone
				} else {
					index = probe
				}
				return

			case model.SlotOccupied:
				if utils.IsEqual(key, S.slots[probe].Entry.Key) {
					index = probe
					return
				}

			case model.SlotTombstone:
				if tombstone < 0 {
					tombstone = probe
				}
			}

			n++
			if n >= S.tableSize {
				if tombstone >= 0 {
					index = tombstone
					return
				}
				err = crt.TableFull{}
				return
			}
		}
	}

	err = crt.ProbingAlgorithm{}
	return
}
