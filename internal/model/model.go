package model

// SlotEmpty - State indicating a slot that has never been in use since the storage was created
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot holding a live entry
const SlotOccupied uint8 = 1

// SlotTombstone - State indicating a slot that has been in use but was deleted
const SlotTombstone uint8 = 2

// Entry - An owned key/value pair, neither slice is shared with callers
type Entry struct {
	Key   []byte
	Value []byte
}

// Slot - Represents one cell of the backing storage
type Slot struct {
	State uint8
	Entry Entry
}

// SlotsParameters - Represents sizes and utilization of a backing storage
type SlotsParameters struct {
	TableSize          int64
	NumberOfOccupied   int64
	NumberOfTombstones int64
	NumberOfEmpty      int64
	InternalAlgorithm  bool
}
