package model

import "github.com/gostonefire/hashtables/hashfunc"

// SlotState - State of a slot in an open addressing table
type SlotState uint8

// SlotEmpty - State indicating a slot that has never been in use, it terminates any probe sequence
const SlotEmpty SlotState = 0

// SlotOccupied - State indicating a slot that holds a live entry
const SlotOccupied SlotState = 1

// SlotTombstone - State indicating a slot that has been in use but was removed, probing continues past it
const SlotTombstone SlotState = 2

// String - Returns the name of the state
func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "Empty"
	case SlotOccupied:
		return "Occupied"
	case SlotTombstone:
		return "Tombstone"
	default:
		return "Unknown"
	}
}

// Entry - Represents one key/value pair stored in a table
type Entry[V any] struct {
	Key   []byte
	Value V
}

// Slot - Represents one slot in an open addressing table. Entry is only meaningful when State is SlotOccupied.
type Slot[V any] struct {
	State SlotState
	Entry Entry[V]
}

// StorageParameters - Represents parameters and utilization of any implementation of storage
//   - CollisionResolutionTechnique is one of the crt constants
//   - Capacity is the current number of buckets or slots
//   - Count is the number of live entries
//   - Tombstones is the number of slots marked as removed (always zero for chaining)
//   - LoadFactorThreshold is the load factor that triggers growth (zero if the table never grows)
//   - GrowthMultiplier is the factor the capacity is multiplied with on growth (zero if the table never grows)
type StorageParameters struct {
	CollisionResolutionTechnique int
	Capacity                     int
	Count                        int
	Tombstones                   int
	LoadFactorThreshold          float64
	GrowthMultiplier             int
}

// BucketStat - Represents the utilization of one bucket (chaining) or one slot (open addressing)
//   - Entries is the number of live entries stored at the index
//   - Tombstone is true if the index is an open addressing slot marked as removed
type BucketStat struct {
	Entries   int
	Tombstone bool
}

// CopyKey - Returns a copy of key so that the table exclusively owns the bytes it stores
func CopyKey(key []byte) []byte {
	c := make([]byte, len(key))
	_ = copy(c, key)
	return c
}

// CRTConf - Is a struct to be passed in the call to NewXX storage constructors and contains configuration that
// affects storage processing.
//   - Capacity is the initial number of buckets or slots, it must be a positive value
//   - HashAlgorithm is the hash function to use
//   - LoadFactorThreshold is the load factor that triggers growth, ignored by storage that never grows
type CRTConf struct {
	Capacity            int
	HashAlgorithm       hashfunc.HashAlgorithm
	LoadFactorThreshold float64
}
