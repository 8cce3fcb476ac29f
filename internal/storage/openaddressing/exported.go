package openaddressing

import (
	"fmt"
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/hashfunc"
	"github.com/gostonefire/hashtables/internal/growth"
	"github.com/gostonefire/hashtables/internal/hash"
	"github.com/gostonefire/hashtables/internal/model"
	"github.com/gostonefire/hashtables/internal/storage"
)

// DefaultLinearLoadFactorThreshold - Load factor used with Linear Probing when none is configured
const DefaultLinearLoadFactorThreshold = 0.7

// DefaultQuadraticLoadFactorThreshold - Load factor used with Quadratic Probing when none is configured
const DefaultQuadraticLoadFactorThreshold = 0.6

// OATable - Represents an implementation of the Open Addressing Collision Resolution Techniques.
// It uses one flat array of slots where each slot holds at most one entry. In case of a collision, it probes through
// the table using a collision resolution algorithm, looking for an empty slot, and assigns the free slot to the entry.
// Removed entries leave a tombstone so that probe sequences passing the slot still reach entries further along.
// The table doubles its number of slots before an insert would make the load factor reach the threshold. Tombstones
// take up slots just like entries, so when entries and tombstones together would reach the threshold the slots are
// rebuilt, at the same capacity if the entries alone still fit. Rebuilding is the only time tombstones are cleared.
type OATable[V any] struct {
	slots         []model.Slot[V]
	capacity      int
	nOccupied     int
	nTombstones   int
	hashAlgorithm hashfunc.HashAlgorithm
	prober        hash.Prober
	policy        growth.Policy
}

// NewOATable - Returns a pointer to a new instance of Open Addressing implementation.
//   - crtConf is a model.CRTConf struct providing configuration, a zero LoadFactorThreshold selects the default
//     threshold for the probing technique
//   - prober is the collision resolution algorithm, i.e. hash.LinearProbing or hash.QuadraticProbing
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is of type crt.InvalidArgument if the configuration is not acceptable
func NewOATable[V any](crtConf model.CRTConf, prober hash.Prober) (oaTable *OATable[V], err error) {
	if err = storage.CheckConf(crtConf); err != nil {
		return
	}
	if prober == nil {
		err = crt.NewInvalidArgument("a probing algorithm must be given")
		return
	}

	threshold := crtConf.LoadFactorThreshold
	if threshold == 0 {
		threshold = DefaultLinearLoadFactorThreshold
		if prober.Technique() == crt.QuadraticProbing {
			threshold = DefaultQuadraticLoadFactorThreshold
		}
	}

	policy, err := growth.NewPolicy(threshold, growth.DefaultMultiplier, true)
	if err != nil {
		return
	}

	oaTable = &OATable[V]{
		slots:         make([]model.Slot[V], crtConf.Capacity),
		capacity:      crtConf.Capacity,
		hashAlgorithm: crtConf.HashAlgorithm,
		prober:        prober,
		policy:        policy,
	}

	return
}

// Add - Adds a new entry, growing the table first if the insert would make the load factor reach the threshold.
// If only the tombstones push the table to the threshold, the slots are rebuilt at the current capacity instead.
// The entry is placed in the first tombstone passed on the probe sequence, or else in the empty slot that ended it.
//
// It returns:
//   - err is of type crt.DuplicateKey if the key already exists, crt.TableFull if the probe sequence was
//     exhausted passing only occupied slots, or a standard error if hashing failed
func (O *OATable[V]) Add(key []byte, value V) (err error) {
	if err = storage.CheckKey("Add", key); err != nil {
		return
	}

	baseIndex, err := O.baseIndex(key, O.capacity)
	if err != nil {
		return
	}

	newCapacity := O.policy.NextCapacity(O.nOccupied, O.capacity)
	if newCapacity != O.capacity || O.policy.Triggered(O.nOccupied+O.nTombstones, O.capacity) {
		// The duplicate check must see the table as it was, a failing Add leaves it untouched
		if _, err = O.probingForGet(O.slots, baseIndex, key); err == nil {
			err = crt.NewDuplicateKey(key)
			return
		} else if !isKeyNotFound(err) {
			return
		}

		if err = O.rehash(newCapacity); err != nil {
			return
		}
		if baseIndex, err = O.baseIndex(key, O.capacity); err != nil {
			return
		}
	}

	slot, err := O.probingForSet(O.slots, baseIndex, key)
	if err != nil {
		return
	}

	if O.slots[slot].State == model.SlotTombstone {
		O.nTombstones--
	}
	O.slots[slot] = model.Slot[V]{
		State: model.SlotOccupied,
		Entry: model.Entry[V]{Key: model.CopyKey(key), Value: value},
	}
	O.nOccupied++

	return
}

// Get - Returns the value stored for key, or an error of type crt.KeyNotFound
func (O *OATable[V]) Get(key []byte) (value V, err error) {
	if err = storage.CheckKey("Get", key); err != nil {
		return
	}

	baseIndex, err := O.baseIndex(key, O.capacity)
	if err != nil {
		return
	}

	slot, err := O.probingForGet(O.slots, baseIndex, key)
	if err != nil {
		return
	}

	value = O.slots[slot].Entry.Value

	return
}

// Remove - Removes the entry for key by turning its slot into a tombstone.
// It returns an error of type crt.KeyNotFound if the key doesn't exist.
func (O *OATable[V]) Remove(key []byte) (err error) {
	if err = storage.CheckKey("Remove", key); err != nil {
		return
	}

	baseIndex, err := O.baseIndex(key, O.capacity)
	if err != nil {
		return
	}

	slot, err := O.probingForGet(O.slots, baseIndex, key)
	if err != nil {
		return
	}

	O.slots[slot] = model.Slot[V]{State: model.SlotTombstone}
	O.nOccupied--
	O.nTombstones++

	return
}

// ContainsKey - Returns true if an entry with key exists
func (O *OATable[V]) ContainsKey(key []byte) (found bool, err error) {
	if err = storage.CheckKey("ContainsKey", key); err != nil {
		return
	}

	baseIndex, err := O.baseIndex(key, O.capacity)
	if err != nil {
		return
	}

	_, err = O.probingForGet(O.slots, baseIndex, key)
	if err == nil {
		found = true
	} else if isKeyNotFound(err) {
		err = nil
	}

	return
}

// Len - Returns the number of live entries
func (O *OATable[V]) Len() int {
	return O.nOccupied
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (O *OATable[V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: O.prober.Technique(),
		Capacity:                     O.capacity,
		Count:                        O.nOccupied,
		Tombstones:                   O.nTombstones,
		LoadFactorThreshold:          O.policy.Threshold,
		GrowthMultiplier:             O.policy.Multiplier,
	}

	return
}

// GetBucketStats - Returns the utilization of every slot
func (O *OATable[V]) GetBucketStats() (stats []model.BucketStat) {
	stats = make([]model.BucketStat, O.capacity)
	for i, slot := range O.slots {
		switch slot.State {
		case model.SlotOccupied:
			stats[i].Entries = 1
		case model.SlotTombstone:
			stats[i].Tombstone = true
		}
	}

	return
}

// baseIndex - Returns hash(key) % tableSize
func (O *OATable[V]) baseIndex(key []byte, tableSize int) (index int, err error) {
	index, err = hash.BucketIndex(O.hashAlgorithm, key, tableSize)
	if err != nil {
		err = fmt.Errorf("error while computing base index: %w", err)
	}

	return
}
