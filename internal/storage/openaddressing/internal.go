package openaddressing

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/internal/model"
	"github.com/gostonefire/hashtables/internal/utils"
)

// probingForGet - Is the Probing Collision Resolution Technique algorithm for finding the slot holding key.
// An empty slot ends the search, tombstones are passed over.
//
// It returns:
//   - slot is the index of the matching slot
//   - err is of type crt.KeyNotFound if the key is not in the table
func (O *OATable[V]) probingForGet(slots []model.Slot[V], baseIndex int, key []byte) (slot int, err error) {
	tableSize := len(slots)

	for i := 0; i < tableSize; i++ {
		probe := O.prober.ProbeIteration(baseIndex, i, tableSize)

		switch slots[probe].State {
		case model.SlotEmpty:
			err = crt.NewKeyNotFound(key)
			return

		case model.SlotOccupied:
			if utils.IsEqual(key, slots[probe].Entry.Key) {
				slot = probe
				return
			}
		}
	}

	err = crt.NewKeyNotFound(key)
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for finding the slot to place key in.
// The first tombstone on the probe sequence is remembered and preferred over the empty slot that ends the sequence,
// that way space left by removed entries is reclaimed. A sequence exhausted without reaching an empty slot has still
// visited every slot a lookup of key would, so the first tombstone is used then as well.
//
// It returns:
//   - slot is the index of the slot to use
//   - err is of type crt.DuplicateKey if key is already present or crt.TableFull if the probe sequence was
//     exhausted passing only occupied slots
func (O *OATable[V]) probingForSet(slots []model.Slot[V], baseIndex int, key []byte) (slot int, err error) {
	tableSize := len(slots)
	firstTombstone := -1

	for i := 0; i < tableSize; i++ {
		probe := O.prober.ProbeIteration(baseIndex, i, tableSize)

		switch slots[probe].State {
		case model.SlotEmpty:
			if firstTombstone >= 0 {
				slot = firstTombstone
			} else {
				slot = probe
			}
			return

		case model.SlotOccupied:
			if utils.IsEqual(key, slots[probe].Entry.Key) {
				err = crt.NewDuplicateKey(key)
				return
			}

		case model.SlotTombstone:
			if firstTombstone < 0 {
				firstTombstone = probe
			}
		}
	}

	if firstTombstone >= 0 {
		slot = firstTombstone
		return
	}

	// Growth keeps entries and tombstones below the threshold so an empty slot always exists, but quadratic
	// probing may never reach it
	err = crt.NewTableFull(tableSize)
	return
}

// rehash - Allocates newCapacity empty slots and places every occupied entry in them, tombstones are dropped.
// The new slots replace the old ones only when every entry has been placed.
func (O *OATable[V]) rehash(newCapacity int) (err error) {
	newSlots := make([]model.Slot[V], newCapacity)

	var baseIndex, slot int
	for _, s := range O.slots {
		if s.State != model.SlotOccupied {
			continue
		}

		baseIndex, err = O.baseIndex(s.Entry.Key, newCapacity)
		if err != nil {
			return
		}
		slot, err = O.probingForSet(newSlots, baseIndex, s.Entry.Key)
		if err != nil {
			err = fmt.Errorf("error while rehashing to %d slots: %w", newCapacity, err)
			return
		}

		newSlots[slot] = s
	}

	O.slots = newSlots
	O.capacity = newCapacity
	O.nTombstones = 0

	return
}

// isKeyNotFound - Returns true if err is of type crt.KeyNotFound
func isKeyNotFound(err error) bool {
	return errors.Is(err, crt.KeyNotFound{})
}
