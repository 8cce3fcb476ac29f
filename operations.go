package hashtables

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtables/crt"
)

// Add - Adds a new entry to the hash table.
//   - key is the identifier of the entry, it can not be nil but may be empty
//   - value is the value to store with the key
//
// It returns:
//   - err is of type crt.NullKey if key is nil, crt.DuplicateKey if an entry with the same key already exists or
//     crt.TableFull if an open addressing probe sequence could not reach a free slot. The table is unchanged
//     whenever an error is returned.
func (H *HashTable[V]) Add(key []byte, value V) (err error) {
	err = H.storage.Add(key, value)
	if err != nil && errors.Is(err, crt.TableFull{}) {
		sp := H.storage.GetStorageParameters()
		err = fmt.Errorf("%s table with capacity %d holding %d entries: %w",
			crt.Name(H.technique), sp.Capacity, sp.Count, err)
	}

	return
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type crt.NullKey if key is nil or crt.KeyNotFound if there is no entry with the key
func (H *HashTable[V]) Get(key []byte) (value V, err error) {
	return H.storage.Get(key)
}

// Remove - Removes the entry that corresponds to the given key.
// Open addressing tables leave a tombstone in the slot that is reused by later inserts.
//
// It returns:
//   - err is of type crt.NullKey if key is nil or crt.KeyNotFound if there is no entry with the key
func (H *HashTable[V]) Remove(key []byte) (err error) {
	return H.storage.Remove(key)
}

// ContainsKey - Returns true if an entry with the given key exists, err is of type crt.NullKey if key is nil
func (H *HashTable[V]) ContainsKey(key []byte) (found bool, err error) {
	return H.storage.ContainsKey(key)
}

// Len - Returns the number of entries in the hash table
func (H *HashTable[V]) Len() int {
	return H.storage.Len()
}

// Technique - Returns the crt constant of the collision resolution technique used
func (H *HashTable[V]) Technique() int {
	return H.technique
}

// Stat - Returns statistics on the usage and distribution of entries over buckets or slots.
//   - includeDistribution set to true also returns the number of entries in every bucket or slot, which may be
//     a large slice for big tables
func (H *HashTable[V]) Stat(includeDistribution bool) (hashTableStat HashTableStat) {
	sp := H.storage.GetStorageParameters()
	stats := H.storage.GetBucketStats()
	openAddressing := crt.IsOpenAddressing(H.technique)

	hashTableStat = HashTableStat{
		Records:    sp.Count,
		Capacity:   sp.Capacity,
		Tombstones: sp.Tombstones,
		LoadFactor: float64(sp.Count) / float64(sp.Capacity),
	}
	if includeDistribution {
		hashTableStat.BucketDistribution = make([]int, len(stats))
	}

	// Runs of adjacent non-empty slots are not joined across the end of the table
	run := 0
	for i, stat := range stats {
		if stat.Entries > 0 {
			hashTableStat.UsedBuckets++
		}
		if includeDistribution {
			hashTableStat.BucketDistribution[i] = stat.Entries
		}

		if openAddressing {
			if stat.Entries > 0 || stat.Tombstone {
				run++
			} else {
				run = 0
			}
			hashTableStat.LongestChain = max(hashTableStat.LongestChain, run)
		} else {
			hashTableStat.LongestChain = max(hashTableStat.LongestChain, stat.Entries)
		}
	}

	return
}
