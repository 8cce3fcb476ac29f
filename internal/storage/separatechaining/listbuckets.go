package separatechaining

import (
	"fmt"
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/hashfunc"
	"github.com/gostonefire/hashtables/internal/growth"
	"github.com/gostonefire/hashtables/internal/hash"
	"github.com/gostonefire/hashtables/internal/model"
	"github.com/gostonefire/hashtables/internal/storage"
	"github.com/gostonefire/hashtables/internal/utils"
)

// DefaultLoadFactorThreshold - Load factor used by the list and linked chaining variants when none is configured
const DefaultLoadFactorThreshold = 0.75

// ListBuckets - Represents an implementation of the Separate Chaining Collision Resolution Technique where every
// bucket is a dynamic list. Collisions are appended to the list, removals splice the entry out.
// The number of buckets doubles whenever an insert would take the load factor above the threshold.
type ListBuckets[V any] struct {
	buckets       [][]model.Entry[V]
	capacity      int
	count         int
	hashAlgorithm hashfunc.HashAlgorithm
	policy        growth.Policy
}

// NewListBuckets - Returns a pointer to a new instance of the list chaining implementation.
//   - crtConf is a model.CRTConf struct, a zero LoadFactorThreshold selects DefaultLoadFactorThreshold
//
// It returns:
//   - listBuckets which is a pointer to the created instance
//   - err which is of type crt.InvalidArgument if the configuration is not acceptable
func NewListBuckets[V any](crtConf model.CRTConf) (listBuckets *ListBuckets[V], err error) {
	policy, err := chainingPolicy(crtConf)
	if err != nil {
		return
	}

	listBuckets = &ListBuckets[V]{
		buckets:       make([][]model.Entry[V], crtConf.Capacity),
		capacity:      crtConf.Capacity,
		hashAlgorithm: crtConf.HashAlgorithm,
		policy:        policy,
	}

	return
}

// Add - Adds a new entry, growing the table first if the insert would cross the load factor threshold.
// It returns an error of type crt.DuplicateKey if the key already exists.
func (L *ListBuckets[V]) Add(key []byte, value V) (err error) {
	if err = storage.CheckKey("Add", key); err != nil {
		return
	}

	index, pos, err := L.find(key)
	if err != nil {
		return
	}
	if pos >= 0 {
		err = crt.NewDuplicateKey(key)
		return
	}

	if newCapacity := L.policy.NextCapacity(L.count, L.capacity); newCapacity != L.capacity {
		if err = L.rehash(newCapacity); err != nil {
			return
		}
		if index, err = hash.BucketIndex(L.hashAlgorithm, key, L.capacity); err != nil {
			return
		}
	}

	L.buckets[index] = append(L.buckets[index], model.Entry[V]{Key: model.CopyKey(key), Value: value})
	L.count++

	return
}

// Get - Returns the value stored for key, or an error of type crt.KeyNotFound
func (L *ListBuckets[V]) Get(key []byte) (value V, err error) {
	if err = storage.CheckKey("Get", key); err != nil {
		return
	}

	index, pos, err := L.find(key)
	if err != nil {
		return
	}
	if pos < 0 {
		err = crt.NewKeyNotFound(key)
		return
	}

	value = L.buckets[index][pos].Value

	return
}

// Remove - Splices the entry for key out of its bucket, releasing the bucket if it becomes empty.
// It returns an error of type crt.KeyNotFound if the key doesn't exist.
func (L *ListBuckets[V]) Remove(key []byte) (err error) {
	if err = storage.CheckKey("Remove", key); err != nil {
		return
	}

	index, pos, err := L.find(key)
	if err != nil {
		return
	}
	if pos < 0 {
		err = crt.NewKeyNotFound(key)
		return
	}

	bucket := L.buckets[index]
	if len(bucket) == 1 {
		L.buckets[index] = nil
	} else {
		last := len(bucket) - 1
		_ = copy(bucket[pos:], bucket[pos+1:])
		bucket[last] = model.Entry[V]{}
		L.buckets[index] = bucket[:last]
	}
	L.count--

	return
}

// ContainsKey - Returns true if an entry with key exists
func (L *ListBuckets[V]) ContainsKey(key []byte) (found bool, err error) {
	if err = storage.CheckKey("ContainsKey", key); err != nil {
		return
	}

	_, pos, err := L.find(key)
	found = pos >= 0

	return
}

// Len - Returns the number of entries
func (L *ListBuckets[V]) Len() int {
	return L.count
}

// GetStorageParameters - Returns a struct with storage parameters from ListBuckets
func (L *ListBuckets[V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.ListChaining,
		Capacity:                     L.capacity,
		Count:                        L.count,
		LoadFactorThreshold:          L.policy.Threshold,
		GrowthMultiplier:             L.policy.Multiplier,
	}

	return
}

// GetBucketStats - Returns the number of entries in every bucket
func (L *ListBuckets[V]) GetBucketStats() (stats []model.BucketStat) {
	stats = make([]model.BucketStat, L.capacity)
	for i, bucket := range L.buckets {
		stats[i].Entries = len(bucket)
	}

	return
}

// find - Returns the bucket index for key and the position of the key within the bucket, pos is -1 if not found
func (L *ListBuckets[V]) find(key []byte) (index, pos int, err error) {
	pos = -1
	index, err = hash.BucketIndex(L.hashAlgorithm, key, L.capacity)
	if err != nil {
		err = fmt.Errorf("error while computing bucket index: %w", err)
		return
	}

	bucket := L.buckets[index]
	pos = utils.IndexOf(len(bucket), func(i int) []byte { return bucket[i].Key }, key)

	return
}

// rehash - Builds a new set of buckets with newCapacity buckets and moves every entry to its new index.
// The new buckets replace the old ones only when every entry has been moved.
func (L *ListBuckets[V]) rehash(newCapacity int) (err error) {
	newBuckets := make([][]model.Entry[V], newCapacity)

	var index int
	for _, bucket := range L.buckets {
		for _, entry := range bucket {
			index, err = hash.BucketIndex(L.hashAlgorithm, entry.Key, newCapacity)
			if err != nil {
				err = fmt.Errorf("error while rehashing to %d buckets: %w", newCapacity, err)
				return
			}
			newBuckets[index] = append(newBuckets[index], entry)
		}
	}

	L.buckets = newBuckets
	L.capacity = newCapacity

	return
}

// chainingPolicy - Validates crtConf and returns the growth policy for a growing chaining variant
func chainingPolicy(crtConf model.CRTConf) (policy growth.Policy, err error) {
	if err = storage.CheckConf(crtConf); err != nil {
		return
	}

	threshold := crtConf.LoadFactorThreshold
	if threshold == 0 {
		threshold = DefaultLoadFactorThreshold
	}

	policy, err = growth.NewPolicy(threshold, growth.DefaultMultiplier, false)

	return
}
