package separatechaining

import (
	"fmt"
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/hashfunc"
	"github.com/gostonefire/hashtables/internal/hash"
	"github.com/gostonefire/hashtables/internal/model"
	"github.com/gostonefire/hashtables/internal/storage"
	"github.com/gostonefire/hashtables/internal/utils"
)

// ArrayBuckets - Represents an implementation of the Separate Chaining Collision Resolution Technique where every
// bucket is an exactly sized array. Each insert and remove reallocates the bucket with one more or one less element,
// trading copy cost for no per-entry overhead. An emptied bucket is released (set to nil).
// The number of buckets is fixed, chains grow without bound instead.
type ArrayBuckets[V any] struct {
	buckets       [][]model.Entry[V]
	capacity      int
	count         int
	hashAlgorithm hashfunc.HashAlgorithm
}

// NewArrayBuckets - Returns a pointer to a new instance of the array of arrays implementation.
//   - crtConf is a model.CRTConf struct, LoadFactorThreshold is ignored since the table never grows
//
// It returns:
//   - arrayBuckets which is a pointer to the created instance
//   - err which is of type crt.InvalidArgument if the configuration is not acceptable
func NewArrayBuckets[V any](crtConf model.CRTConf) (arrayBuckets *ArrayBuckets[V], err error) {
	if err = storage.CheckConf(crtConf); err != nil {
		return
	}

	arrayBuckets = &ArrayBuckets[V]{
		buckets:       make([][]model.Entry[V], crtConf.Capacity),
		capacity:      crtConf.Capacity,
		hashAlgorithm: crtConf.HashAlgorithm,
	}

	return
}

// Add - Adds a new entry to the end of its bucket.
// It returns an error of type crt.DuplicateKey if the key already exists.
func (A *ArrayBuckets[V]) Add(key []byte, value V) (err error) {
	if err = storage.CheckKey("Add", key); err != nil {
		return
	}

	index, pos, err := A.find(key)
	if err != nil {
		return
	}
	if pos >= 0 {
		err = crt.NewDuplicateKey(key)
		return
	}

	bucket := A.buckets[index]
	newBucket := make([]model.Entry[V], len(bucket)+1)
	_ = copy(newBucket, bucket)
	newBucket[len(bucket)] = model.Entry[V]{Key: model.CopyKey(key), Value: value}

	A.buckets[index] = newBucket
	A.count++

	return
}

// Get - Returns the value stored for key, or an error of type crt.KeyNotFound
func (A *ArrayBuckets[V]) Get(key []byte) (value V, err error) {
	if err = storage.CheckKey("Get", key); err != nil {
		return
	}

	index, pos, err := A.find(key)
	if err != nil {
		return
	}
	if pos < 0 {
		err = crt.NewKeyNotFound(key)
		return
	}

	value = A.buckets[index][pos].Value

	return
}

// Remove - Removes the entry for key by copying the rest of the bucket into a new array one element shorter.
// It returns an error of type crt.KeyNotFound if the key doesn't exist.
func (A *ArrayBuckets[V]) Remove(key []byte) (err error) {
	if err = storage.CheckKey("Remove", key); err != nil {
		return
	}

	index, pos, err := A.find(key)
	if err != nil {
		return
	}
	if pos < 0 {
		err = crt.NewKeyNotFound(key)
		return
	}

	bucket := A.buckets[index]
	if len(bucket) == 1 {
		A.buckets[index] = nil
	} else {
		newBucket := make([]model.Entry[V], len(bucket)-1)
		_ = copy(newBucket, bucket[:pos])
		_ = copy(newBucket[pos:], bucket[pos+1:])
		A.buckets[index] = newBucket
	}
	A.count--

	return
}

// ContainsKey - Returns true if an entry with key exists
func (A *ArrayBuckets[V]) ContainsKey(key []byte) (found bool, err error) {
	if err = storage.CheckKey("ContainsKey", key); err != nil {
		return
	}

	_, pos, err := A.find(key)
	found = pos >= 0

	return
}

// Len - Returns the number of entries
func (A *ArrayBuckets[V]) Len() int {
	return A.count
}

// GetStorageParameters - Returns a struct with storage parameters from ArrayBuckets
func (A *ArrayBuckets[V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.ArrayChaining,
		Capacity:                     A.capacity,
		Count:                        A.count,
	}

	return
}

// GetBucketStats - Returns the number of entries in every bucket
func (A *ArrayBuckets[V]) GetBucketStats() (stats []model.BucketStat) {
	stats = make([]model.BucketStat, A.capacity)
	for i, bucket := range A.buckets {
		stats[i].Entries = len(bucket)
	}

	return
}

// find - Returns the bucket index for key and the position of the key within the bucket, pos is -1 if not found
func (A *ArrayBuckets[V]) find(key []byte) (index, pos int, err error) {
	pos = -1
	index, err = hash.BucketIndex(A.hashAlgorithm, key, A.capacity)
	if err != nil {
		err = fmt.Errorf("error while computing bucket index: %w", err)
		return
	}

	bucket := A.buckets[index]
	pos = utils.IndexOf(len(bucket), func(i int) []byte { return bucket[i].Key }, key)

	return
}
